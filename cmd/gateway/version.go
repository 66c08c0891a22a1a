package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"storefront-hq/gateway/pkg/cli"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "0.1.0"
	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"
	// BuildDate is the build timestamp (set by build flags)
	BuildDate = "unknown"
)

var versionOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print detailed version information including Git commit and build date.

Use --output json or --output yaml for machine-readable output.`,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", string(cli.FormatText), "output format (text, json, yaml)")
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func (v versionInfo) String() string {
	return fmt.Sprintf("Gateway %s\nGit Commit: %s\nBuild Date: %s\nGo Version: %s\nOS/Arch: %s",
		v.Version, v.GitCommit, v.BuildDate, v.GoVersion, v.Platform)
}

func currentVersion() versionInfo {
	return versionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cli.ParseOutputFormat(versionOutput)
	if err != nil {
		return cli.NewCommandError("version", err)
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), currentVersion())
}
