package main

import (
	"github.com/spf13/cobra"

	"storefront-hq/gateway/pkg/cli"
	"storefront-hq/gateway/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the gateway would start with, as YAML.

The API key is redacted. Invalid configuration is reported the same way
"gateway serve" reports it.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.NewConfigError(err)
	}
	return cli.NewFormatter(cli.FormatYAML).FormatTo(cmd.OutOrStdout(), cfg.Redacted())
}
