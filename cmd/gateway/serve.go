package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"storefront-hq/gateway/pkg/cli"
	"storefront-hq/gateway/pkg/config"
	"storefront-hq/gateway/pkg/server"
	"storefront-hq/gateway/pkg/telemetry/logging"
	"storefront-hq/gateway/pkg/telemetry/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway",
	Long: `Start the gateway with configuration from the environment.

The gateway listens until SIGINT or SIGTERM, then drains in-flight requests
and exits.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.NewConfigError(err)
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		Writer:    os.Stdout,
	})
	if err != nil {
		return cli.NewConfigError(err)
	}
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"version", Version,
		"price_url", cfg.Downstreams.PriceURL,
		"notification_url", cfg.Downstreams.NotificationURL,
		"analytics_url", cfg.Downstreams.AnalyticsURL,
		"downstream_timeout", cfg.Downstreams.Timeout.String(),
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"metrics_enabled", cfg.Telemetry.Metrics.Enabled,
	)

	ctx, stop := cli.SignalContext(cmd.Context())
	defer stop()

	authorizer, closer, err := server.AuthorizerFromConfig(&cfg.Security)
	if err != nil {
		return cli.NewConfigError(err)
	}
	defer closer.Close()

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	srv := server.NewServer(cfg, collector, server.WithAuthorizer(authorizer))

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}
