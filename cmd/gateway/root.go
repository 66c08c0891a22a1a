package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Storefront API gateway",
	Long: `Storefront API gateway.

Proxies client traffic to the price, notification and analytics services:
  - POST /compose/product-price        price lookup composed with a tracking id
  - POST /proxy/notifications/send     notification delivery
  - GET  /proxy/analytics/sales-summary sales analytics

Running without a subcommand starts the gateway.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
