/*
Package cli provides command-line helpers shared by the gateway commands.

Output Formatting:

Commands print structured results in text, JSON or YAML:

	formatter := cli.NewFormatter(cli.FormatYAML)
	if err := formatter.FormatTo(cmd.OutOrStdout(), cfg.Redacted()); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SignalContext(cmd.Context())
	defer stop()
	return srv.Start(ctx)

Errors:

ConfigError and CommandError tag failures so the entry point can report them
and exit non-zero.
*/
package cli
