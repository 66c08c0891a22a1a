// Package telemetry groups the gateway's logging and metrics.
//
// # Components
//
//   - logging: slog setup with request id injection and key redaction
//   - metrics: Prometheus collectors for inbound requests, downstream calls
//     and auth rejections
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	srv := server.NewServer(cfg, collector)
package telemetry
