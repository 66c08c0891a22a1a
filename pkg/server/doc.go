// Package server wires the gateway together and manages its lifecycle.
//
// # Routes
//
//   - GET  /health                        liveness, never calls a downstream
//   - GET  /docs/websocket                static note on real-time transport
//   - GET  /metrics                       Prometheus exposition (when enabled)
//   - POST /compose/product-price         price service, composed with a tracking id
//   - POST /proxy/notifications/send      notification service, verbatim
//   - GET  /proxy/analytics/sales-summary analytics service, verbatim
//
// The last three require the x-api-key header when an API key is configured.
//
// # Middleware Chain
//
// Outermost first:
//  1. Recovery: turns panics into a 500 JSON error
//  2. RequestID: reuses or generates X-Request-ID
//  3. Logging: one line per request
//  4. Metrics: count and latency by route template
//  5. CORS: preflight and response headers
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	srv := server.NewServer(cfg, nil)
//	return srv.Start(ctx)
//
// Start returns once ctx is cancelled or Stop is called and in-flight
// requests have drained, bounded by the configured shutdown timeout. Signal
// handling belongs to the caller; the gateway command uses cli.SignalContext.
package server
