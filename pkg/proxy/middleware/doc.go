// Package middleware provides the HTTP middleware chain of the gateway.
//
// # Middleware
//
//   - RecoveryMiddleware: turns handler panics into a 500 error envelope
//   - RequestIDMiddleware: reuses or generates X-Request-ID (UUIDv4) and stores it in the context
//   - LoggingMiddleware: one slog line per request, level by status
//   - MetricsMiddleware / RouteMiddleware: Prometheus request metrics by route template
//   - CORSMiddleware: CORS policy built on github.com/rs/cors
//
// # Order
//
// The server applies them outermost first:
//
//	Recovery -> RequestID -> Logging -> Metrics -> CORS -> router
//
// RequestID runs before Logging so every log line, including those written by
// handlers and downstream clients, carries request_id. CORS sits inside
// Metrics so preflight requests are counted.
package middleware
