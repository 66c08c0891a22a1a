package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"storefront-hq/gateway/pkg/proxy"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

// newResponseWriter creates a new response writer wrapper.
func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default to 200
	}
}

// WriteHeader captures the status code before writing.
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

// Write ensures WriteHeader is called if not already done.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// LoggingMiddleware logs one line per request with structured logging.
// The level follows the status: 5xx is logged at error, 4xx at warn and
// everything else at info.
//
// Log format (JSON):
//
//	{
//	  "time": "2025-11-16T10:30:00Z",
//	  "level": "INFO",
//	  "msg": "request completed",
//	  "request_id": "7f1c5d0e-...",
//	  "method": "POST",
//	  "path": "/compose/product-price",
//	  "status": 200,
//	  "latency_ms": 42,
//	  "remote_addr": "192.168.1.100:54321",
//	  "user_agent": "curl/8.4.0",
//	  "api_key_present": true
//	}
//
// Example usage:
//
//	handler = LoggingMiddleware(handler)
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		ctx := context.WithValue(r.Context(), StartTimeKey, startTime)

		rw := newResponseWriter(w)
		meta := proxy.ExtractRequestMetadata(r)

		slog.DebugContext(ctx, "request started", meta.LogAttrs()...)

		next.ServeHTTP(rw, r.WithContext(ctx))

		latency := time.Since(startTime)

		logLevel := slog.LevelInfo
		if rw.statusCode >= 500 {
			logLevel = slog.LevelError
		} else if rw.statusCode >= 400 {
			logLevel = slog.LevelWarn
		}

		attrs := append(meta.LogAttrs(),
			slog.Int("status", rw.statusCode),
			slog.Int64("latency_ms", latency.Milliseconds()),
		)
		slog.Log(ctx, logLevel, "request completed", attrs...)
	})
}
