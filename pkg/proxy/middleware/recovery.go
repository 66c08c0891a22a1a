package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"storefront-hq/gateway/pkg/proxy"
	"storefront-hq/gateway/pkg/proxy/types"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and returns a 500
// Internal Server Error in the gateway error format. It logs the panic
// with stack trace for debugging but does not expose internal details to clients.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
//
// Example usage:
//
//	handler = RecoveryMiddleware(handler)
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			if err == http.ErrAbortHandler {
				panic(err)
			}

			slog.ErrorContext(r.Context(), "panic in handler",
				"error", err,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			errResp := types.NewServerError(
				"An internal error occurred. Please try again later.",
			)
			_ = proxy.WriteErrorResponse(w, errResp)
		}()

		next.ServeHTTP(w, r)
	})
}
