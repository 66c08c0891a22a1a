package middleware

import (
	"net/http"

	"storefront-hq/gateway/pkg/proxy"
	"storefront-hq/gateway/pkg/telemetry/logging"

	"github.com/google/uuid"
)

// maxRequestIDLength bounds client-supplied request IDs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns a request ID to each request. A client-supplied
// X-Request-ID is reused; otherwise a UUIDv4 is generated.
//
// The request ID is:
//   - Stored in the request context, where the logger picks it up
//   - Echoed in the X-Request-ID response header
//   - Forwarded to downstream services
//
// Example usage:
//
//	handler = RequestIDMiddleware(handler)
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := proxy.ExtractRequestID(r)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		ctx := logging.WithRequestID(r.Context(), requestID)
		w.Header().Set(proxy.RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
