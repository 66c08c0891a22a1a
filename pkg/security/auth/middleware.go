package auth

import (
	"errors"
	"log/slog"
	"net/http"
)

// DeniedFunc writes the response for a denied request.
type DeniedFunc func(w http.ResponseWriter, r *http.Request, err error)

// Middleware runs an Authorizer in front of protected handlers.
type Middleware struct {
	authorizer Authorizer
	onDenied   DeniedFunc
}

// NewMiddleware creates authorization middleware. onDenied renders the
// rejection; when nil a bare 401 is written.
func NewMiddleware(authorizer Authorizer, onDenied DeniedFunc) *Middleware {
	if onDenied == nil {
		onDenied = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		}
	}
	return &Middleware{
		authorizer: authorizer,
		onDenied:   onDenied,
	}
}

// Handle wraps next so that it only runs for authorized requests.
func (m *Middleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := m.authorizer.Authorize(r); err != nil {
			var ue *UnauthorizedError
			if errors.As(err, &ue) {
				slog.WarnContext(r.Context(), "request rejected",
					"reason", ue.Reason,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
				)
			} else {
				slog.ErrorContext(r.Context(), "authorization failed",
					"error", err,
					"path", r.URL.Path,
				)
			}
			m.onDenied(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
