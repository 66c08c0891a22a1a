package proxy

import (
	"log/slog"
	"net/http"
	"time"

	"storefront-hq/gateway/pkg/security/auth"
)

// RequestMetadata contains extracted metadata from an inbound request.
// It is used for access logging.
type RequestMetadata struct {
	// RequestID is a unique identifier for the request.
	RequestID string

	// Method is the HTTP method (GET, POST, etc.).
	Method string

	// Path is the HTTP request path.
	Path string

	// Query is the raw query string.
	Query string

	// UserAgent is the client's user agent string.
	UserAgent string

	// RemoteAddr is the client's IP address.
	RemoteAddr string

	// APIKeyPresent reports whether an x-api-key header was sent. The key
	// itself is never extracted.
	APIKeyPresent bool

	// Timestamp is when the request was received.
	Timestamp time.Time
}

// ExtractRequestMetadata extracts logging metadata from an HTTP request.
func ExtractRequestMetadata(r *http.Request) *RequestMetadata {
	return &RequestMetadata{
		RequestID:     ExtractRequestID(r),
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		UserAgent:     r.UserAgent(),
		RemoteAddr:    r.RemoteAddr,
		APIKeyPresent: r.Header.Get(auth.HeaderAPIKey) != "",
		Timestamp:     time.Now(),
	}
}

// LogAttrs returns the metadata as slog attributes.
func (m *RequestMetadata) LogAttrs() []any {
	attrs := []any{
		slog.String("method", m.Method),
		slog.String("path", m.Path),
		slog.String("remote_addr", m.RemoteAddr),
		slog.String("user_agent", m.UserAgent),
		slog.Bool("api_key_present", m.APIKeyPresent),
	}
	if m.Query != "" {
		attrs = append(attrs, slog.String("query", m.Query))
	}
	return attrs
}
