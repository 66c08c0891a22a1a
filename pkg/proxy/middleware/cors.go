package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// CORSConfig contains configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins for CORS.
	// Use ["*"] to allow all origins.
	AllowedOrigins []string

	// AllowedMethods is a list of allowed HTTP methods.
	AllowedMethods []string

	// AllowedHeaders is a list of allowed HTTP headers. ["*"] allows any header.
	AllowedHeaders []string

	// ExposedHeaders is a list of headers exposed to clients.
	ExposedHeaders []string

	// MaxAge is the maximum age (in seconds) for preflight cache.
	MaxAge int

	// AllowCredentials controls whether credentials are allowed.
	AllowCredentials bool
}

// DefaultCORSConfig returns the gateway's permissive policy: every method and
// header, credentials allowed, for the given origins.
func DefaultCORSConfig(origins []string) *CORSConfig {
	return &CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           600,
		AllowCredentials: true,
	}
}

// CORSMiddleware adds Cross-Origin Resource Sharing (CORS) headers to responses
// and answers preflight OPTIONS requests.
//
// A wildcard origin combined with credentials reflects the caller's Origin,
// since browsers reject "*" on credentialed requests.
//
// Example usage:
//
//	handler = CORSMiddleware(DefaultCORSConfig([]string{"https://shop.example"}))(handler)
func CORSMiddleware(config *CORSConfig) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   config.AllowedMethods,
		AllowedHeaders:   config.AllowedHeaders,
		ExposedHeaders:   config.ExposedHeaders,
		MaxAge:           config.MaxAge,
		AllowCredentials: config.AllowCredentials,
	}

	if slices.Contains(config.AllowedOrigins, "*") {
		if config.AllowCredentials {
			opts.AllowOriginFunc = func(string) bool { return true }
		} else {
			opts.AllowedOrigins = []string{"*"}
		}
	} else {
		opts.AllowedOrigins = config.AllowedOrigins
	}

	return cors.New(opts).Handler
}
