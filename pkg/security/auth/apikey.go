package auth

import (
	"crypto/subtle"
	"net/http"
)

// NewAuthorizer returns the strategy for the configured key. An empty key
// disables authorization entirely.
func NewAuthorizer(key string) Authorizer {
	if key == "" {
		return AllowAll{}
	}
	return NewStaticKeyAuthorizer(key)
}

// AllowAll admits every request.
type AllowAll struct{}

// Authorize implements Authorizer.
func (AllowAll) Authorize(*http.Request) error {
	return nil
}

// StaticKeyAuthorizer admits requests whose x-api-key header equals a single
// configured key. The comparison is exact and case-sensitive.
type StaticKeyAuthorizer struct {
	key []byte
}

// NewStaticKeyAuthorizer creates an authorizer for one shared key.
func NewStaticKeyAuthorizer(key string) *StaticKeyAuthorizer {
	return &StaticKeyAuthorizer{key: []byte(key)}
}

// Authorize implements Authorizer.
func (a *StaticKeyAuthorizer) Authorize(r *http.Request) error {
	values := r.Header.Values(HeaderAPIKey)
	if len(values) == 0 {
		return &UnauthorizedError{Reason: ReasonMissingKey}
	}
	if subtle.ConstantTimeCompare([]byte(values[0]), a.key) != 1 {
		return &UnauthorizedError{Reason: ReasonInvalidKey}
	}
	return nil
}
