package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
)

// SecretSource yields the current value of a named secret.
// *secrets.FileProvider satisfies it.
type SecretSource interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// SecretKeyAuthorizer compares the x-api-key header against a key read from a
// SecretSource on every request, so rotating the secret needs no restart.
type SecretKeyAuthorizer struct {
	source SecretSource
	name   string
}

// NewSecretKeyAuthorizer creates an authorizer backed by the named secret.
func NewSecretKeyAuthorizer(source SecretSource, name string) *SecretKeyAuthorizer {
	return &SecretKeyAuthorizer{source: source, name: name}
}

// Authorize implements Authorizer. A secret that cannot be read, or is empty,
// denies every request with a non-authorization error.
func (a *SecretKeyAuthorizer) Authorize(r *http.Request) error {
	key, err := a.source.GetSecret(r.Context(), a.name)
	if err != nil {
		return fmt.Errorf("failed to load api key: %w", err)
	}
	if key == "" {
		return fmt.Errorf("api key secret %q is empty", a.name)
	}

	values := r.Header.Values(HeaderAPIKey)
	if len(values) == 0 {
		return &UnauthorizedError{Reason: ReasonMissingKey}
	}
	if subtle.ConstantTimeCompare([]byte(values[0]), []byte(key)) != 1 {
		return &UnauthorizedError{Reason: ReasonInvalidKey}
	}
	return nil
}
