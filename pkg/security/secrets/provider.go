package secrets

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a secret does not exist in the provider.
var ErrNotFound = errors.New("secret not found")

// SecretProvider retrieves secrets from a backend.
// Implementations must be safe for concurrent use.
type SecretProvider interface {
	// GetSecret retrieves a secret by name.
	GetSecret(ctx context.Context, name string) (string, error)

	// Provider returns the provider name.
	Provider() string
}

// RefreshableProvider can reload secrets without restart.
type RefreshableProvider interface {
	SecretProvider

	// Refresh drops cached values so the next read hits the backend.
	Refresh(ctx context.Context) error
}
