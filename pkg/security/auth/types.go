package auth

import (
	"errors"
	"fmt"
	"net/http"
)

// HeaderAPIKey is the request header carrying the client API key.
const HeaderAPIKey = "x-api-key"

// Rejection reasons reported by UnauthorizedError.
const (
	ReasonMissingKey = "missing_key"
	ReasonInvalidKey = "invalid_key"
)

// ErrUnauthorized is matched by errors.Is for every authorization denial.
var ErrUnauthorized = errors.New("unauthorized")

// Authorizer decides whether a request may reach a protected handler.
// Implementations must be safe for concurrent use.
type Authorizer interface {
	// Authorize returns nil to admit the request or an error to deny it.
	Authorize(r *http.Request) error
}

// UnauthorizedError is returned by an Authorizer that denies a request.
type UnauthorizedError struct {
	// Reason is ReasonMissingKey or ReasonInvalidKey
	Reason string
}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

// Is lets errors.Is match ErrUnauthorized.
func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}
