package downstream

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout is matched by errors.Is when a call exceeded its deadline.
	ErrTimeout = errors.New("downstream timeout")

	// ErrUnreachable is matched by errors.Is for every other transport failure.
	ErrUnreachable = errors.New("downstream unreachable")

	// ErrResponseTooLarge is wrapped by InvalidResponseError when a body
	// exceeds the client's size cap.
	ErrResponseTooLarge = errors.New("downstream response too large")
)

// UnreachableError reports that no HTTP response was obtained from a
// downstream service, either because the connection failed or because the
// deadline elapsed first.
type UnreachableError struct {
	// Service is the configured downstream name (e.g., "price")
	Service string

	// URL is the target that was called
	URL string

	// Timeout is true when the deadline elapsed before a response arrived
	Timeout bool

	// After is the configured timeout, set when Timeout is true
	After time.Duration

	// Cause is the underlying transport error
	Cause error
}

// Error implements the error interface.
func (e *UnreachableError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("downstream %q timed out after %s", e.Service, e.After)
	}
	return fmt.Sprintf("downstream %q unreachable: %v", e.Service, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *UnreachableError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match ErrTimeout or ErrUnreachable.
func (e *UnreachableError) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return e.Timeout
	case ErrUnreachable:
		return !e.Timeout
	}
	return false
}

// InvalidResponseError reports a downstream response whose body cannot be
// relayed: a 2xx body that is not valid JSON, or any body over the size cap.
type InvalidResponseError struct {
	// Service is the configured downstream name
	Service string

	// StatusCode is the downstream status
	StatusCode int

	// Cause is the underlying decode error
	Cause error
}

// Error implements the error interface.
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("downstream %q returned an invalid response (status %d): %v", e.Service, e.StatusCode, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *InvalidResponseError) Unwrap() error {
	return e.Cause
}
