package downstream

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Result is a downstream HTTP response that has been fully read.
// Any status code is a valid Result; transport failures are reported as
// errors by Client.Do instead.
type Result struct {
	// Service is the downstream that produced this result
	Service string

	// StatusCode is the HTTP status code
	StatusCode int

	// Body is the raw response body
	Body []byte

	// Header holds the response headers
	Header http.Header
}

// OK reports whether the downstream answered with a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ContentType returns the downstream Content-Type, defaulting to
// application/json when the downstream did not set one.
func (r *Result) ContentType() string {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/json"
}

// JSON returns the body as a raw JSON value. An empty or malformed body
// yields an *InvalidResponseError.
func (r *Result) JSON() (json.RawMessage, error) {
	if !json.Valid(r.Body) {
		cause := errors.New("body is not valid JSON")
		if len(r.Body) == 0 {
			cause = errors.New("empty body")
		}
		return nil, &InvalidResponseError{
			Service:    r.Service,
			StatusCode: r.StatusCode,
			Cause:      cause,
		}
	}
	return json.RawMessage(r.Body), nil
}
