package proxy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"storefront-hq/gateway/pkg/proxy/types"
)

const (
	// MaxRequestBodySize is the maximum allowed request body size (10MB).
	MaxRequestBodySize = 10 * 1024 * 1024

	// RequestIDHeader is the HTTP header for request ID propagation.
	RequestIDHeader = "X-Request-ID"
)

// Validator is implemented by request bodies that check their own shape.
type Validator interface {
	Validate() error
}

// DecodeJSON reads the request body into v and validates it when v
// implements Validator.
//
// Malformed JSON yields a 400 RequestError. A well-formed body with a missing
// field, a wrongly typed field or a failed Validate yields a 422 RequestError
// whose Param names the field.
//
// Example usage:
//
//	var q types.ProductPriceQuery
//	if err := proxy.DecodeJSON(r, &q); err != nil {
//	    proxy.WriteError(w, err)
//	    return
//	}
func DecodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if len(body) > MaxRequestBodySize {
		return &RequestError{
			Type:    types.ErrorTypeInvalidRequest,
			Message: fmt.Sprintf("request body exceeds maximum size of %d bytes", MaxRequestBodySize),
			Code:    types.CodeRequestTooLarge,
			Param:   "body",
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return &RequestError{
			Type:    types.ErrorTypeValidation,
			Message: "request body is required",
			Code:    types.CodeMissingField,
			Param:   "body",
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		var valErr *types.ValidationError
		if errors.As(err, &valErr) {
			return &RequestError{
				Type:    types.ErrorTypeValidation,
				Message: valErr.Message,
				Code:    valErr.Code,
				Param:   valErr.Field,
			}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field == "" {
				return &RequestError{
					Type:    types.ErrorTypeValidation,
					Message: "request body must be a JSON object",
					Code:    types.CodeInvalidValue,
					Param:   "body",
				}
			}
			return &RequestError{
				Type:    types.ErrorTypeValidation,
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
				Code:    types.CodeInvalidValue,
				Param:   typeErr.Field,
			}
		}
		return &RequestError{
			Type:    types.ErrorTypeInvalidRequest,
			Message: fmt.Sprintf("invalid JSON: %v", err),
			Code:    types.CodeInvalidJSON,
			Param:   "body",
		}
	}

	if val, ok := v.(Validator); ok {
		if err := val.Validate(); err != nil {
			var valErr *types.ValidationError
			if errors.As(err, &valErr) {
				return &RequestError{
					Type:    types.ErrorTypeValidation,
					Message: valErr.Message,
					Code:    valErr.Code,
					Param:   valErr.Field,
				}
			}
			return err
		}
	}

	return nil
}

// ExtractRequestID extracts the request ID from the X-Request-ID header.
// If the header is not present, it returns an empty string.
func ExtractRequestID(r *http.Request) string {
	return r.Header.Get(RequestIDHeader)
}

// RequestError represents a request parsing or validation error.
type RequestError struct {
	// Type is types.ErrorTypeInvalidRequest (400/413) or types.ErrorTypeValidation (422)
	Type    string
	Message string
	Code    string
	Param   string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// ToErrorResponse converts a RequestError to an error response.
func (e *RequestError) ToErrorResponse() *types.ErrorResponse {
	errType := e.Type
	if errType == "" {
		errType = types.ErrorTypeInvalidRequest
	}
	return types.NewErrorResponse(e.Message, errType, e.Param, e.Code)
}
