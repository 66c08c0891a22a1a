package types

// ErrorResponse is the envelope for every gateway-originated error.
// Downstream errors are passed through verbatim and never use it.
type ErrorResponse struct {
	// Error contains the error details.
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains detailed error information.
type ErrorDetail struct {
	// Message is a human-readable error message.
	Message string `json:"message"`

	// Type categorizes the error and determines the HTTP status.
	Type string `json:"type"`

	// Param is the name of the parameter that caused the error (if applicable).
	Param string `json:"param,omitempty"`

	// Code is a machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error type constants.
const (
	// ErrorTypeInvalidRequest indicates a malformed request (400).
	ErrorTypeInvalidRequest = "invalid_request_error"

	// ErrorTypeAuthentication indicates a missing or wrong API key (401).
	ErrorTypeAuthentication = "authentication_error"

	// ErrorTypeNotFound indicates an unknown route (404).
	ErrorTypeNotFound = "not_found"

	// ErrorTypeMethodNotAllowed indicates a known route with the wrong method (405).
	ErrorTypeMethodNotAllowed = "method_not_allowed"

	// ErrorTypeValidation indicates a well-formed body with an invalid shape (422).
	ErrorTypeValidation = "validation_error"

	// ErrorTypeServerError indicates an internal server error (500).
	ErrorTypeServerError = "server_error"

	// ErrorTypeBadGateway indicates a downstream could not be reached or misbehaved (502).
	ErrorTypeBadGateway = "bad_gateway"

	// ErrorTypeGatewayTimeout indicates a downstream timeout (504).
	ErrorTypeGatewayTimeout = "gateway_timeout"
)

// Error code constants for common error scenarios.
const (
	// CodeMissingField indicates a required field is missing.
	CodeMissingField = "missing_field"

	// CodeInvalidValue indicates a field has an invalid value or type.
	CodeInvalidValue = "invalid_value"

	// CodeInvalidJSON indicates the request body is not valid JSON.
	CodeInvalidJSON = "invalid_json"

	// CodeRequestTooLarge indicates the request payload is too large.
	CodeRequestTooLarge = "request_too_large"

	// CodeUnauthorized indicates the API key was missing or wrong.
	CodeUnauthorized = "unauthorized"

	// CodeRouteNotFound indicates no route matched the path.
	CodeRouteNotFound = "route_not_found"

	// CodeMethodNotAllowed indicates the route exists for other methods.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeDownstreamUnreachable indicates a transport failure to a downstream.
	CodeDownstreamUnreachable = "downstream_unreachable"

	// CodeDownstreamTimeout indicates the downstream call exceeded its timeout.
	CodeDownstreamTimeout = "downstream_timeout"

	// CodeInvalidDownstreamResponse indicates a 2xx downstream body that is not JSON.
	CodeInvalidDownstreamResponse = "invalid_downstream_response"

	// CodeInternalError indicates an internal server error.
	CodeInternalError = "internal_error"
)

// NewErrorResponse creates a new error response with the given details.
func NewErrorResponse(message, errorType, param, code string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Message: message,
			Type:    errorType,
			Param:   param,
			Code:    code,
		},
	}
}

// NewInvalidRequestError creates an error response for malformed requests (400).
func NewInvalidRequestError(message, param, code string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeInvalidRequest, param, code)
}

// NewValidationError creates an error response for shape violations (422).
func NewValidationError(message, param, code string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeValidation, param, code)
}

// NewUnauthorizedError creates an error response for rejected API keys (401).
func NewUnauthorizedError() *ErrorResponse {
	return NewErrorResponse("Unauthorized", ErrorTypeAuthentication, "", CodeUnauthorized)
}

// NewNotFoundError creates an error response for unknown routes (404).
func NewNotFoundError(path string) *ErrorResponse {
	return NewErrorResponse("No route matches "+path, ErrorTypeNotFound, "", CodeRouteNotFound)
}

// NewMethodNotAllowedError creates an error response for wrong methods (405).
func NewMethodNotAllowedError(method string) *ErrorResponse {
	return NewErrorResponse("Method "+method+" not allowed", ErrorTypeMethodNotAllowed, "", CodeMethodNotAllowed)
}

// NewServerError creates an error response for internal server errors (500).
func NewServerError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeServerError, "", CodeInternalError)
}

// NewBadGatewayError creates an error response for downstream failures (502).
func NewBadGatewayError(message, code string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeBadGateway, "", code)
}

// NewGatewayTimeoutError creates an error response for downstream timeouts (504).
func NewGatewayTimeoutError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeGatewayTimeout, "", CodeDownstreamTimeout)
}

// HTTPStatusCode returns the appropriate HTTP status code for the error type.
func (e *ErrorDetail) HTTPStatusCode() int {
	switch e.Type {
	case ErrorTypeInvalidRequest:
		if e.Code == CodeRequestTooLarge {
			return 413
		}
		return 400
	case ErrorTypeAuthentication:
		return 401
	case ErrorTypeNotFound:
		return 404
	case ErrorTypeMethodNotAllowed:
		return 405
	case ErrorTypeValidation:
		return 422
	case ErrorTypeServerError:
		return 500
	case ErrorTypeBadGateway:
		return 502
	case ErrorTypeGatewayTimeout:
		return 504
	default:
		return 500
	}
}
