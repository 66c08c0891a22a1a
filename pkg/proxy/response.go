package proxy

import (
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-hq/gateway/pkg/downstream"
	"storefront-hq/gateway/pkg/proxy/types"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer.
// It sets the appropriate content-type header and handles marshaling errors.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// WriteErrorResponse writes an error envelope.
// It extracts the appropriate HTTP status code from the error type.
func WriteErrorResponse(w http.ResponseWriter, errResp *types.ErrorResponse) error {
	statusCode := errResp.Error.HTTPStatusCode()
	return WriteJSONResponse(w, statusCode, errResp)
}

// WriteError maps err with HandleError and writes the result.
func WriteError(w http.ResponseWriter, err error) error {
	return WriteErrorResponse(w, HandleError(err))
}

// WriteDownstreamError mirrors a non-2xx downstream response: same status,
// same body bytes and the downstream Content-Type.
func WriteDownstreamError(w http.ResponseWriter, res *downstream.Result) error {
	w.Header().Set("Content-Type", res.ContentType())
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(res.Body); err != nil {
		return fmt.Errorf("failed to write downstream body: %w", err)
	}
	return nil
}
