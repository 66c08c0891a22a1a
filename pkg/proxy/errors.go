package proxy

import (
	"errors"
	"fmt"

	"storefront-hq/gateway/pkg/downstream"
	"storefront-hq/gateway/pkg/proxy/types"
	"storefront-hq/gateway/pkg/security/auth"
)

// HandleError converts gateway errors to error responses. Downstream non-2xx
// responses are not errors and never pass through here; see WriteDownstreamError.
//
// Example usage:
//
//	if err != nil {
//	    errResp := HandleError(err)
//	    WriteErrorResponse(w, errResp)
//	    return
//	}
func HandleError(err error) *types.ErrorResponse {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.ToErrorResponse()
	}

	if errors.Is(err, auth.ErrUnauthorized) {
		return types.NewUnauthorizedError()
	}

	var invalidErr *downstream.InvalidResponseError
	if errors.As(err, &invalidErr) {
		return types.NewBadGatewayError(
			fmt.Sprintf("Downstream %s returned an invalid response", invalidErr.Service),
			types.CodeInvalidDownstreamResponse,
		)
	}

	var unreachableErr *downstream.UnreachableError
	if errors.As(err, &unreachableErr) {
		if unreachableErr.Timeout {
			return types.NewGatewayTimeoutError(
				fmt.Sprintf("Downstream %s did not respond within %s", unreachableErr.Service, unreachableErr.After),
			)
		}
		return types.NewBadGatewayError(
			fmt.Sprintf("Downstream %s is unreachable", unreachableErr.Service),
			types.CodeDownstreamUnreachable,
		)
	}

	// Default to internal server error for unknown errors
	return types.NewServerError(
		"An internal error occurred. Please try again later.",
	)
}
