// Package proxy holds the request decoding, error mapping and response writing
// shared by the gateway's handlers.
//
// # Request decoding
//
// DecodeJSON reads a bounded body (MaxRequestBodySize) and reports problems as
// *RequestError:
//
//   - body is not JSON: 400 invalid_request_error / invalid_json
//   - body missing, a field missing or a field of the wrong type: 422 validation_error
//   - body too large: 413 invalid_request_error / request_too_large
//
// # Error mapping
//
// HandleError maps typed errors to the {"error":{...}} envelope:
//
//   - auth.ErrUnauthorized: 401
//   - downstream.ErrTimeout: 504 gateway_timeout
//   - downstream.ErrUnreachable: 502 bad_gateway / downstream_unreachable
//   - *downstream.InvalidResponseError: 502 bad_gateway / invalid_downstream_response
//   - anything else: 500
//
// A downstream that answers with a non-2xx status is not an error. Its status,
// body and Content-Type are mirrored by WriteDownstreamError.
//
// # Subpackages
//
//   - handlers: the proxy, health and documentation handlers
//   - middleware: recovery, logging, request id, CORS and metrics
//   - types: inbound request, response and error bodies
package proxy
