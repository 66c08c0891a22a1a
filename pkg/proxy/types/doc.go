// Package types defines the request, response and error bodies of the gateway's
// inbound HTTP surface.
//
// Request types:
//   - ProductPriceQuery: body of POST /compose/product-price
//   - SendNotificationRequest: body of POST /proxy/notifications/send
//   - SalesSummaryQuery: query of GET /proxy/analytics/sales-summary
//
// Response types:
//   - PriceComposition: the price service response plus a tracking id
//   - HealthResponse, WebSocketInfo: auxiliary endpoints
//
// Error types:
//   - ErrorResponse: {"error":{"message","type","param","code"}}
//
// Downstream responses are never modelled here. They are forwarded as raw JSON.
package types
