// Package handlers provides the gateway's HTTP handlers.
//
// # Proxy handlers
//
//   - PriceHandler: POST /compose/product-price to POST <price>/api/v1/prices/query
//   - NotificationHandler: POST /proxy/notifications/send to POST <notification>/api/v1/notifications/send
//   - SalesSummaryHandler: GET /proxy/analytics/sales-summary to GET <analytics>/api/v1/analytics/sales-summary?range=
//
// Each proxy handler follows the same steps:
//
//  1. Decode and validate the inbound body or query
//  2. Make exactly one downstream call
//  3. Map the result:
//     non-2xx is mirrored (status, body, Content-Type),
//     a timeout becomes 504, any other transport failure 502,
//     and a 2xx JSON body is returned with status 200
//
// Only PriceHandler enriches the response. It wraps the downstream body as
// {"price": ..., "tracking_id": ...}.
//
// Authorization is not done here. Protected routes are wrapped by the auth
// middleware, so a rejected request never reaches a handler.
//
// # Auxiliary handlers
//
//   - HealthHandler: GET /health, static liveness payload
//   - WebSocketDocsHandler: GET /docs/websocket, informational stub
package handlers
