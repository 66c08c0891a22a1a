package types

import "encoding/json"

// PriceComposition is the response of POST /compose/product-price.
type PriceComposition struct {
	// Price is the price service response, verbatim.
	Price json.RawMessage `json:"price"`

	// TrackingID correlates the composed response with analytics.
	TrackingID string `json:"tracking_id"`
}

// HealthResponse is the liveness payload of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Env     string `json:"env"`
}

// WebSocketInfo is the informational payload of GET /docs/websocket.
type WebSocketInfo struct {
	Message string `json:"message"`
	Note    string `json:"note"`
}
