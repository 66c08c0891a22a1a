package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront-hq/gateway/pkg/proxy"
	"storefront-hq/gateway/pkg/proxy/types"
)

// PricePath is the price service endpoint for price queries.
const PricePath = "/api/v1/prices/query"

// PriceHandler composes a product price from the price service and attaches
// a tracking id.
type PriceHandler struct {
	Downstream Downstream
	Tracking   TrackingFunc
}

// NewPriceHandler creates a price composition handler. A nil tracking
// function yields the tracking id "na".
func NewPriceHandler(ds Downstream, tracking TrackingFunc) *PriceHandler {
	if tracking == nil {
		tracking = func() string { return "na" }
	}
	return &PriceHandler{Downstream: ds, Tracking: tracking}
}

// ServeHTTP implements http.Handler.
func (h *PriceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var q types.ProductPriceQuery
	if err := proxy.DecodeJSON(r, &q); err != nil {
		slog.InfoContext(r.Context(), "rejected price query", "error", err)
		writeError(w, r, err)
		return
	}

	forward(w, r, h.Downstream, http.MethodPost, PricePath, nil, &q, func(body json.RawMessage) any {
		return &types.PriceComposition{
			Price:      body,
			TrackingID: h.Tracking(),
		}
	})
}
