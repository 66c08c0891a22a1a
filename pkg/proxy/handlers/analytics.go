package handlers

import (
	"net/http"

	"storefront-hq/gateway/pkg/proxy/types"
)

// SalesSummaryPath is the analytics service endpoint for sales summaries.
const SalesSummaryPath = "/api/v1/analytics/sales-summary"

// SalesSummaryHandler forwards sales summary queries to the analytics service.
type SalesSummaryHandler struct {
	Downstream Downstream
}

// NewSalesSummaryHandler creates an analytics proxy handler.
func NewSalesSummaryHandler(ds Downstream) *SalesSummaryHandler {
	return &SalesSummaryHandler{Downstream: ds}
}

// ServeHTTP implements http.Handler.
func (h *SalesSummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := types.ParseSalesSummaryQuery(r.URL.Query())
	forward(w, r, h.Downstream, http.MethodGet, SalesSummaryPath, q.Values(), nil, nil)
}
