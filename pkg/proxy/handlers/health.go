package handlers

import (
	"log/slog"
	"net/http"

	"storefront-hq/gateway/pkg/proxy"
	"storefront-hq/gateway/pkg/proxy/types"
)

// HealthHandler handles liveness checks. It never calls a downstream.
type HealthHandler struct {
	Service string
	Env     string
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(service, env string) *HealthHandler {
	return &HealthHandler{Service: service, Env: env}
}

// ServeHTTP implements http.Handler for liveness checks.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := &types.HealthResponse{
		Status:  "ok",
		Service: h.Service,
		Env:     h.Env,
	}
	if err := proxy.WriteJSONResponse(w, http.StatusOK, response); err != nil {
		slog.ErrorContext(r.Context(), "failed to write health response", "error", err)
	}
}
