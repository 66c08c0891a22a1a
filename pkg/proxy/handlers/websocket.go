package handlers

import (
	"log/slog"
	"net/http"

	"storefront-hq/gateway/pkg/proxy"
	"storefront-hq/gateway/pkg/proxy/types"
)

// WebSocketDocsHandler documents that the gateway has no WebSocket routes.
// It is informational only and has no side effects.
type WebSocketDocsHandler struct{}

// NewWebSocketDocsHandler creates the WebSocket documentation handler.
func NewWebSocketDocsHandler() *WebSocketDocsHandler {
	return &WebSocketDocsHandler{}
}

// ServeHTTP implements http.Handler.
func (h *WebSocketDocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	info := &types.WebSocketInfo{
		Message: "No WebSocket routes currently implemented.",
		Note:    "Add WebSocket routes in future if needed for real-time pricing or analytics streaming.",
	}
	if err := proxy.WriteJSONResponse(w, http.StatusOK, info); err != nil {
		slog.ErrorContext(r.Context(), "failed to write websocket docs", "error", err)
	}
}
