package handlers

import (
	"log/slog"
	"net/http"

	"storefront-hq/gateway/pkg/proxy"
	"storefront-hq/gateway/pkg/proxy/types"
)

// NotificationPath is the notification service endpoint for sending email.
const NotificationPath = "/api/v1/notifications/send"

// NotificationHandler forwards send requests to the notification service.
type NotificationHandler struct {
	Downstream Downstream
}

// NewNotificationHandler creates a notification proxy handler.
func NewNotificationHandler(ds Downstream) *NotificationHandler {
	return &NotificationHandler{Downstream: ds}
}

// ServeHTTP implements http.Handler.
func (h *NotificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req types.SendNotificationRequest
	if err := proxy.DecodeJSON(r, &req); err != nil {
		slog.InfoContext(r.Context(), "rejected notification request", "error", err)
		writeError(w, r, err)
		return
	}

	forward(w, r, h.Downstream, http.MethodPost, NotificationPath, nil, &req, nil)
}
