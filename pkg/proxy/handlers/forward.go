package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"storefront-hq/gateway/pkg/proxy"
)

// composeFunc builds the client response from a successful downstream body.
type composeFunc func(body json.RawMessage) any

// forward performs one downstream call and writes the mapped result:
// non-2xx is mirrored, transport errors become 502/504, and 2xx is returned
// as JSON, optionally wrapped by compose.
func forward(w http.ResponseWriter, r *http.Request, ds Downstream, method, path string, query url.Values, payload any, compose composeFunc) {
	ctx := r.Context()
	start := time.Now()

	res, err := ds.Do(ctx, method, path, query, payload)
	latency := time.Since(start)
	if err != nil {
		slog.WarnContext(ctx, "downstream request failed",
			"downstream", ds.Name(),
			"error", err,
			"downstream_latency_ms", latency.Milliseconds(),
		)
		writeError(w, r, err)
		return
	}

	if !res.OK() {
		slog.WarnContext(ctx, "downstream returned error status",
			"downstream", ds.Name(),
			"status", res.StatusCode,
			"downstream_latency_ms", latency.Milliseconds(),
		)
		if err := proxy.WriteDownstreamError(w, res); err != nil {
			slog.ErrorContext(ctx, "failed to write downstream error", "error", err)
		}
		return
	}

	body, err := res.JSON()
	if err != nil {
		slog.WarnContext(ctx, "downstream returned invalid JSON",
			"downstream", ds.Name(),
			"status", res.StatusCode,
			"error", err,
		)
		writeError(w, r, err)
		return
	}

	slog.InfoContext(ctx, "downstream request succeeded",
		"downstream", ds.Name(),
		"status", res.StatusCode,
		"downstream_latency_ms", latency.Milliseconds(),
	)

	var out any = body
	if compose != nil {
		out = compose(body)
	}
	if err := proxy.WriteJSONResponse(w, http.StatusOK, out); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if err := proxy.WriteError(w, err); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", "error", err)
	}
}
