package metrics

import (
	"time"

	"storefront-hq/gateway/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics tracks inbound HTTP traffic.
//
// Metrics:
//   - gateway_http_requests_total: request count by route, method, status
//   - gateway_http_request_duration_seconds: request duration histogram
type RequestMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRequestMetrics creates and registers request metrics with the provided registry.
func NewRequestMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of inbound HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of inbound HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}

	registry.MustRegister(rm.requestsTotal, rm.requestDuration)

	return rm
}

// Record records one completed request.
func (rm *RequestMetrics) Record(route, method, status string, duration time.Duration) {
	rm.requestsTotal.WithLabelValues(route, method, status).Inc()
	rm.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}
