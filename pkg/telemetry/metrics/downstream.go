package metrics

import (
	"time"

	"storefront-hq/gateway/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// DownstreamMetrics tracks calls to backend services.
//
// Metrics:
//   - gateway_downstream_requests_total: call count by service and outcome
//   - gateway_downstream_request_duration_seconds: call latency by service
type DownstreamMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewDownstreamMetrics creates and registers downstream metrics with the provided registry.
func NewDownstreamMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *DownstreamMetrics {
	dm := &DownstreamMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "downstream",
				Name:      "requests_total",
				Help:      "Total number of downstream calls by outcome",
			},
			[]string{"service", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "downstream",
				Name:      "request_duration_seconds",
				Help:      "Latency of downstream calls in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
			},
			[]string{"service"},
		),
	}

	registry.MustRegister(dm.requestsTotal, dm.requestDuration)

	return dm
}

// Record records one downstream call.
func (dm *DownstreamMetrics) Record(service, outcome string, duration time.Duration) {
	dm.requestsTotal.WithLabelValues(service, outcome).Inc()
	dm.requestDuration.WithLabelValues(service).Observe(duration.Seconds())
}
