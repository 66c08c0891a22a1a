package metrics

import (
	"strconv"
	"time"

	"storefront-hq/gateway/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector owns every Prometheus metric exported by the gateway.
// All recording methods are safe for concurrent use and are no-ops when
// metrics are disabled.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	requestMetrics    *RequestMetrics
	downstreamMetrics *DownstreamMetrics

	authRejections *prometheus.CounterVec
}

// NewCollector creates a new metrics collector. If registry is nil a fresh
// private registry is created, so multiple collectors never clash on
// registration (useful in tests). cfg is copied and never modified.
//
// Example:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	router.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	local := *cfg
	if local.Namespace == "" {
		local.Namespace = config.DefaultMetricsNamespace
	}
	cfg = &local

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.requestMetrics = NewRequestMetrics(cfg, registry)
	c.downstreamMetrics = NewDownstreamMetrics(cfg, registry)

	c.authRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "auth_rejections_total",
			Help:      "Total number of requests rejected by the access guard",
		},
		[]string{"reason"},
	)
	registry.MustRegister(
		c.authRejections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// RecordHTTPRequest records a completed inbound request.
//
// Parameters:
//   - route: route template (e.g., "/compose/product-price"), never the raw path
//   - method: HTTP method
//   - status: response status code
//   - duration: total handling time
func (c *Collector) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.requestMetrics.Record(route, method, strconv.Itoa(status), duration)
}

// ObserveDownstream records the outcome of one downstream call.
// Outcomes are "success", "http_error", "timeout", "unreachable" and "too_large".
func (c *Collector) ObserveDownstream(service, outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.downstreamMetrics.Record(service, outcome, duration)
}

// RecordAuthRejection records a request denied by the access guard.
func (c *Collector) RecordAuthRejection(reason string) {
	if !c.config.Enabled {
		return
	}
	c.authRejections.WithLabelValues(reason).Inc()
}

// Registry returns the Prometheus registry backing this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
