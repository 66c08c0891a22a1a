// Package metrics provides Prometheus metrics collection for the gateway.
//
// # Metrics
//
//   - gateway_http_requests_total{route,method,status}
//   - gateway_http_request_duration_seconds{route,method}
//   - gateway_downstream_requests_total{service,outcome}
//   - gateway_downstream_request_duration_seconds{service}
//   - gateway_auth_rejections_total{reason}
//
// Go runtime and process collectors are registered alongside.
//
// Route labels are always mux route templates. Requests that match no route
// are labelled "unmatched", which keeps label cardinality bounded.
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.RecordHTTPRequest("/health", "GET", 200, 3*time.Millisecond)
//	collector.ObserveDownstream("price", "success", 120*time.Millisecond)
//
//	router.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
package metrics
