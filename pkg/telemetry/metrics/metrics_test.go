package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront-hq/gateway/pkg/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestCollector(enabled bool) *Collector {
	return NewCollector(&config.MetricsConfig{Enabled: enabled, Path: "/metrics"}, nil)
}

func TestNewCollector_DefaultsNamespace(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	c := NewCollector(cfg, nil)

	if cfg.Namespace != "" {
		t.Errorf("caller config was modified: namespace %q", cfg.Namespace)
	}
	if c.Registry() == nil {
		t.Fatal("expected non-nil registry")
	}

	c.RecordAuthRejection("missing_key")
	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	want := config.DefaultMetricsNamespace + "_auth_rejections_total"
	found := false
	for _, mf := range families {
		if mf.GetName() == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected metric family %q", want)
	}
}

func TestNewCollector_Independent(t *testing.T) {
	// Two collectors on private registries must not panic on registration.
	_ = newTestCollector(true)
	_ = newTestCollector(true)
}

func TestCollector_RecordHTTPRequest(t *testing.T) {
	c := newTestCollector(true)

	c.RecordHTTPRequest("/health", "GET", 200, 5*time.Millisecond)
	c.RecordHTTPRequest("/health", "GET", 200, 7*time.Millisecond)
	c.RecordHTTPRequest("/compose/product-price", "POST", 504, time.Second)

	if got := testutil.ToFloat64(c.requestMetrics.requestsTotal.WithLabelValues("/health", "GET", "200")); got != 2 {
		t.Errorf("expected 2 health requests, got %v", got)
	}
	if got := testutil.ToFloat64(c.requestMetrics.requestsTotal.WithLabelValues("/compose/product-price", "POST", "504")); got != 1 {
		t.Errorf("expected 1 price request, got %v", got)
	}
	if n := testutil.CollectAndCount(c.requestMetrics.requestDuration); n != 2 {
		t.Errorf("expected 2 duration series, got %d", n)
	}
}

func TestCollector_ObserveDownstream(t *testing.T) {
	c := newTestCollector(true)

	outcomes := []string{"success", "success", "http_error", "timeout", "unreachable"}
	for _, o := range outcomes {
		c.ObserveDownstream("price", o, 10*time.Millisecond)
	}

	tests := []struct {
		outcome string
		want    float64
	}{
		{"success", 2},
		{"http_error", 1},
		{"timeout", 1},
		{"unreachable", 1},
	}
	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			got := testutil.ToFloat64(c.downstreamMetrics.requestsTotal.WithLabelValues("price", tt.outcome))
			if got != tt.want {
				t.Errorf("outcome %s: expected %v, got %v", tt.outcome, tt.want, got)
			}
		})
	}
}

func TestCollector_RecordAuthRejection(t *testing.T) {
	c := newTestCollector(true)

	c.RecordAuthRejection("missing_key")
	c.RecordAuthRejection("invalid_key")
	c.RecordAuthRejection("invalid_key")

	if got := testutil.ToFloat64(c.authRejections.WithLabelValues("invalid_key")); got != 2 {
		t.Errorf("expected 2 invalid_key rejections, got %v", got)
	}
	if got := testutil.ToFloat64(c.authRejections.WithLabelValues("missing_key")); got != 1 {
		t.Errorf("expected 1 missing_key rejection, got %v", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	c := newTestCollector(false)

	c.RecordHTTPRequest("/health", "GET", 200, time.Millisecond)
	c.ObserveDownstream("price", "success", time.Millisecond)
	c.RecordAuthRejection("missing_key")

	if n := testutil.CollectAndCount(c.requestMetrics.requestsTotal); n != 0 {
		t.Errorf("expected no request series when disabled, got %d", n)
	}
	if n := testutil.CollectAndCount(c.downstreamMetrics.requestsTotal); n != 0 {
		t.Errorf("expected no downstream series when disabled, got %d", n)
	}
	if n := testutil.CollectAndCount(c.authRejections); n != 0 {
		t.Errorf("expected no auth series when disabled, got %d", n)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := newTestCollector(true)
	c.RecordHTTPRequest("/health", "GET", 200, time.Millisecond)
	c.ObserveDownstream("analytics", "timeout", 20*time.Second)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	for _, want := range []string{
		`gateway_http_requests_total{method="GET",route="/health",status="200"} 1`,
		`gateway_downstream_requests_total{outcome="timeout",service="analytics"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected exposition to contain %q", want)
		}
	}
}
