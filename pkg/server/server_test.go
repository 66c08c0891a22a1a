package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"storefront-hq/gateway/pkg/cli"
	"storefront-hq/gateway/pkg/config"
	"storefront-hq/gateway/pkg/proxy/types"
	"storefront-hq/gateway/pkg/telemetry/metrics"
)

// backend is a downstream stand-in that counts calls.
type backend struct {
	*httptest.Server
	calls atomic.Int32
}

func newBackend(t *testing.T, status int, body string) *backend {
	t.Helper()
	b := &backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(b.Close)
	return b
}

func testConfig(priceURL string) *config.Config {
	cfg := config.Defaults()
	cfg.Downstreams.PriceURL = priceURL
	cfg.Downstreams.NotificationURL = priceURL
	cfg.Downstreams.AnalyticsURL = priceURL
	cfg.Downstreams.Timeout = 2 * time.Second
	config.ApplyDefaults(cfg)
	return cfg
}

func decodeError(t *testing.T, body io.Reader) types.ErrorDetail {
	t.Helper()
	var resp types.ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp.Error
}

func TestServer_Health(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Security.APIKey = "secret"
	handler := NewServer(cfg, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var health types.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health.Service != cfg.Service.Name || health.Env != cfg.Service.Env {
		t.Errorf("unexpected health payload: %+v", health)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}
}

func TestServer_UnknownRoutes(t *testing.T) {
	handler := NewServer(testConfig("http://127.0.0.1:1"), nil).Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, types.CodeRouteNotFound},
		{"wrong method on price", http.MethodGet, "/compose/product-price", http.StatusMethodNotAllowed, types.CodeMethodNotAllowed},
		{"wrong method on health", http.MethodPost, "/health", http.StatusMethodNotAllowed, types.CodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := decodeError(t, rec.Body); got.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, got.Code)
			}
		})
	}
}

func TestServer_APIKeyGuard(t *testing.T) {
	price := newBackend(t, http.StatusOK, `{"amount":10}`)
	cfg := testConfig(price.URL)
	cfg.Security.APIKey = "secret"
	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	handler := NewServer(cfg, collector).Handler()

	body := `{"product_id":"p1","currency":"USD"}`

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"valid key", "secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := price.calls.Load()

			req := httptest.NewRequest(http.MethodPost, "/compose/product-price", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.key != "" {
				req.Header.Set("x-api-key", tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			called := price.calls.Load() - before
			if tt.wantStatus == http.StatusUnauthorized {
				if called != 0 {
					t.Errorf("expected no downstream call, got %d", called)
				}
				if got := decodeError(t, rec.Body); got.Type != types.ErrorTypeAuthentication {
					t.Errorf("expected type %q, got %q", types.ErrorTypeAuthentication, got.Type)
				}
			} else if called != 1 {
				t.Errorf("expected 1 downstream call, got %d", called)
			}
		})
	}
}

func TestServer_AuthBeforeValidation(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Security.APIKey = "secret"
	handler := NewServer(cfg, nil).Handler()

	req := httptest.NewRequest(http.MethodPost, "/proxy/notifications/send", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestServer_AllowAllWithoutKey(t *testing.T) {
	analytics := newBackend(t, http.StatusOK, `{"total":42}`)
	handler := NewServer(testConfig(analytics.URL), nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/proxy/analytics/sales-summary?range=30d", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"total":42}` {
		t.Errorf("expected passthrough body, got %s", got)
	}
}

func TestServer_CORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{"wildcard reflects origin", []string{"*"}, "https://shop.example", "https://shop.example"},
		{"listed origin", []string{"https://shop.example"}, "https://shop.example", "https://shop.example"},
		{"unlisted origin", []string{"https://shop.example"}, "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("http://127.0.0.1:1")
			cfg.CORS.AllowedOrigins = tt.origins
			cfg.Security.APIKey = "secret"
			handler := NewServer(cfg, nil).Handler()

			req := httptest.NewRequest(http.MethodOptions, "/compose/product-price", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "x-api-key, content-type")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code == http.StatusUnauthorized {
				t.Fatal("preflight must not require an API key")
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("expected Access-Control-Allow-Origin %q, got %q", tt.wantHeader, got)
			}
		})
	}
}

func TestServer_MetricsEndpoint(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	handler := NewServer(cfg, nil).Handler()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing/42", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	text := rec.Body.String()
	for _, want := range []string{
		`gateway_http_requests_total{method="GET",route="/health",status="200"} 1`,
		`gateway_http_requests_total{method="GET",route="unmatched",status="404"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected exposition to contain %q", want)
		}
	}
	if strings.Contains(text, "/missing/42") {
		t.Error("raw path leaked into metric labels")
	}
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Telemetry.Metrics.Enabled = false
	handler := NewServer(cfg, nil).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Server.ListenAddress = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = 5 * time.Second
	srv := NewServer(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	var addr net.Addr
	deadline := time.Now().Add(5 * time.Second)
	for addr == nil && time.Now().Before(deadline) {
		addr = srv.Addr()
		if addr == nil {
			time.Sleep(10 * time.Millisecond)
		}
	}
	if addr == nil {
		t.Fatal("server did not bind in time")
	}
	if !srv.IsRunning() {
		t.Error("expected server to report running")
	}

	resp, err := http.Get("http://" + addr.String() + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
	if srv.IsRunning() {
		t.Error("expected server to report stopped")
	}
}

func TestServer_StopsOnSignalContext(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Server.ListenAddress = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = 5 * time.Second
	srv := NewServer(cfg, nil)

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for srv.Addr() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if srv.Addr() == nil {
		t.Fatal("server did not bind in time")
	}

	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess() error = %v", err)
	}
	if err := p.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("failed to signal self: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down on SIGTERM")
	}
}

func TestServer_StartBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Server.ListenAddress = ln.Addr().String()
	srv := NewServer(cfg, nil)

	if err := srv.Start(context.Background()); err == nil {
		t.Fatal("expected bind error")
	}
	if srv.IsRunning() {
		t.Error("server must not report running after bind failure")
	}
}

func TestServer_APIKeyFile(t *testing.T) {
	price := newBackend(t, http.StatusOK, `{"amount":10}`)
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "api-key")
	if err := os.WriteFile(keyPath, []byte("from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(price.URL)
	cfg.Security.APIKeyFile = keyPath

	authorizer, closer, err := AuthorizerFromConfig(&cfg.Security)
	if err != nil {
		t.Fatalf("AuthorizerFromConfig() error = %v", err)
	}
	defer closer.Close()

	handler := NewServer(cfg, nil, WithAuthorizer(authorizer)).Handler()

	tests := []struct {
		key        string
		wantStatus int
	}{
		{"from-file", http.StatusOK},
		{"wrong", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/proxy/analytics/sales-summary", nil)
			req.Header.Set("x-api-key", tt.key)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestAuthorizerFromConfig_MissingFile(t *testing.T) {
	sec := &config.SecurityConfig{APIKeyFile: filepath.Join(t.TempDir(), "absent")}
	if _, _, err := AuthorizerFromConfig(sec); err == nil {
		t.Error("expected error for missing key file")
	}
}
