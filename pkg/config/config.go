package config

import "time"

// Config is the root configuration structure for the gateway.
// It is built once at startup by Load and treated as read-only afterwards.
type Config struct {
	// Service identifies this gateway instance in health responses and logs.
	Service ServiceConfig `yaml:"service"`

	// Downstreams contains the base URLs of the backend services and the
	// per-call timeout used when talking to them.
	Downstreams DownstreamsConfig `yaml:"downstreams"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`

	// Security contains the optional static API key.
	Security SecurityConfig `yaml:"security"`

	// Server contains HTTP listener configuration.
	Server ServerConfig `yaml:"server"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServiceConfig describes the running service.
type ServiceConfig struct {
	// Name is reported by the health endpoint.
	// Env: API_GATEWAY_SERVICE_NAME. Default: "API Gateway"
	Name string `yaml:"name"`

	// Env is the deployment environment tag.
	// Env: ENV. Default: "development"
	Env string `yaml:"env"`
}

// DownstreamsConfig contains one base URL per backend service.
type DownstreamsConfig struct {
	// PriceURL is the base URL of the price service.
	// Env: PRICE_SERVICE_URL. Default: "http://localhost:8001"
	PriceURL string `yaml:"price_url"`

	// NotificationURL is the base URL of the notification service.
	// Env: NOTIFICATION_SERVICE_URL. Default: "http://localhost:8002"
	NotificationURL string `yaml:"notification_url"`

	// AnalyticsURL is the base URL of the analytics service.
	// Env: ANALYTICS_SERVICE_URL. Default: "http://localhost:8003"
	AnalyticsURL string `yaml:"analytics_url"`

	// Timeout bounds a single downstream call end to end.
	// Env: GATEWAY_HTTP_TIMEOUT (seconds, e.g. "20" or "2.5", or a Go duration).
	// Default: 20s
	Timeout time.Duration `yaml:"timeout"`
}

// CORSConfig contains CORS configuration.
type CORSConfig struct {
	// AllowedOrigins is the list of allowed origins. ["*"] allows any origin.
	// Env: ALLOWED_ORIGINS (comma separated). Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowCredentials controls whether credentials are allowed.
	// Default: true
	AllowCredentials bool `yaml:"allow_credentials"`
}

// SecurityConfig contains access control settings.
type SecurityConfig struct {
	// APIKey is the static key clients must present in the x-api-key header.
	// An empty key disables the check.
	// Env: API_GATEWAY_API_KEY. Default: unset
	APIKey string `yaml:"api_key"`

	// APIKeyFile names a file holding the API key, re-read when it changes.
	// Mutually exclusive with APIKey. The file must be mode 0600 or 0400.
	// Env: API_GATEWAY_API_KEY_FILE. Default: unset
	APIKeyFile string `yaml:"api_key_file"`
}

// ServerConfig contains configuration for the inbound HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Env: GATEWAY_LISTEN_ADDRESS. Default: "0.0.0.0:8000"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Env: GATEWAY_READ_TIMEOUT. Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response writes.
	// It must exceed Downstreams.Timeout.
	// Env: GATEWAY_WRITE_TIMEOUT. Default: Downstreams.Timeout + 10s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight
	// requests during graceful shutdown.
	// Env: GATEWAY_SHUTDOWN_TIMEOUT. Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// TelemetryConfig contains logging and metrics configuration.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Env: GATEWAY_LOG_LEVEL. Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Env: GATEWAY_LOG_FORMAT. Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Env: GATEWAY_METRICS_ENABLED. Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus endpoint.
	// Env: GATEWAY_METRICS_PATH. Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "gateway"
	Namespace string `yaml:"namespace"`
}

// Redacted returns a copy of the configuration that is safe to print.
func (c *Config) Redacted() *Config {
	out := *c
	out.CORS.AllowedOrigins = append([]string(nil), c.CORS.AllowedOrigins...)
	if out.Security.APIKey != "" {
		out.Security.APIKey = "***"
	}
	return &out
}
