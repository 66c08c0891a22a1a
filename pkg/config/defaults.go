package config

import "time"

// Default values for configuration fields.
const (
	// Service defaults
	DefaultServiceName = "API Gateway"
	DefaultEnv         = "development"

	// Downstream defaults
	DefaultPriceURL           = "http://localhost:8001"
	DefaultNotificationURL    = "http://localhost:8002"
	DefaultAnalyticsURL       = "http://localhost:8003"
	DefaultDownstreamTimeout  = 20 * time.Second
	DefaultWriteTimeoutMargin = 10 * time.Second

	// Server defaults
	DefaultListenAddress   = "0.0.0.0:8000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSAllowCredentials = true

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "gateway"

	// DefaultTrackingID is returned when TRACKING_ID is unset.
	DefaultTrackingID = "na"
)

// Defaults returns a configuration populated with every default value.
// The result is runnable as is: each downstream points at a distinct
// localhost port.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name: DefaultServiceName,
			Env:  DefaultEnv,
		},
		Downstreams: DownstreamsConfig{
			PriceURL:        DefaultPriceURL,
			NotificationURL: DefaultNotificationURL,
			AnalyticsURL:    DefaultAnalyticsURL,
			Timeout:         DefaultDownstreamTimeout,
		},
		CORS: CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowCredentials: DefaultCORSAllowCredentials,
		},
		Server: ServerConfig{
			ListenAddress:   DefaultListenAddress,
			ReadTimeout:     DefaultReadTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxHeaderBytes:  DefaultMaxHeaderBytes,
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:  DefaultLoggingLevel,
				Format: DefaultLoggingFormat,
			},
			Metrics: MetricsConfig{
				Enabled:   DefaultMetricsEnabled,
				Path:      DefaultMetricsPath,
				Namespace: DefaultMetricsNamespace,
			},
		},
	}
}

// ApplyDefaults fills derived and zero-valued fields.
// It is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	if cfg.Downstreams.Timeout == 0 {
		cfg.Downstreams.Timeout = DefaultDownstreamTimeout
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	// Leave room for the downstream call plus response encoding.
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = cfg.Downstreams.Timeout + DefaultWriteTimeoutMargin
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}
