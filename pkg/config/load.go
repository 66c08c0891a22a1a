package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names read by Load.
const (
	EnvServiceName     = "API_GATEWAY_SERVICE_NAME"
	EnvEnvironment     = "ENV"
	EnvPriceURL        = "PRICE_SERVICE_URL"
	EnvNotificationURL = "NOTIFICATION_SERVICE_URL"
	EnvAnalyticsURL    = "ANALYTICS_SERVICE_URL"
	EnvAllowedOrigins  = "ALLOWED_ORIGINS"
	EnvAPIKey          = "API_GATEWAY_API_KEY"
	EnvAPIKeyFile      = "API_GATEWAY_API_KEY_FILE"
	EnvHTTPTimeout     = "GATEWAY_HTTP_TIMEOUT"
	EnvTrackingID      = "TRACKING_ID"

	EnvConfigFile      = "GATEWAY_CONFIG_FILE"
	EnvListenAddress   = "GATEWAY_LISTEN_ADDRESS"
	EnvReadTimeout     = "GATEWAY_READ_TIMEOUT"
	EnvWriteTimeout    = "GATEWAY_WRITE_TIMEOUT"
	EnvShutdownTimeout = "GATEWAY_SHUTDOWN_TIMEOUT"
	EnvLogLevel        = "GATEWAY_LOG_LEVEL"
	EnvLogFormat       = "GATEWAY_LOG_FORMAT"
	EnvMetricsEnabled  = "GATEWAY_METRICS_ENABLED"
	EnvMetricsPath     = "GATEWAY_METRICS_PATH"
)

// Load builds the gateway configuration from the process environment.
//
// The loading sequence is:
//  1. Start from Defaults
//  2. Overlay the YAML file named by GATEWAY_CONFIG_FILE, if set
//  3. Apply environment variable overrides
//  4. Fill derived defaults and validate
//
// A missing API key is not an error; it disables the access check.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads configuration from a YAML file without consulting the
// environment. Fields absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Empty values are treated as unset. Malformed values are collected and
// reported together.
func applyEnvOverrides(cfg *Config) error {
	var errs []FieldError

	if val := os.Getenv(EnvServiceName); val != "" {
		cfg.Service.Name = val
	}
	if val := os.Getenv(EnvEnvironment); val != "" {
		cfg.Service.Env = val
	}

	if val := os.Getenv(EnvPriceURL); val != "" {
		cfg.Downstreams.PriceURL = val
	}
	if val := os.Getenv(EnvNotificationURL); val != "" {
		cfg.Downstreams.NotificationURL = val
	}
	if val := os.Getenv(EnvAnalyticsURL); val != "" {
		cfg.Downstreams.AnalyticsURL = val
	}
	if val := os.Getenv(EnvHTTPTimeout); val != "" {
		d, err := ParseTimeout(val)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvHTTPTimeout, Message: err.Error()})
		} else {
			cfg.Downstreams.Timeout = d
		}
	}

	if val := os.Getenv(EnvAllowedOrigins); val != "" {
		cfg.CORS.AllowedOrigins = ParseOrigins(val)
	}

	if val := os.Getenv(EnvAPIKey); val != "" {
		cfg.Security.APIKey = val
	}
	if val := os.Getenv(EnvAPIKeyFile); val != "" {
		cfg.Security.APIKeyFile = val
	}

	if val := os.Getenv(EnvListenAddress); val != "" {
		cfg.Server.ListenAddress = val
	}
	durations := []struct {
		env    string
		target *time.Duration
	}{
		{EnvReadTimeout, &cfg.Server.ReadTimeout},
		{EnvWriteTimeout, &cfg.Server.WriteTimeout},
		{EnvShutdownTimeout, &cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		val := os.Getenv(d.env)
		if val == "" {
			continue
		}
		parsed, err := time.ParseDuration(val)
		if err != nil {
			errs = append(errs, FieldError{Field: d.env, Message: fmt.Sprintf("invalid duration %q", val)})
			continue
		}
		*d.target = parsed
	}

	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv(EnvLogFormat); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv(EnvMetricsEnabled); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			errs = append(errs, FieldError{Field: EnvMetricsEnabled, Message: fmt.Sprintf("invalid boolean %q", val)})
		} else {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv(EnvMetricsPath); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// ParseOrigins splits a comma-separated origin list and trims whitespace
// around each entry. Empty entries are dropped. An empty list means any
// origin is allowed.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// ParseTimeout parses a downstream timeout. Plain numbers are seconds and
// may be fractional ("20", "2.5"); anything else must be a Go duration
// string ("1500ms").
func ParseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: expected seconds or a duration", raw)
	}
	return d, nil
}

// TrackingIDFromEnv returns the TRACKING_ID environment variable, or
// DefaultTrackingID when it is unset. It is evaluated on every call so
// that the value can change while the process runs.
func TrackingIDFromEnv() string {
	if val, ok := os.LookupEnv(EnvTrackingID); ok {
		return val
	}
	return DefaultTrackingID
}
