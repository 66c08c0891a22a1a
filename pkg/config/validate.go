package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "downstreams.price_url")
	// or the environment variable that carried the bad value.
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateDownstreams(&cfg.Downstreams)...)
	errs = append(errs, validateServer(&cfg.Server, cfg.Downstreams.Timeout)...)
	errs = append(errs, validateSecurity(&cfg.Security)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateDownstreams(cfg *DownstreamsConfig) []FieldError {
	var errs []FieldError

	urls := []struct {
		field string
		value string
	}{
		{"downstreams.price_url", cfg.PriceURL},
		{"downstreams.notification_url", cfg.NotificationURL},
		{"downstreams.analytics_url", cfg.AnalyticsURL},
	}
	for _, u := range urls {
		if err := validateBaseURL(u.value); err != nil {
			errs = append(errs, FieldError{Field: u.field, Message: err.Error()})
		}
	}

	if cfg.Timeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "downstreams.timeout",
			Message: "timeout must be positive",
		})
	}

	return errs
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	return nil
}

func validateServer(cfg *ServerConfig, downstreamTimeout time.Duration) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	}
	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		})
	}
	if cfg.ShutdownTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}
	if cfg.WriteTimeout > 0 && cfg.WriteTimeout <= downstreamTimeout {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: fmt.Sprintf("write timeout %s must exceed downstream timeout %s", cfg.WriteTimeout, downstreamTimeout),
		})
	}

	return errs
}

func validateSecurity(cfg *SecurityConfig) []FieldError {
	if cfg.APIKey != "" && cfg.APIKeyFile != "" {
		return []FieldError{{
			Field:   "security.api_key_file",
			Message: "api_key and api_key_file are mutually exclusive",
		}}
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("unknown log level %q", cfg.Logging.Level),
		})
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("unknown log format %q", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: "metrics path must start with /",
		})
	}

	return errs
}
