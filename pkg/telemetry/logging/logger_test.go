package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "valid JSON config", config: Config{Level: "info", Format: "json"}},
		{name: "valid text config", config: Config{Level: "debug", Format: "text"}},
		{name: "empty config uses defaults", config: Config{}},
		{name: "upper case values", config: Config{Level: "WARN", Format: "JSON"}},
		{name: "invalid log level", config: Config{Level: "invalid", Format: "json"}, wantErr: true},
		{name: "invalid format", config: Config{Level: "info", Format: "console"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.config.Writer = &buf

			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("expected non-nil logger")
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	logger.Info("should be dropped")
	logger.Warn("should be kept")

	output := buf.String()
	if strings.Contains(output, "should be dropped") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(output, "should be kept") {
		t.Error("warn message should be written")
	}
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	ctx := WithRequestID(context.Background(), "req-123")
	ctx = WithService(ctx, "price")
	logger.InfoContext(ctx, "proxying")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["request_id"] != "req-123" {
		t.Errorf("expected request_id req-123, got %v", entry["request_id"])
	}
	if entry["downstream"] != "price" {
		t.Errorf("expected downstream price, got %v", entry["downstream"])
	}
}

func TestLogger_WithKeepsContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	child := logger.With("component", "server")
	child.InfoContext(WithRequestID(context.Background(), "req-9"), "started")

	output := buf.String()
	if !strings.Contains(output, "component=server") || !strings.Contains(output, "request_id=req-9") {
		t.Errorf("expected component and request_id in output, got %q", output)
	}
}

func TestLogger_RedactsSensitiveAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	logger.Info("notification sent",
		"api_key", "super-secret",
		"recipient", "jane.doe@example.com",
	)

	output := buf.String()
	if strings.Contains(output, "super-secret") {
		t.Errorf("API key leaked into logs: %s", output)
	}
	if strings.Contains(output, "jane.doe") {
		t.Errorf("email local part leaked into logs: %s", output)
	}
	if !strings.Contains(output, "***@example.com") {
		t.Errorf("expected redacted email to keep domain: %s", output)
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
	if got := GetService(context.Background()); got != "" {
		t.Errorf("expected empty service, got %q", got)
	}
}

func TestRedactor_ReplaceAttr(t *testing.T) {
	r := NewRedactor()

	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{"api key by name", slog.String("x-api-key", "abc"), RedactedValue},
		{"authorization header", slog.String("Authorization", "Bearer abc"), RedactedValue},
		{"bearer token in value", slog.String("header", "Bearer abc.def"), "Bearer ***"},
		{"plain value untouched", slog.String("path", "/health"), "/health"},
		{"non-string value", slog.Int("status", 200), "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ReplaceAttr(nil, tt.attr)
			if got.Value.String() != tt.want {
				t.Errorf("ReplaceAttr(%v) = %q, want %q", tt.attr, got.Value.String(), tt.want)
			}
		})
	}
}
