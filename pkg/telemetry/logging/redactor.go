package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

// RedactedValue replaces sensitive attribute values.
const RedactedValue = "***"

// Redactor removes credentials and personal data from log attributes.
type Redactor struct {
	sensitiveKeys []string
	patterns      []redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	regex       *regexp.Regexp
	replacement string
}

// NewRedactor creates a Redactor with the built-in key list and patterns.
func NewRedactor() *Redactor {
	return &Redactor{
		sensitiveKeys: []string{
			"api_key", "apikey", "x-api-key",
			"authorization", "token", "secret", "password",
		},
		patterns: []redactPattern{
			// Email addresses keep their domain: user@example.com → ***@example.com
			{
				regex:       regexp.MustCompile(`[a-zA-Z0-9._%+-]+@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
				replacement: RedactedValue + "@$1",
			},
			{
				regex:       regexp.MustCompile(`Bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
				replacement: "Bearer " + RedactedValue,
			},
		},
	}
}

// ReplaceAttr is suitable for slog.HandlerOptions.ReplaceAttr.
func (r *Redactor) ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if r.isSensitiveKey(a.Key) {
		return slog.String(a.Key, RedactedValue)
	}
	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); s != "" {
			return slog.String(a.Key, r.RedactString(s))
		}
	}
	return a
}

// RedactString redacts personal data from a string value.
func (r *Redactor) RedactString(value string) string {
	for _, p := range r.patterns {
		value = p.regex.ReplaceAllString(value, p.replacement)
	}
	return value
}

// isSensitiveKey checks if a key name indicates sensitive data.
func (r *Redactor) isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sensitive := range r.sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}
