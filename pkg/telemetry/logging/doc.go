// Package logging builds the gateway's structured logger on top of log/slog.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRequestID(ctx, "req-123")
//	slog.InfoContext(ctx, "proxying request")  // includes request_id
//
// # Redaction
//
// Attributes whose key names a credential (api_key, authorization, token,
// ...) are replaced with "***". Email addresses in string values keep only
// their domain.
package logging
