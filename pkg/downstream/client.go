package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-hq/gateway/pkg/telemetry/logging"
)

// Outcome labels reported to an Observer.
const (
	OutcomeSuccess     = "success"
	OutcomeHTTPError   = "http_error"
	OutcomeTimeout     = "timeout"
	OutcomeUnreachable = "unreachable"
	OutcomeTooLarge    = "too_large"
)

// DefaultMaxResponseBytes bounds how much of a downstream body is buffered.
const DefaultMaxResponseBytes = 10 * 1024 * 1024

// Observer receives one notification per downstream call.
type Observer interface {
	ObserveDownstream(service, outcome string, duration time.Duration)
}

// Config configures a Client.
type Config struct {
	// Name identifies the downstream in logs, metrics and errors (e.g., "price")
	Name string

	// BaseURL is the scheme://host[:port] prefix for every call
	BaseURL string

	// Timeout bounds a single call, including reading the body
	Timeout time.Duration

	// Transport overrides the HTTP transport (optional)
	Transport http.RoundTripper

	// Observer receives call outcomes (optional)
	Observer Observer

	// MaxResponseBytes caps the buffered response body (default 10MB).
	// Larger bodies fail the call rather than being truncated.
	MaxResponseBytes int64
}

// Client performs single-attempt JSON calls against one downstream service.
// It is safe for concurrent use.
type Client struct {
	name     string
	baseURL  string
	timeout  time.Duration
	client   *http.Client
	observer Observer
	maxBody  int64
}

// New creates a downstream client.
func New(cfg Config) *Client {
	transport := cfg.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		}
	}

	maxBody := cfg.MaxResponseBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxResponseBytes
	}

	return &Client{
		name:    cfg.Name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		// The deadline is carried by the request context, not http.Client.Timeout,
		// so caller cancellation and the timeout share one code path.
		client:   &http.Client{Transport: transport},
		observer: cfg.Observer,
		maxBody:  maxBody,
	}
}

// Name returns the configured downstream name.
func (c *Client) Name() string {
	return c.name
}

// Do performs exactly one HTTP call. payload, when non-nil, is sent as a JSON
// body. Every response, whatever its status, is returned as a Result; only
// transport failures and bodies over the size cap produce an error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, payload any) (*Result, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", c.name, err)
		}
		body = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logging.GetRequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	ctx = logging.WithService(ctx, c.name)
	slog.DebugContext(ctx, "calling downstream",
		"method", method,
		"url", target,
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.fail(ctx, target, start, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, c.fail(ctx, target, start, err)
	}
	if int64(len(data)) > c.maxBody {
		c.observe(OutcomeTooLarge, time.Since(start))
		slog.WarnContext(ctx, "downstream response too large",
			"status", resp.StatusCode,
			"limit_bytes", c.maxBody,
		)
		return nil, &InvalidResponseError{
			Service:    c.name,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxBody),
		}
	}

	elapsed := time.Since(start)
	result := &Result{
		Service:    c.name,
		StatusCode: resp.StatusCode,
		Body:       data,
		Header:     resp.Header,
	}

	outcome := OutcomeSuccess
	if !result.OK() {
		outcome = OutcomeHTTPError
	}
	c.observe(outcome, elapsed)

	slog.InfoContext(ctx, "downstream responded",
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)

	return result, nil
}

// fail classifies a transport error, records it and wraps it.
func (c *Client) fail(ctx context.Context, target string, start time.Time, err error) error {
	elapsed := time.Since(start)
	ue := &UnreachableError{
		Service: c.name,
		URL:     target,
		Cause:   err,
	}

	if isTimeout(ctx, err) {
		ue.Timeout = true
		ue.After = c.timeout
		c.observe(OutcomeTimeout, elapsed)
	} else {
		c.observe(OutcomeUnreachable, elapsed)
	}

	slog.WarnContext(ctx, "downstream call failed",
		"timeout", ue.Timeout,
		"duration_ms", elapsed.Milliseconds(),
		"error", err,
	)

	return ue
}

func (c *Client) observe(outcome string, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveDownstream(c.name, outcome, d)
	}
}

// isTimeout reports whether err came from the call deadline rather than a
// connection failure or caller cancellation.
func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
