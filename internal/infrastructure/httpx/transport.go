// Package httpx holds HTTP plumbing shared by the outbound clients.
package httpx

import (
	"log/slog"
	"net/http"
	"time"
)

const RequestIDHeader = "X-Request-ID"

// LoggingTransport logs one line per outbound request. Bodies are never
// logged since they can carry card details.
type LoggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func NewLoggingTransport(base http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &LoggingTransport{base: base, logger: logger}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	attrs := []any{
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"duration", time.Since(start),
	}
	if id := req.Header.Get(RequestIDHeader); id != "" {
		attrs = append(attrs, "request_id", id)
	}

	if err != nil {
		t.logger.Warn("http request failed", append(attrs, "error", err)...)
		return nil, err
	}

	t.logger.Debug("http request completed", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}

// NewClient returns an http.Client with the logging transport and timeout.
func NewClient(timeout time.Duration, logger *slog.Logger) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewLoggingTransport(nil, logger),
	}
}
