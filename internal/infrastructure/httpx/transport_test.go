package httpx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/chatpay/internal/infrastructure/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingTransport_LogsCompletedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	var buf bytes.Buffer
	client := httpx.NewClient(5*time.Second, newJSONLogger(&buf))

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/chat/", nil)
	require.NoError(t, err)
	req.Header.Set(httpx.RequestIDHeader, "req-1")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request completed", entry["msg"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/chat/", entry["path"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
}

func TestLoggingTransport_LogsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var buf bytes.Buffer
	client := httpx.NewClient(time.Second, newJSONLogger(&buf))

	_, err := client.Get(url + "/health")
	require.Error(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request failed", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.NotEmpty(t, entry["error"])
}
