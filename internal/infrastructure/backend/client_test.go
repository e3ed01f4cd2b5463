package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/application/services/testhelpers"
	"github.com/DanielPopoola/chatpay/internal/config"
	"github.com/DanielPopoola/chatpay/internal/infrastructure/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return backend.NewClient(config.BackendConfig{BaseURL: server.URL + "/", Timeout: 2 * time.Second}, testhelpers.DiscardLogger())
}

func TestClient_Chat(t *testing.T) {
	t.Run("sends the message and returns the reply", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/chat/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "  hello there ", body["message"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Hi! How can I help?"}`))
		})

		reply, err := client.Chat(context.Background(), "  hello there ")

		require.NoError(t, err)
		assert.Equal(t, "Hi! How can I help?", reply)
	})

	t.Run("non-2xx becomes a status error with the backend detail", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"upstream model unavailable"}`))
		})

		_, err := client.Chat(context.Background(), "hello")

		statusErr, ok := application.IsStatusError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Equal(t, "upstream model unavailable", statusErr.Detail)
		assert.Equal(t, application.CategoryHTTPStatus, application.CategorizeError(err))
	})

	t.Run("non-json error body still yields a status error", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`<html>bad gateway</html>`))
		})

		_, err := client.Chat(context.Background(), "hello")

		statusErr, ok := application.IsStatusError(err)
		require.True(t, ok)
		assert.Empty(t, statusErr.Detail)
	})

	t.Run("empty body is malformed", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		_, err := client.Chat(context.Background(), "hello")

		assert.Equal(t, application.CategoryMalformed, application.CategorizeError(err))
	})

	t.Run("missing message field is malformed", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"reply":"wrong key"}`))
		})

		_, err := client.Chat(context.Background(), "hello")

		malformed, ok := application.IsMalformedResponseError(err)
		require.True(t, ok)
		assert.Equal(t, "missing message", malformed.Reason)
	})

	t.Run("unreachable backend is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()
		client := backend.NewClient(config.BackendConfig{BaseURL: url, Timeout: time.Second}, testhelpers.DiscardLogger())

		_, err := client.Chat(context.Background(), "hello")

		require.Error(t, err)
		assert.Equal(t, application.CategoryTransport, application.CategorizeError(err))
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(server.Close)
		t.Cleanup(func() { close(release) })
		client := backend.NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, testhelpers.DiscardLogger())

		_, err := client.Chat(context.Background(), "hello")

		require.Error(t, err)
		assert.Equal(t, application.CategoryTransport, application.CategorizeError(err))
	})
}

func TestClient_CreatePaymentIntent(t *testing.T) {
	t.Run("posts the amount and returns the client secret", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/create-payment-intent/", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

			var body map[string]int64
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(3000), body["amount"])

			w.Write([]byte(`{"clientSecret":"abc"}`))
		})

		secret, err := client.CreatePaymentIntent(context.Background(), 3000)

		require.NoError(t, err)
		assert.Equal(t, "abc", secret)
	})

	t.Run("missing client secret is malformed", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := client.CreatePaymentIntent(context.Background(), 3000)

		malformed, ok := application.IsMalformedResponseError(err)
		require.True(t, ok)
		assert.Equal(t, "payment-intent", malformed.Service)
	})

	t.Run("backend error is a status error", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Invalid amount"}`))
		})

		_, err := client.CreatePaymentIntent(context.Background(), 3000)

		statusErr, ok := application.IsStatusError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid amount", statusErr.Detail)
	})
}
