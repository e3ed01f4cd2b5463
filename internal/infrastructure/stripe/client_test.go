package stripe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/application/services/testhelpers"
	"github.com/DanielPopoola/chatpay/internal/config"
	"github.com/DanielPopoola/chatpay/internal/infrastructure/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *stripe.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := config.PaymentConfig{ProcessorBaseURL: server.URL, Timeout: 2 * time.Second}
	return stripe.NewClient(cfg, "pk_test_123", testhelpers.DiscardLogger())
}

func TestIntentID(t *testing.T) {
	tests := []struct {
		secret string
		want   string
		ok     bool
	}{
		{"pi_3Nabc_secret_xyz", "pi_3Nabc", true},
		{"abc", "", false},
		{"_secret_xyz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.secret, func(t *testing.T) {
			got, ok := stripe.IntentID(tt.secret)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_ConfirmCardPayment(t *testing.T) {
	t.Run("confirms with raw card details", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents/pi_3Nabc/confirm", r.URL.Path)
			assert.Equal(t, "Bearer pk_test_123", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

			assert.NoError(t, r.ParseForm())
			assert.Equal(t, testhelpers.DefaultClientSecret, r.PostForm.Get("client_secret"))
			assert.Equal(t, "card", r.PostForm.Get("payment_method_data[type]"))
			assert.Equal(t, "4242424242424242", r.PostForm.Get("payment_method_data[card][number]"))
			assert.Equal(t, "12", r.PostForm.Get("payment_method_data[card][exp_month]"))
			assert.Equal(t, "2030", r.PostForm.Get("payment_method_data[card][exp_year]"))
			assert.Equal(t, "123", r.PostForm.Get("payment_method_data[card][cvc]"))

			w.Write([]byte(`{"id":"pi_3Nabc","status":"succeeded","amount":3000,"currency":"usd"}`))
		})

		intent, err := client.ConfirmCardPayment(context.Background(), testhelpers.DefaultClientSecret, testhelpers.DefaultCard())

		require.NoError(t, err)
		assert.Equal(t, application.PaymentIntentSucceeded, intent.Status)
		assert.Equal(t, int64(3000), intent.Amount)
	})

	t.Run("confirms with a payment method id", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "pm_card_visa", r.PostForm.Get("payment_method"))
			assert.Empty(t, r.PostForm.Get("payment_method_data[type]"))

			w.Write([]byte(`{"id":"pi_3Nabc","status":"requires_action"}`))
		})

		intent, err := client.ConfirmCardPayment(context.Background(), testhelpers.DefaultClientSecret, application.CardPaymentMethod{ID: "pm_card_visa"})

		require.NoError(t, err)
		assert.Equal(t, "requires_action", intent.Status)
	})

	t.Run("card decline becomes a processor error", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","decline_code":"insufficient_funds","message":"Your card has insufficient funds."}}`))
		})

		_, err := client.ConfirmCardPayment(context.Background(), testhelpers.DefaultClientSecret, testhelpers.DefaultCard())

		processorErr, ok := application.IsProcessorError(err)
		require.True(t, ok)
		assert.Equal(t, "Your card has insufficient funds.", processorErr.Message)
		assert.Equal(t, "insufficient_funds", processorErr.DeclineCode)
		assert.Equal(t, http.StatusPaymentRequired, processorErr.StatusCode)
	})

	t.Run("error without an envelope is a status error", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`upstream unavailable`))
		})

		_, err := client.ConfirmCardPayment(context.Background(), testhelpers.DefaultClientSecret, testhelpers.DefaultCard())

		assert.Equal(t, application.CategoryHTTPStatus, application.CategorizeError(err))
	})

	t.Run("response without a status is malformed", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"pi_3Nabc"}`))
		})

		_, err := client.ConfirmCardPayment(context.Background(), testhelpers.DefaultClientSecret, testhelpers.DefaultCard())

		assert.Equal(t, application.CategoryMalformed, application.CategorizeError(err))
	})

	t.Run("client secret without an intent id is rejected before any call", func(t *testing.T) {
		called := false
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := client.ConfirmCardPayment(context.Background(), "abc", testhelpers.DefaultCard())

		assert.Equal(t, application.CategoryMalformed, application.CategorizeError(err))
		assert.False(t, called)
	})
}
