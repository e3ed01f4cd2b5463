package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category application.ErrorCategory
	}{
		{"nil error", nil, ""},
		{"context deadline", context.DeadlineExceeded, application.CategoryTransport},
		{"wrapped network error", fmt.Errorf("backend: chat request: %w", errors.New("connection refused")), application.CategoryTransport},
		{"non-2xx status", &application.StatusError{Service: "backend", StatusCode: 500}, application.CategoryHTTPStatus},
		{"wrapped status", fmt.Errorf("chat: %w", &application.StatusError{StatusCode: 502}), application.CategoryHTTPStatus},
		{"malformed body", &application.MalformedResponseError{Service: "backend", Reason: "empty body"}, application.CategoryMalformed},
		{"processor error", &application.ProcessorError{Type: "card_error", Code: "card_declined", Message: "Your card was declined."}, application.CategoryProcessor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, application.CategorizeError(tt.err))
		})
	}
}

func TestLogAttrs(t *testing.T) {
	t.Run("includes processor codes", func(t *testing.T) {
		attrs := application.LogAttrs(&application.ProcessorError{Code: "card_declined", DeclineCode: "insufficient_funds"})

		assert.Contains(t, attrs, "processor_code")
		assert.Contains(t, attrs, "card_declined")
		assert.Contains(t, attrs, "insufficient_funds")
	})

	t.Run("includes status code", func(t *testing.T) {
		attrs := application.LogAttrs(&application.StatusError{StatusCode: 503})

		assert.Contains(t, attrs, 503)
		assert.Contains(t, attrs, application.CategoryHTTPStatus)
	})
}

func TestCardPaymentMethod_Last4(t *testing.T) {
	assert.Equal(t, "4242", application.CardPaymentMethod{Number: "4242424242424242"}.Last4())
	assert.Equal(t, "", application.CardPaymentMethod{ID: "pm_card_visa"}.Last4())
}
