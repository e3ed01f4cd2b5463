package testhelpers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/domain"
	"github.com/stretchr/testify/require"
)

const (
	DefaultAmountCents  = 3000
	DefaultClientSecret = "pi_3Nabc_secret_xyz"
)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DefaultAmount returns the fixed $30.00 checkout amount
func DefaultAmount(t *testing.T) domain.Money {
	t.Helper()
	money, err := domain.NewMoney(DefaultAmountCents, "usd")
	require.NoError(t, err)
	return money
}

// DefaultCard returns a valid card payment method for the processor test mode
func DefaultCard() application.CardPaymentMethod {
	return application.CardPaymentMethod{
		Number:      "4242424242424242",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVC:         "123",
	}
}

// SucceededIntent returns a confirmed payment intent
func SucceededIntent() *application.PaymentIntent {
	return &application.PaymentIntent{
		ID:       "pi_3Nabc",
		Status:   application.PaymentIntentSucceeded,
		Amount:   DefaultAmountCents,
		Currency: "usd",
	}
}

// DeclinedError returns the processor error for a declined card
func DeclinedError() *application.ProcessorError {
	return &application.ProcessorError{
		Type:        "card_error",
		Code:        "card_declined",
		DeclineCode: "generic_decline",
		Message:     "Your card was declined.",
		StatusCode:  402,
	}
}
