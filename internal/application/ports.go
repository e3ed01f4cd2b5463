package application

import (
	"context"
)

// ChatService is the port for the remote chat backend.
type ChatService interface {
	Chat(ctx context.Context, message string) (string, error)
}

// IntentService is the port for the backend that creates payment intents.
type IntentService interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error)
}

// PaymentProcessor is the port for the external payment-processing client.
// Processor-reported failures come back as *ProcessorError.
type PaymentProcessor interface {
	ConfirmCardPayment(ctx context.Context, clientSecret string, pm CardPaymentMethod) (*PaymentIntent, error)
}

// CardWidget is the external card-capture widget. ok is false while the
// entered card details are incomplete or invalid.
type CardWidget interface {
	PaymentMethod() (pm CardPaymentMethod, ok bool)
}

// Notifier surfaces a user-visible notification.
type Notifier interface {
	Notify(title, body string)
}
