package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/domain"
)

const (
	StatusProcessing       = "Processing payment..."
	StatusSucceeded        = "Payment successful!"
	StatusUnreachable      = "Could not connect to payment service"
	StatusProcessingFailed = "Payment processing failed"

	SuccessTitle = "Success"
	SuccessBody  = "Your payment was processed successfully!"
)

// CheckoutService drives one checkout from token creation to a terminal
// outcome. Like ConversationService it must only be used from one event loop.
type CheckoutService struct {
	intents   application.IntentService
	processor application.PaymentProcessor
	widget    application.CardWidget
	notifier  application.Notifier
	logger    *slog.Logger

	checkout *domain.Checkout
}

func NewCheckoutService(
	intents application.IntentService,
	processor application.PaymentProcessor,
	widget application.CardWidget,
	notifier application.Notifier,
	amount domain.Money,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		intents:   intents,
		processor: processor,
		widget:    widget,
		notifier:  notifier,
		logger:    logger,
		checkout:  domain.NewCheckout(amount),
	}
}

// Start moves the checkout to AWAITING_TOKEN and returns the single
// intent-creation request. Calling it again is a no-op.
func (s *CheckoutService) Start() (application.Request[string], bool) {
	if err := s.checkout.AwaitToken(); err != nil {
		s.logger.Debug("start rejected", "state", s.checkout.State, "error", err)
		return nil, false
	}

	intents := s.intents
	amount := s.checkout.Amount.Amount

	s.logger.Info("payment intent requested", "amount", amount, "currency", s.checkout.Amount.Currency)

	return func(ctx context.Context) (string, error) {
		return intents.CreatePaymentIntent(ctx, amount)
	}, true
}

func (s *CheckoutService) ResolveToken(clientSecret string, err error) {
	if s.checkout.State != domain.StateAwaitingToken {
		s.logger.Warn("payment intent ignored", "state", s.checkout.State)
		return
	}

	if err == nil && clientSecret == "" {
		err = &application.MalformedResponseError{Service: "payment-intent", Reason: "empty client secret"}
	}

	if err != nil {
		s.logger.Error("payment intent creation failed", application.LogAttrs(err)...)
		if failErr := s.checkout.Fail(StatusUnreachable); failErr != nil {
			s.logger.Error("checkout transition failed", "error", failErr)
		}
		return
	}

	if err := s.checkout.IssueToken(clientSecret); err != nil {
		s.logger.Error("checkout transition failed", "error", err)
		return
	}
	s.logger.Info("payment intent ready")
}

// CardUpdated is the card widget's validation event. A failed checkout that
// still holds a token becomes READY again once the widget reports a valid card.
func (s *CheckoutService) CardUpdated() {
	if s.checkout.State != domain.StateFailed || s.checkout.ClientSecret == "" {
		return
	}
	if _, ok := s.widget.PaymentMethod(); !ok {
		return
	}
	if err := s.checkout.Reopen(); err != nil {
		s.logger.Debug("reopen rejected", "error", err)
		return
	}
	s.logger.Info("checkout reopened after failure")
}

// Confirm returns the confirmation request pairing the token with the card
// payment method. It is a no-op unless the checkout is READY and the widget
// holds a valid card.
func (s *CheckoutService) Confirm() (application.Request[*application.PaymentIntent], bool) {
	if !s.checkout.CanConfirm() {
		s.logger.Debug("confirm rejected", "state", s.checkout.State)
		return nil, false
	}

	pm, ok := s.widget.PaymentMethod()
	if !ok {
		s.logger.Debug("confirm rejected", "reason", domain.ErrCodeCardIncomplete)
		return nil, false
	}

	if err := s.checkout.BeginSubmit(StatusProcessing); err != nil {
		s.logger.Debug("confirm rejected", "error", err)
		return nil, false
	}

	processor := s.processor
	clientSecret := s.checkout.ClientSecret

	s.logger.Info("payment confirmation dispatched", "card_last4", pm.Last4())

	return func(ctx context.Context) (*application.PaymentIntent, error) {
		return processor.ConfirmCardPayment(ctx, clientSecret, pm)
	}, true
}

func (s *CheckoutService) ResolveConfirmation(intent *application.PaymentIntent, err error) {
	if s.checkout.State != domain.StateSubmitting {
		s.logger.Warn("payment confirmation ignored", "state", s.checkout.State)
		return
	}

	if err == nil && (intent == nil || intent.Status == "") {
		err = &application.MalformedResponseError{Service: "processor", Reason: "missing payment intent status"}
	}

	if err != nil {
		s.logger.Error("payment confirmation failed", application.LogAttrs(err)...)
		s.fail(failureMessage(err))
		return
	}

	if intent.Status != application.PaymentIntentSucceeded {
		s.logger.Info("payment confirmation pending", "payment_intent", intent.ID, "status", intent.Status)
		if suspendErr := s.checkout.Suspend(intent.Status); suspendErr != nil {
			s.logger.Error("checkout transition failed", "error", suspendErr)
		}
		return
	}

	if succeedErr := s.checkout.Succeed(StatusSucceeded); succeedErr != nil {
		s.logger.Error("checkout transition failed", "error", succeedErr)
		return
	}
	s.logger.Info("payment succeeded", "payment_intent", intent.ID)

	if s.notifier != nil {
		s.notifier.Notify(SuccessTitle, SuccessBody)
	}
}

func (s *CheckoutService) fail(statusMessage string) {
	if err := s.checkout.Fail(statusMessage); err != nil {
		s.logger.Error("checkout transition failed", "error", err)
	}
}

// processor-reported errors are shown verbatim, anything else gets a generic message
func failureMessage(err error) string {
	if processorErr, ok := application.IsProcessorError(err); ok && processorErr.Message != "" {
		return processorErr.Message
	}
	return StatusProcessingFailed
}

func (s *CheckoutService) State() domain.CheckoutState {
	return s.checkout.State
}

func (s *CheckoutService) StatusMessage() string {
	return s.checkout.StatusMessage
}

func (s *CheckoutService) ClientSecret() string {
	return s.checkout.ClientSecret
}

func (s *CheckoutService) Amount() domain.Money {
	return s.checkout.Amount
}

func (s *CheckoutService) Submitting() bool {
	return s.checkout.State == domain.StateSubmitting
}

func (s *CheckoutService) IsTerminal() bool {
	return s.checkout.IsTerminal()
}

func (s *CheckoutService) Status() domain.Projection {
	return s.checkout.Projection()
}
