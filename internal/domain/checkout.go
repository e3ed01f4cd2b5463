// Package domain encodes the conversation transcript and the checkout entity
package domain

import (
	"slices"
)

// CheckoutState represents the current state of a checkout in its lifecycle
type CheckoutState string

const (
	StateUninitialized CheckoutState = "UNINITIALIZED"
	StateAwaitingToken CheckoutState = "AWAITING_TOKEN"
	StateReady         CheckoutState = "READY"
	StateSubmitting    CheckoutState = "SUBMITTING"
	StateSucceeded     CheckoutState = "SUCCEEDED"
	StateFailed        CheckoutState = "FAILED"
)

// Checkout holds the server-issued authorization token for one pending
// payment and the last status shown to the user.
type Checkout struct {
	Amount        Money
	State         CheckoutState
	ClientSecret  string
	StatusMessage string
}

func NewCheckout(amount Money) *Checkout {
	return &Checkout{
		Amount: amount,
		State:  StateUninitialized,
	}
}

// AwaitToken marks the checkout as waiting for the payment service to issue a token.
func (c *Checkout) AwaitToken() error {
	return c.transition(StateAwaitingToken)
}

// IssueToken stores the authorization token and makes the checkout confirmable.
func (c *Checkout) IssueToken(clientSecret string) error {
	if clientSecret == "" {
		return NewMissingTokenError()
	}
	if err := c.transition(StateReady); err != nil {
		return err
	}
	c.ClientSecret = clientSecret
	return nil
}

// BeginSubmit moves a ready checkout into SUBMITTING.
func (c *Checkout) BeginSubmit(statusMessage string) error {
	if c.ClientSecret == "" {
		return NewMissingTokenError()
	}
	if err := c.transition(StateSubmitting); err != nil {
		return err
	}
	c.StatusMessage = statusMessage
	return nil
}

func (c *Checkout) Succeed(statusMessage string) error {
	if err := c.transition(StateSucceeded); err != nil {
		return err
	}
	c.StatusMessage = statusMessage
	return nil
}

// Suspend returns a submitting checkout to READY with a processor status that
// needs no local handling (e.g. requires_action).
func (c *Checkout) Suspend(status string) error {
	if c.State != StateSubmitting {
		return NewInvalidTransitionError(c.State, StateReady)
	}
	if err := c.transition(StateReady); err != nil {
		return err
	}
	c.StatusMessage = status
	return nil
}

func (c *Checkout) Fail(statusMessage string) error {
	if err := c.transition(StateFailed); err != nil {
		return err
	}
	c.StatusMessage = statusMessage
	return nil
}

// Reopen allows another confirmation attempt after a failure. A checkout
// that never received a token stays FAILED.
func (c *Checkout) Reopen() error {
	if c.State != StateFailed {
		return NewInvalidTransitionError(c.State, StateReady)
	}
	if c.ClientSecret == "" {
		return NewMissingTokenError()
	}
	return c.transition(StateReady)
}

func (c *Checkout) CanConfirm() bool {
	return c.State == StateReady && c.ClientSecret != ""
}

func (c *Checkout) IsTerminal() bool {
	return c.State == StateSucceeded
}

func (c *Checkout) transition(target CheckoutState) error {
	if err := c.canTransitionTo(target); err != nil {
		return err
	}
	c.State = target
	return nil
}

// defines the checkout states that can be transitioned to
func (c *Checkout) canTransitionTo(target CheckoutState) error {
	switch c.State {
	case StateUninitialized:
		return c.allow(target, StateAwaitingToken)
	case StateAwaitingToken:
		return c.allow(target, StateReady, StateFailed)
	case StateReady:
		return c.allow(target, StateSubmitting)
	case StateSubmitting:
		return c.allow(target, StateSucceeded, StateReady, StateFailed)
	case StateFailed:
		return c.allow(target, StateReady)
	}
	return NewInvalidTransitionError(c.State, target)
}

// Helper to check allowed state transitions
func (c *Checkout) allow(target CheckoutState, allowed ...CheckoutState) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(c.State, target)
}

// Projection reports the checkout as the shared request phase.
func (c *Checkout) Projection() Projection {
	switch c.State {
	case StateAwaitingToken, StateSubmitting:
		return Projection{Phase: PhaseSubmitting, Detail: c.StatusMessage}
	case StateSucceeded:
		return Projection{Phase: PhaseSucceeded, Detail: c.StatusMessage}
	case StateFailed:
		return Projection{Phase: PhaseFailed, Detail: c.StatusMessage}
	}
	return Projection{Phase: PhaseIdle, Detail: c.StatusMessage}
}
