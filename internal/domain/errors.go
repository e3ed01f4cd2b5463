package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrEmptyInput        = errors.New("empty input")
	ErrRequestInFlight   = errors.New("request in flight")
	ErrMissingToken      = errors.New("missing authorization token")
	ErrCardIncomplete    = errors.New("card details incomplete")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeEmptyInput        = "EMPTY_INPUT"
	ErrCodeRequestInFlight   = "REQUEST_IN_FLIGHT"
	ErrCodeMissingToken      = "MISSING_TOKEN"
	ErrCodeCardIncomplete    = "CARD_INCOMPLETE"
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
)

func NewInvalidTransitionError(from, to CheckoutState) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
		Err:     ErrInvalidTransition,
	}
}

func NewEmptyInputError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyInput,
		Message: "message is empty",
		Err:     ErrEmptyInput,
	}
}

func NewRequestInFlightError() *DomainError {
	return &DomainError{
		Code:    ErrCodeRequestInFlight,
		Message: "a request is already in flight",
		Err:     ErrRequestInFlight,
	}
}

func NewMissingTokenError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingToken,
		Message: "no authorization token has been issued",
		Err:     ErrMissingToken,
	}
}

func NewCardIncompleteError() *DomainError {
	return &DomainError{
		Code:    ErrCodeCardIncomplete,
		Message: "card details are incomplete or invalid",
		Err:     ErrCardIncomplete,
	}
}

func NewInvalidAmountError(amount int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %d", amount),
		Err:     ErrInvalidAmount,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
