package application

import (
	"errors"
	"fmt"
)

// StatusError captures a non-2xx response from a remote service.
type StatusError struct {
	Service    string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

func (e *StatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// MalformedResponseError is returned when a 2xx response cannot be used.
type MalformedResponseError struct {
	Service string
	Reason  string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed response (%s): %v", e.Service, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: malformed response (%s)", e.Service, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ProcessorError is the error object reported by the payment processor.
// Message is meant to be shown to the user verbatim.
type ProcessorError struct {
	Type        string
	Code        string
	DeclineCode string
	Message     string
	StatusCode  int
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor error [%s/%s]: %s (status: %d)", e.Type, e.Code, e.Message, e.StatusCode)
}

func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	ok := errors.As(err, &statusErr)
	return statusErr, ok
}

func IsMalformedResponseError(err error) (*MalformedResponseError, bool) {
	var malformedErr *MalformedResponseError
	ok := errors.As(err, &malformedErr)
	return malformedErr, ok
}

func IsProcessorError(err error) (*ProcessorError, bool) {
	var processorErr *ProcessorError
	ok := errors.As(err, &processorErr)
	return processorErr, ok
}
