package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInFlight   = errors.New("a checkout is already in progress")
	ErrMissingReference   = errors.New("no payment reference provided")
	ErrAuthentication     = errors.New("authentication required or token expired")
)

// ValidationError is a client-local input error. It is raised before any
// network call and never forwarded to the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BackendError carries a non-success response from the platform API. The
// message is the backend's own error payload when one was supplied, shown to
// the user verbatim.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// NetworkError wraps a transport-level failure reaching the platform API,
// distinct from a response the backend actually produced.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
