package services

import (
	"context"
	"errors"
	"sync"

	"ticket-storefront/internal/models"
)

// VerificationState is the state of a payment verification flow
type VerificationState string

const (
	StateVerifying VerificationState = "verifying"
	StateSucceeded VerificationState = "succeeded"
	StateFailed    VerificationState = "failed"
)

// genericVerifyFailure is shown when neither the backend nor the transport
// produced a usable message.
const genericVerifyFailure = "Payment verification failed"

// VerificationFlow resolves a payment reference to a terminal outcome. It
// starts in Verifying, makes a single verification attempt (no polling, no
// retry) and lands in Succeeded or Failed. Terminal states are final; a fresh
// page load gets a fresh flow, and the backend is idempotent per reference so
// repeating the call across loads is safe.
type VerificationFlow struct {
	api PlatformAPI

	mu      sync.Mutex
	state   VerificationState
	message string
	tickets []models.Ticket
}

// NewVerificationFlow creates a flow in the Verifying state
func NewVerificationFlow(api PlatformAPI) *VerificationFlow {
	return &VerificationFlow{
		api:   api,
		state: StateVerifying,
	}
}

// Verify performs the single verification attempt. An empty reference fails
// immediately without touching the network. Once the flow has left Verifying
// further calls return the settled state unchanged.
func (f *VerificationFlow) Verify(ctx context.Context, reference string) VerificationState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateVerifying {
		return f.state
	}

	if reference == "" {
		f.state = StateFailed
		f.message = models.ErrMissingReference.Error()
		return f.state
	}

	result, err := f.api.VerifyPayment(ctx, reference)
	if err != nil {
		f.state = StateFailed
		f.message = failureMessage(err)
		return f.state
	}

	f.state = StateSucceeded
	f.message = result.Message
	f.tickets = result.Tickets
	return f.state
}

// State returns the current flow state
func (f *VerificationFlow) State() VerificationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the outcome message
func (f *VerificationFlow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Tickets returns the tickets issued on success
func (f *VerificationFlow) Tickets() []models.Ticket {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickets
}

// failureMessage prefers the backend's own error text and falls back to a
// generic message for transport failures.
func failureMessage(err error) string {
	var backendErr *models.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	return genericVerifyFailure
}
