package services

import (
	"context"
	"errors"
	"testing"

	"ticket-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVerificationFlow_StartsVerifying(t *testing.T) {
	flow := NewVerificationFlow(new(MockPlatformAPI))
	assert.Equal(t, StateVerifying, flow.State())
}

func TestVerificationFlow_Success(t *testing.T) {
	api := new(MockPlatformAPI)
	api.On("VerifyPayment", mock.Anything, "ref-1").Return(&models.VerificationResult{
		Status:  "success",
		Message: "Payment confirmed",
		Tickets: []models.Ticket{
			{ID: "tkt-1", Status: models.TicketConfirmed},
			{ID: "tkt-2", Status: models.TicketConfirmed},
		},
	}, nil)

	flow := NewVerificationFlow(api)
	state := flow.Verify(context.Background(), "ref-1")

	assert.Equal(t, StateSucceeded, state)
	assert.Equal(t, "Payment confirmed", flow.Message())
	assert.Len(t, flow.Tickets(), 2)
	assert.Equal(t, "tkt-1", flow.Tickets()[0].ID)
}

func TestVerificationFlow_BackendFailureKeepsMessage(t *testing.T) {
	api := new(MockPlatformAPI)
	api.On("VerifyPayment", mock.Anything, "ref-bad").
		Return(nil, &models.BackendError{StatusCode: 402, Message: "Payment was declined"})

	flow := NewVerificationFlow(api)
	state := flow.Verify(context.Background(), "ref-bad")

	assert.Equal(t, StateFailed, state)
	assert.Equal(t, "Payment was declined", flow.Message())
	assert.Empty(t, flow.Tickets())
}

func TestVerificationFlow_NetworkFailureUsesGenericMessage(t *testing.T) {
	api := new(MockPlatformAPI)
	api.On("VerifyPayment", mock.Anything, "ref-1").
		Return(nil, &models.NetworkError{Op: "GET /payments/verify", Err: errors.New("connection refused")})

	flow := NewVerificationFlow(api)
	state := flow.Verify(context.Background(), "ref-1")

	assert.Equal(t, StateFailed, state)
	assert.Equal(t, genericVerifyFailure, flow.Message())
}

func TestVerificationFlow_MissingReferenceFailsWithoutNetworkCall(t *testing.T) {
	api := new(MockPlatformAPI)

	flow := NewVerificationFlow(api)
	state := flow.Verify(context.Background(), "")

	assert.Equal(t, StateFailed, state)
	assert.Equal(t, models.ErrMissingReference.Error(), flow.Message())
	api.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything)
}

func TestVerificationFlow_TerminalStatesAreFinal(t *testing.T) {
	api := new(MockPlatformAPI)
	api.On("VerifyPayment", mock.Anything, "ref-1").Return(&models.VerificationResult{
		Message: "Payment confirmed",
	}, nil).Once()

	flow := NewVerificationFlow(api)
	flow.Verify(context.Background(), "ref-1")

	// A second call must not re-enter Verifying or hit the network again
	state := flow.Verify(context.Background(), "ref-1")
	assert.Equal(t, StateSucceeded, state)
	api.AssertNumberOfCalls(t, "VerifyPayment", 1)
}
