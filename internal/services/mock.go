package services

import (
	"context"

	"ticket-storefront/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPlatformAPI is a testify mock of the platform API, shared by service
// and handler tests.
type MockPlatformAPI struct {
	mock.Mock
}

func (m *MockPlatformAPI) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockPlatformAPI) PurchaseTickets(ctx context.Context, token string, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PurchaseResponse), args.Error(1)
}

func (m *MockPlatformAPI) VerifyPayment(ctx context.Context, reference string) (*models.VerificationResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationResult), args.Error(1)
}

func (m *MockPlatformAPI) GetPlatformSettings(ctx context.Context) (*models.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformSettings), args.Error(1)
}
