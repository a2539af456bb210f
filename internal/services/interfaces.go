package services

import (
	"context"

	"ticket-storefront/internal/models"
)

// PlatformAPI is the slice of the platform REST boundary the storefront
// consumes. Everything behind it (inventory, fee math, payment orchestration)
// is backend-owned; the storefront only reads snapshots and submits purchases.
type PlatformAPI interface {
	// GetEvent fetches an event including its nested ticket type list.
	GetEvent(ctx context.Context, id string) (*models.Event, error)

	// PurchaseTickets submits a purchase over an authenticated channel. The
	// token is read at call time, never cached across a checkout attempt.
	PurchaseTickets(ctx context.Context, token string, req *models.PurchaseRequest) (*models.PurchaseResponse, error)

	// VerifyPayment resolves a payment reference to an outcome. The call is
	// unauthenticated: the redirect back from the payment provider may arrive
	// after the user's session token has expired.
	VerifyPayment(ctx context.Context, reference string) (*models.VerificationResult, error)

	// GetPlatformSettings fetches the public platform settings.
	GetPlatformSettings(ctx context.Context) (*models.PlatformSettings, error)
}
