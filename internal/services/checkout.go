package services

import (
	"context"
	"log"
	"sync"

	"ticket-storefront/internal/models"

	"github.com/samber/lo"
)

// CheckoutService converts cart contents into a purchase request, submits it,
// and hands back the external authorization URL for the browser redirect.
type CheckoutService struct {
	api PlatformAPI

	mu       sync.Mutex
	inFlight map[*models.Cart]struct{}
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(api PlatformAPI) *CheckoutService {
	return &CheckoutService{
		api:      api,
		inFlight: make(map[*models.Cart]struct{}),
	}
}

// Checkout submits the cart as a purchase. The token is whatever the caller
// holds at this moment; it is not cached. On success the cart is cleared
// (there is no undo client-side) and the response carries the authorization
// URL. On any failure the cart is left intact so the user can retry
// explicitly; there is no automatic retry.
//
// Only one checkout may be in flight per cart: a second call while the first
// is unresolved is rejected with ErrCheckoutInFlight, never queued.
func (s *CheckoutService) Checkout(ctx context.Context, token string, cart *models.Cart) (*models.PurchaseResponse, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, models.ErrEmptyCart
	}

	s.mu.Lock()
	if _, busy := s.inFlight[cart]; busy {
		s.mu.Unlock()
		return nil, models.ErrCheckoutInFlight
	}
	s.inFlight[cart] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, cart)
		s.mu.Unlock()
	}()

	// Quantities are not re-checked against live availability here; the
	// backend rejects the whole request atomically if anything sold out. The
	// snapshot fixes what this purchase covers even if another request from
	// the same session mutates the cart mid-flight.
	snap := cart.Snapshot()
	req := &models.PurchaseRequest{
		EventID: snap.EventID,
		Items: lo.Map(snap.Lines, func(line models.CartLine, _ int) models.PurchaseItem {
			return models.PurchaseItem{
				TicketTypeID: line.TicketTypeID,
				Quantity:     line.Quantity,
			}
		}),
	}

	resp, err := s.api.PurchaseTickets(ctx, token, req)
	if err != nil {
		return nil, err
	}

	log.Printf("Purchase accepted: transaction=%s reference=%s amount=%d %s",
		resp.TransactionID, resp.PaymentReference, resp.Amount, resp.Currency)

	cart.Clear()
	return resp, nil
}
