package services

import (
	"sync"
	"time"

	"ticket-storefront/internal/models"
)

// cartTTL bounds how long an untouched cart survives. Navigating away simply
// abandons the cart; the sweep reclaims it.
const cartTTL = 15 * time.Minute

type cartEntry struct {
	cart    *models.Cart
	touched time.Time
}

// CartStore holds the live carts, one per browsing session, keyed by the
// opaque id carried in the session cookie. Carts exist only in this map:
// nothing is written to cookie, disk or database, so a restart or expiry
// discards them, which is intentional.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
}

// NewCartStore creates an empty cart store
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cartEntry)}
}

// Get returns the cart for a session key, or nil if none exists or it expired
func (s *CartStore) Get(key string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[key]
	if !ok {
		return nil
	}
	if time.Since(entry.touched) > cartTTL {
		delete(s.carts, key)
		return nil
	}
	entry.touched = time.Now()
	return entry.cart
}

// GetOrCreate returns the session's cart for the given event, creating one if
// needed. A cart left over from a different event's page is replaced: carts
// are scoped to exactly one event.
func (s *CartStore) GetOrCreate(key, eventID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[key]
	if ok && time.Since(entry.touched) <= cartTTL && entry.cart.EventID() == eventID {
		entry.touched = time.Now()
		return entry.cart
	}

	cart := models.NewCart(eventID)
	s.carts[key] = &cartEntry{cart: cart, touched: time.Now()}
	return cart
}

// Delete discards a session's cart
func (s *CartStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
}

// Sweep removes expired carts. Called periodically from main.
func (s *CartStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.carts {
		if time.Since(entry.touched) > cartTTL {
			delete(s.carts, key)
		}
	}
}
