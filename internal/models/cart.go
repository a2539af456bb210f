package models

import (
	"fmt"
	"sync"
)

// CartLine is one (ticket type, quantity) pairing held prior to checkout. The
// ticket type snapshot is denormalized so the cart can price and display lines
// without refetching.
type CartLine struct {
	TicketTypeID string     `json:"ticket_type_id"`
	Quantity     int        `json:"quantity"`
	TicketType   TicketType `json:"ticket_type"`
}

// Cart is an ordered collection of cart lines scoped to exactly one event. It
// lives in memory for the duration of a browsing session and is never
// persisted. A session's requests can overlap, so all access to the lines goes
// through the mutex; callers that need to read or encode the contents take a
// Snapshot rather than holding the live slice.
type Cart struct {
	mu      sync.Mutex
	eventID string
	lines   []CartLine
}

// CartSnapshot is a consistent point-in-time copy of a cart's contents and
// derived totals, safe to read and encode while the live cart keeps changing.
type CartSnapshot struct {
	EventID   string     `json:"event_id"`
	Lines     []CartLine `json:"lines"`
	Total     int        `json:"total"`
	ItemCount int        `json:"item_count"`
}

// NewCart creates an empty cart for the given event
func NewCart(eventID string) *Cart {
	return &Cart{eventID: eventID}
}

// EventID returns the event this cart is scoped to. The scope is fixed at
// creation; a cart is never rebound to another event.
func (c *Cart) EventID() string {
	return c.eventID
}

// AddOrMerge adds the given quantity of a ticket type to the cart. If a line
// for the same ticket type already exists its quantity is increased; the cart
// never holds two lines for one ticket type. Quantities below one are
// rejected. The per-order limit is enforced here as a UX guard only; the
// backend remains authoritative and re-checks on purchase.
func (c *Cart) AddOrMerge(tt TicketType, quantity int) error {
	if quantity < 1 {
		return &ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}

	if c.eventID != "" && tt.EventID != c.eventID {
		return &ValidationError{
			Field:   "ticket_type_id",
			Message: "ticket type belongs to a different event",
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].TicketTypeID == tt.ID {
			merged := c.lines[i].Quantity + quantity
			if tt.MaxPerOrder > 0 && merged > tt.MaxPerOrder {
				return &ValidationError{
					Field:   "quantity",
					Message: fmt.Sprintf("maximum %d tickets per order for %s", tt.MaxPerOrder, tt.Name),
				}
			}
			c.lines[i].Quantity = merged
			return nil
		}
	}

	if tt.MaxPerOrder > 0 && quantity > tt.MaxPerOrder {
		return &ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("maximum %d tickets per order for %s", tt.MaxPerOrder, tt.Name),
		}
	}

	c.lines = append(c.lines, CartLine{
		TicketTypeID: tt.ID,
		Quantity:     quantity,
		TicketType:   tt,
	})
	return nil
}

// Remove deletes the line with the given ticket type id. Removing a line that
// was never added is a no-op.
func (c *Cart) Remove(ticketTypeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].TicketTypeID == ticketTypeID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties all lines from the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// IsEmpty returns true if the cart holds no lines
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Total returns the cart total in minor currency units. Prices are kept as
// integer cents throughout so totals stay exact.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalOf(c.lines)
}

// ItemCount returns the total number of tickets across all lines, used for
// the cart badge.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return countOf(c.lines)
}

// Snapshot copies the lines and derived totals under one lock, so the caller
// sees totals that match the lines even while other requests mutate the cart.
func (c *Cart) Snapshot() CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)

	return CartSnapshot{
		EventID:   c.eventID,
		Lines:     lines,
		Total:     totalOf(lines),
		ItemCount: countOf(lines),
	}
}

func totalOf(lines []CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.TicketType.Price * line.Quantity
	}
	return total
}

func countOf(lines []CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
