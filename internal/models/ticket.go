package models

import (
	"time"
)

// TicketStatus represents the status of an issued ticket
type TicketStatus string

const (
	TicketConfirmed TicketStatus = "confirmed"
	TicketCancelled TicketStatus = "cancelled"
	TicketUsed      TicketStatus = "used"
)

// TicketType is a purchasable tier of an event. The storefront only ever reads
// snapshots of it; the backend creates it and increments Sold on purchases.
type TicketType struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int       `json:"price"` // minor currency units (cents)
	Quantity    int       `json:"quantity"`
	Sold        int       `json:"sold"`
	MaxPerOrder int       `json:"max_per_order"`
	SaleStart   time.Time `json:"sale_start"`
	SaleEnd     time.Time `json:"sale_end"`
	CreatedAt   time.Time `json:"created_at"`
}

// Ticket represents an individual issued ticket
type Ticket struct {
	ID           string       `json:"id"`
	TicketNumber string       `json:"ticket_number"`
	EventID      string       `json:"event_id"`
	TicketTypeID string       `json:"ticket_type_id"`
	Status       TicketStatus `json:"status"`
	Price        int          `json:"price"`
	CreatedAt    time.Time    `json:"created_at"`
}

// AvailableAt returns true if the ticket type can be purchased at the given
// instant: the instant falls inside the sale window (both bounds inclusive)
// and unsold inventory remains. Timestamps are compared as absolute instants.
func (tt *TicketType) AvailableAt(now time.Time) bool {
	return !now.Before(tt.SaleStart) &&
		!now.After(tt.SaleEnd) &&
		tt.Remaining() > 0
}

// Remaining returns the number of unsold tickets. The value is deliberately
// not clamped: a negative count means the backend violated sold <= quantity
// and is worth surfacing rather than hiding.
func (tt *TicketType) Remaining() int {
	return tt.Quantity - tt.Sold
}

// SoldOut returns true if no unsold inventory remains
func (tt *TicketType) SoldOut() bool {
	return tt.Remaining() <= 0
}

// SaleNotStartedAt returns true if the sale window has not opened yet
func (tt *TicketType) SaleNotStartedAt(now time.Time) bool {
	return now.Before(tt.SaleStart)
}

// SaleEndedAt returns true if the sale window has closed
func (tt *TicketType) SaleEndedAt(now time.Time) bool {
	return now.After(tt.SaleEnd)
}

// PriceInCurrency returns the price in major currency units for display
func (tt *TicketType) PriceInCurrency() float64 {
	return float64(tt.Price) / 100.0
}

// IsConfirmed returns true if the ticket is confirmed
func (t *Ticket) IsConfirmed() bool {
	return t.Status == TicketConfirmed
}
