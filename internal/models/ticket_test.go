package models

import (
	"testing"
	"time"
)

func TestTicketType_AvailableAt(t *testing.T) {
	saleStart := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	saleEnd := time.Date(2024, 6, 30, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		tt       TicketType
		now      time.Time
		expected bool
	}{
		{
			name:     "inside window with inventory",
			tt:       TicketType{Quantity: 100, Sold: 50, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleStart.Add(24 * time.Hour),
			expected: true,
		},
		{
			name:     "exactly at sale start is available",
			tt:       TicketType{Quantity: 100, Sold: 0, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleStart,
			expected: true,
		},
		{
			name:     "exactly at sale end is available",
			tt:       TicketType{Quantity: 100, Sold: 0, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleEnd,
			expected: true,
		},
		{
			name:     "before sale start",
			tt:       TicketType{Quantity: 100, Sold: 0, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleStart.Add(-time.Millisecond),
			expected: false,
		},
		{
			name:     "sale ended a millisecond ago regardless of inventory",
			tt:       TicketType{Quantity: 100, Sold: 0, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleEnd.Add(time.Millisecond),
			expected: false,
		},
		{
			name:     "sold out",
			tt:       TicketType{Quantity: 100, Sold: 100, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleStart.Add(24 * time.Hour),
			expected: false,
		},
		{
			name:     "oversold is not available",
			tt:       TicketType{Quantity: 100, Sold: 101, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleStart.Add(24 * time.Hour),
			expected: false,
		},
		{
			name:     "last two tickets in window",
			tt:       TicketType{Price: 5000, Quantity: 100, Sold: 98, MaxPerOrder: 10, SaleStart: saleStart, SaleEnd: saleEnd},
			now:      saleStart.Add(24 * time.Hour),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tt.AvailableAt(tt.now); got != tt.expected {
				t.Errorf("AvailableAt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTicketType_Remaining(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		sold     int
		expected int
	}{
		{name: "normal", quantity: 100, sold: 98, expected: 2},
		{name: "sold out", quantity: 100, sold: 100, expected: 0},
		{name: "oversold reports negative", quantity: 100, sold: 105, expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticketType := TicketType{Quantity: tt.quantity, Sold: tt.sold}
			if got := ticketType.Remaining(); got != tt.expected {
				t.Errorf("Remaining() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTicketType_SaleWindowPredicates(t *testing.T) {
	saleStart := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	saleEnd := time.Date(2024, 6, 30, 22, 0, 0, 0, time.UTC)
	tt := TicketType{Quantity: 10, SaleStart: saleStart, SaleEnd: saleEnd}

	if !tt.SaleNotStartedAt(saleStart.Add(-time.Hour)) {
		t.Error("SaleNotStartedAt() should be true before the window")
	}
	if tt.SaleNotStartedAt(saleStart) {
		t.Error("SaleNotStartedAt() should be false at sale start")
	}
	if !tt.SaleEndedAt(saleEnd.Add(time.Hour)) {
		t.Error("SaleEndedAt() should be true after the window")
	}
	if tt.SaleEndedAt(saleEnd) {
		t.Error("SaleEndedAt() should be false at sale end")
	}
	if tt.SoldOut() {
		t.Error("SoldOut() should be false with inventory left")
	}
}
