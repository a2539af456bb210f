package models

import "time"

// EventStatus represents the moderation status of an event
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPending   EventStatus = "pending"
	StatusPublished EventStatus = "published"
	StatusRejected  EventStatus = "rejected"
)

// Event is a read-only snapshot of an event as served by the platform API,
// including its nested ticket types.
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Location    string       `json:"location"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	ImageURL    string       `json:"image_url"`
	Status      EventStatus  `json:"status"`
	TicketTypes []TicketType `json:"ticket_types"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TicketTypeByID returns the nested ticket type with the given id, or nil
func (e *Event) TicketTypeByID(id string) *TicketType {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == id {
			return &e.TicketTypes[i]
		}
	}
	return nil
}
