package handlers

import (
	"net/http"
	"time"

	"ticket-storefront/internal/models"
	"ticket-storefront/internal/services"

	"github.com/go-chi/chi/v5"
)

// EventHandler serves event page data
type EventHandler struct {
	api      services.PlatformAPI
	settings *services.SettingsCache
}

// NewEventHandler creates a new event handler
func NewEventHandler(api services.PlatformAPI, settings *services.SettingsCache) *EventHandler {
	return &EventHandler{api: api, settings: settings}
}

// ticketTypeView decorates a ticket type snapshot with the purchasability the
// page needs. Remaining is reported as-is, negative included; Available alone
// gates the buy control.
type ticketTypeView struct {
	models.TicketType
	Available      bool   `json:"available"`
	Remaining      int    `json:"remaining"`
	PriceFormatted string `json:"price_formatted"`
}

// eventView is the event page payload
type eventView struct {
	models.Event
	TicketTypes []ticketTypeView `json:"ticket_types"`
}

// GetEvent returns an event with per-tier availability evaluated at request
// time.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.api.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	now := time.Now()
	view := eventView{Event: *event}
	for _, tt := range event.TicketTypes {
		view.TicketTypes = append(view.TicketTypes, ticketTypeView{
			TicketType:     tt,
			Available:      tt.AvailableAt(now),
			Remaining:      tt.Remaining(),
			PriceFormatted: h.settings.FormatAmount(r.Context(), tt.Price),
		})
	}

	respondJSON(w, http.StatusOK, view)
}
