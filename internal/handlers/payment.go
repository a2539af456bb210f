package handlers

import (
	"log"
	"net/http"
	"net/url"

	"ticket-storefront/internal/services"
)

// PaymentHandler handles the return leg from the external payment provider
type PaymentHandler struct {
	api services.PlatformAPI
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(api services.PlatformAPI) *PaymentHandler {
	return &PaymentHandler{api: api}
}

// verifyView is the JSON shape of a settled verification
type verifyView struct {
	Status    services.VerificationState `json:"status"`
	Message   string                     `json:"message"`
	TicketIDs []string                   `json:"ticket_ids,omitempty"`
}

// Callback receives the provider-initiated redirect. Providers disagree on
// the parameter name, so both known aliases are accepted; with no usable
// reference the user lands back on the public events listing.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		reference = r.URL.Query().Get("trxref")
	}

	if reference == "" {
		log.Printf("Payment callback without reference, redirecting to events")
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/payments/verify?reference="+url.QueryEscape(reference), http.StatusSeeOther)
}

// Verify resolves the reference to a payment outcome. One attempt, no
// polling; refreshing the page repeats the call, which the backend tolerates
// per reference.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")

	flow := services.NewVerificationFlow(h.api)
	state := flow.Verify(r.Context(), reference)

	view := verifyView{
		Status:  state,
		Message: flow.Message(),
	}
	for _, ticket := range flow.Tickets() {
		view.TicketIDs = append(view.TicketIDs, ticket.ID)
	}

	if state == services.StateFailed {
		log.Printf("Payment verification failed for reference %q: %s", reference, view.Message)
	}

	respondJSON(w, http.StatusOK, view)
}
