package models

// PurchaseItem is one (ticket type, quantity) pair in a purchase request
type PurchaseItem struct {
	TicketTypeID string `json:"ticket_type_id"`
	Quantity     int    `json:"quantity"`
}

// PurchaseRequest is the body of POST /tickets/purchase. Quantities are not
// re-validated against live availability client-side; the backend is the
// source of truth and may reject the whole request atomically.
type PurchaseRequest struct {
	EventID string         `json:"event_id"`
	Items   []PurchaseItem `json:"items"`
}

// PurchaseResponse is the backend's answer to a purchase request. The
// authorization URL points at the external payment provider; the browser is
// handed off there with a full navigation.
type PurchaseResponse struct {
	TransactionID    string `json:"transaction_id"`
	PaymentReference string `json:"payment_reference"`
	AuthorizationURL string `json:"authorization_url"`
	Amount           int    `json:"amount"`
	Currency         string `json:"currency"`
}

// VerificationResult is the outcome of resolving a payment reference
type VerificationResult struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Tickets []Ticket `json:"tickets"`
}
