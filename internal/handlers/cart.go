package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ticket-storefront/internal/models"
	"ticket-storefront/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const sessionName = "storefront"

// addToCartForm carries the add-to-cart form fields
type addToCartForm struct {
	TicketTypeID string `validate:"required"`
	Quantity     int    `validate:"required,min=1"`
}

// CartHandler handles shopping cart and checkout requests
type CartHandler struct {
	api      services.PlatformAPI
	carts    *services.CartStore
	checkout *services.CheckoutService
	settings *services.SettingsCache
	store    sessions.Store
	validate *validator.Validate
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	api services.PlatformAPI,
	carts *services.CartStore,
	checkout *services.CheckoutService,
	settings *services.SettingsCache,
	store sessions.Store,
) *CartHandler {
	return &CartHandler{
		api:      api,
		carts:    carts,
		checkout: checkout,
		settings: settings,
		store:    store,
		validate: validator.New(),
	}
}

// cartView is the JSON shape of the cart returned to the page
type cartView struct {
	EventID        string            `json:"event_id"`
	Lines          []models.CartLine `json:"lines"`
	Total          int               `json:"total"`
	TotalFormatted string            `json:"total_formatted"`
	ItemCount      int               `json:"item_count"`
}

// AddToCart adds tickets to the session's cart for the event in the URL.
// Availability and the per-order limit are checked here before the cart is
// touched; the backend re-checks everything on purchase.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	form := addToCartForm{
		TicketTypeID: r.FormValue("ticket_type_id"),
		Quantity:     quantity,
	}
	if err := h.validate.Struct(form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid ticket selection")
		return
	}

	event, err := h.api.GetEvent(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	ticketType := event.TicketTypeByID(form.TicketTypeID)
	if ticketType == nil {
		respondError(w, http.StatusNotFound, "ticket type not found")
		return
	}

	if !ticketType.AvailableAt(time.Now()) {
		respondError(w, http.StatusBadRequest, "tickets are not available")
		return
	}

	if form.Quantity > ticketType.Remaining() {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("only %d tickets available", ticketType.Remaining()))
		return
	}

	cart := h.carts.GetOrCreate(h.cartKey(w, r), eventID)
	if err := cart.AddOrMerge(*ticketType, form.Quantity); err != nil {
		respondServiceError(w, err)
		return
	}

	h.respondCart(w, r, cart)
}

// ViewCart returns the session's cart
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	cart := h.carts.Get(h.cartKey(w, r))
	if cart == nil {
		cart = models.NewCart("")
	}
	h.respondCart(w, r, cart)
}

// RemoveFromCart deletes one line from the cart. Removing a line that was
// never added is a no-op, not an error.
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	cart := h.carts.Get(h.cartKey(w, r))
	if cart == nil {
		cart = models.NewCart("")
	} else {
		cart.Remove(r.FormValue("ticket_type_id"))
	}
	h.respondCart(w, r, cart)
}

// ClearCart empties the session's cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if cart := h.carts.Get(h.cartKey(w, r)); cart != nil {
		cart.Clear()
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}

// Checkout submits the cart and redirects the browser to the external payment
// authorization URL. This is a full navigation away from the storefront; the
// user comes back through the payment callback. On failure the cart is left
// intact and the error is surfaced for an explicit retry.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	cart := h.carts.Get(h.cartKey(w, r))
	if cart == nil || cart.IsEmpty() {
		respondError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	resp, err := h.checkout.Checkout(r.Context(), token, cart)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	http.Redirect(w, r, resp.AuthorizationURL, http.StatusSeeOther)
}

// respondCart writes the cart with derived totals. The snapshot keeps the
// encoded lines and totals consistent with each other while other requests on
// the same session keep mutating the cart.
func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, cart *models.Cart) {
	snap := cart.Snapshot()
	respondJSON(w, http.StatusOK, cartView{
		EventID:        snap.EventID,
		Lines:          snap.Lines,
		Total:          snap.Total,
		TotalFormatted: h.settings.FormatAmount(r.Context(), snap.Total),
		ItemCount:      snap.ItemCount,
	})
}

// cartKey returns the opaque cart key from the session cookie, minting one on
// first use. Only the key lives in the cookie; the cart itself stays in
// memory.
func (h *CartHandler) cartKey(w http.ResponseWriter, r *http.Request) string {
	session, _ := h.store.Get(r, sessionName)

	if key, ok := session.Values["cart_key"].(string); ok && key != "" {
		return key
	}

	key := uuid.NewString()
	session.Values["cart_key"] = key
	if err := session.Save(r, w); err != nil {
		// The cart still works for this request; the key just won't stick.
		return key
	}
	return key
}

// bearerToken extracts the bearer token from the Authorization header. It is
// read per request, never cached, so an expired token surfaces on the call
// that used it.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
