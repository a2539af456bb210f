package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ticket-storefront/internal/models"
)

// errorResponse mirrors the backend's error payload shape so the front end
// deals with one format.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Backend messages are relayed verbatim; transport failures get a generic
// message rather than leaking dial errors to the user.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var backendErr *models.BackendError
	var networkErr *models.NetworkError

	switch {
	case errors.Is(err, models.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "cart is empty")
	case errors.Is(err, models.ErrCheckoutInFlight):
		respondError(w, http.StatusConflict, "a checkout is already in progress")
	case errors.Is(err, models.ErrAuthentication):
		respondError(w, http.StatusUnauthorized, "authentication required or session expired")
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &backendErr):
		status := backendErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		respondError(w, status, backendErr.Error())
	case errors.As(err, &networkErr):
		log.Printf("Upstream request failed: %v", err)
		respondError(w, http.StatusBadGateway, "service temporarily unavailable, please try again")
	default:
		log.Printf("Unexpected error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
