package handlers

import (
	"net/http"

	"ticket-storefront/internal/services"
)

// SettingsHandler exposes the cached platform currency settings
type SettingsHandler struct {
	settings *services.SettingsCache
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *services.SettingsCache) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetCurrency returns the cached-or-default currency settings
func (h *SettingsHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	settings, _ := h.settings.Get(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{
		"currency": settings.Currency,
		"symbol":   settings.Symbol,
	})
}

// Refresh drops the cached settings. Wired to the hook an admin settings
// update calls, so invalidation is explicit rather than time-based.
func (h *SettingsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.settings.Invalidate()
	settings, _ := h.settings.Get(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{
		"currency": settings.Currency,
		"symbol":   settings.Symbol,
	})
}
