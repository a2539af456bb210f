package services

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// DefaultCurrency is used whenever the platform settings cannot be loaded
const DefaultCurrency = "NGN"

// currencySymbols maps ISO currency codes to display symbols. Unknown codes
// fall back to the code itself.
var currencySymbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF",
	"CNY": "¥",
	"INR": "₹",
	"KES": "KSh",
	"ZAR": "R",
	"GHS": "₵",
}

// CurrencySettings is the memoized slice of platform settings the storefront
// cares about.
type CurrencySettings struct {
	Currency string
	Symbol   string
}

// SettingsCache memoizes platform settings for the life of the process. The
// first Get fetches; later Gets return the cached value until Invalidate is
// called explicitly (an admin settings update triggers that). There is no
// implicit re-fetch timing.
type SettingsCache struct {
	api PlatformAPI

	mu     sync.Mutex
	cached *CurrencySettings
}

// NewSettingsCache creates a new settings cache
func NewSettingsCache(api PlatformAPI) *SettingsCache {
	return &SettingsCache{api: api}
}

// Initialize warms the cache early in startup. Failure is non-fatal; Get
// falls back to the default currency.
func (s *SettingsCache) Initialize(ctx context.Context) {
	if _, err := s.Get(ctx); err != nil {
		log.Printf("Warning: failed to initialize platform settings: %v", err)
	}
}

// Get returns the cached currency settings, fetching them on first use.
// Concurrent callers during a fetch share one request: the mutex is held
// across the round trip. When the backend cannot be reached the default
// currency is cached and returned, matching first-paint behavior; the error
// is reported so callers can log it.
func (s *SettingsCache) Get(ctx context.Context) (CurrencySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached, nil
	}

	settings, err := s.api.GetPlatformSettings(ctx)
	if err != nil {
		s.cached = &CurrencySettings{
			Currency: DefaultCurrency,
			Symbol:   symbolFor(DefaultCurrency),
		}
		return *s.cached, err
	}

	currency := settings.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	s.cached = &CurrencySettings{
		Currency: currency,
		Symbol:   symbolFor(currency),
	}
	return *s.cached, nil
}

// Invalidate drops the cached settings so the next Get re-fetches
func (s *SettingsCache) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}

// FormatAmount renders an amount in minor units with the cached currency
// symbol, e.g. 250000 -> "₦2500.00".
func (s *SettingsCache) FormatAmount(ctx context.Context, amount int) string {
	settings, _ := s.Get(ctx)
	return fmt.Sprintf("%s%.2f", settings.Symbol, float64(amount)/100)
}

// symbolFor returns the display symbol for a currency code
func symbolFor(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency
}
