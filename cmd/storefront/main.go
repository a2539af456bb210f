package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"ticket-storefront/internal/config"
	"ticket-storefront/internal/handlers"
	"ticket-storefront/internal/middleware"
	"ticket-storefront/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Platform API client
	api := services.NewClient(services.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})

	// Create session store; the cookie only carries the opaque cart key
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Services
	cartStore := services.NewCartStore()
	checkoutService := services.NewCheckoutService(api)
	settingsCache := services.NewSettingsCache(api)

	// Warm the settings cache; failure falls back to the default currency
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	settingsCache.Initialize(ctx)
	cancel()

	// Reclaim abandoned carts
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cartStore.Sweep()
		}
	}()

	// Handlers
	eventHandler := handlers.NewEventHandler(api, settingsCache)
	cartHandler := handlers.NewCartHandler(api, cartStore, checkoutService, settingsCache, sessionStore)
	paymentHandler := handlers.NewPaymentHandler(api)
	settingsHandler := handlers.NewSettingsHandler(settingsCache)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/events/{id}", eventHandler.GetEvent)
	r.Post("/events/{id}/cart", cartHandler.AddToCart)

	r.Get("/cart", cartHandler.ViewCart)
	r.Post("/cart/remove", cartHandler.RemoveFromCart)
	r.Post("/cart/clear", cartHandler.ClearCart)
	r.Post("/checkout", cartHandler.Checkout)

	r.Get("/payments/callback", paymentHandler.Callback)
	r.Get("/payments/verify", paymentHandler.Verify)

	r.Get("/settings/currency", settingsHandler.GetCurrency)
	r.Post("/settings/refresh", settingsHandler.Refresh)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Storefront listening on %s (backend: %s)", addr, cfg.API.BaseURL)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
