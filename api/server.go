/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the booking-calculator frontend

ROUTE GROUPS:
  /api/quotes      Stay quoting
  /api/resorts     Resort metadata
  /api/pricing/*   Caps, bands, suggested payouts
  /api/rentals/*   Milestone recording and payout ledger

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Quoting routes
		r.Post("/quotes", h.CreateQuote)
		r.Get("/resorts", h.ListResorts)

		// Pricing routes
		r.Route("/pricing", func(r chi.Router) {
			r.Post("/caps", h.ComputeCaps)
			r.Get("/band", h.GetBand)
			r.Post("/suggestions", h.SuggestPayouts)
		})

		// Rental payout routes
		r.Route("/rentals/{id}", func(r chi.Router) {
			r.Post("/milestones", h.RecordMilestone)
			r.Get("/payouts", h.ListPayouts)
		})
	})

	return r
}
