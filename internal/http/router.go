package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vishwasri/techfest-backend/internal/observability"
)

func SetupRouter(h *Handlers, logger observability.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(LoggerMiddleware(logger))
	r.Use(TracingMiddleware)
	r.Use(MetricsMiddleware)

	r.Get("/", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Get("/registrations", h.ListRegistrations)
		r.Get("/registration/{input}", h.RegistrationLookup)

		r.Post("/stalls", h.CreateStall)
		r.Get("/stalls", h.ListStalls)
		r.Get("/stalls/{input}", h.StallLookup)

		r.Post("/sponsorship", h.CreateSponsorship)
		r.Post("/sponsorship/register", h.RegisterSponsorship)
		r.Get("/sponsorship", h.ListSponsorships)
		r.Get("/sponsorships", h.ListSponsorships)

		r.Post("/contact", h.CreateContact)
		r.Get("/contact", h.ListContacts)

		r.Post("/create-order", h.CreateOrder)
		r.Post("/verify-payment", h.VerifyPayment)
		r.Get("/ticket/{input}", h.TicketLookup)
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
