package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightdesk-service/pkg/logger"
)

// NewRouter assembles the HTTP surface. The rate limiter guards the
// flight routes only; lead routes register their specific paths before
// the {id} catch-all.
func NewRouter(
	log logger.Logger,
	responder *Responder,
	limiter *RateLimiter,
	flights *FlightHandler,
	leads *LeadHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(log))
	r.Use(NewCORS(allowedOrigins, log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("API is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/flights", func(r chi.Router) {
		r.Use(limiter.Middleware())
		r.Post("/search", responder.Handle(flights.SearchFlights))
		r.Get("/trending", responder.Handle(flights.GetTrendingRoutes))
	})

	r.Route("/api/leads", func(r chi.Router) {
		r.Post("/create", responder.Handle(leads.CreateLead))
		r.Get("/latest", responder.Handle(leads.GetLatestLead))
		r.Get("/confirmation/{confirmationId}", responder.Handle(leads.GetLeadByConfirmation))
		r.Get("/{id}", responder.Handle(leads.GetLeadByID))
	})

	r.NotFound(responder.NotFoundHandler)

	return r
}
