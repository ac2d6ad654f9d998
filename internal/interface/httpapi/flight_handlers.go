package httpapi

import (
	"encoding/json"
	"net/http"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/usecase"
	"flightdesk-service/pkg/apierr"
)

// FlightHandler serves the flight search and trending endpoints.
type FlightHandler struct {
	search    *usecase.FlightSearch
	trending  *usecase.TrendingRoutes
	responder *Responder
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(search *usecase.FlightSearch, trending *usecase.TrendingRoutes, responder *Responder) *FlightHandler {
	return &FlightHandler{
		search:    search,
		trending:  trending,
		responder: responder,
	}
}

// SearchFlights handles POST /api/flights/search
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) error {
	var req entity.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return apierr.BadRequest("Invalid request body")
	}

	offers, err := h.search.Search(r.Context(), &req)
	if err != nil {
		return err
	}

	message := "Flights fetched successfully"
	if len(offers) == 0 {
		message = "No flights found"
		offers = []entity.Offer{}
	}

	h.responder.Success(w, http.StatusOK, message, offers)
	return nil
}

// GetTrendingRoutes handles GET /api/flights/trending
func (h *FlightHandler) GetTrendingRoutes(w http.ResponseWriter, r *http.Request) error {
	routes := h.trending.Fetch(r.Context())
	h.responder.Success(w, http.StatusOK, "Trending routes fetched successfully", routes)
	return nil
}
