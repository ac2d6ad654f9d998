package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/usecase"
	"flightdesk-service/pkg/apierr"
)

// LeadHandler serves the lead endpoints.
type LeadHandler struct {
	leads     *usecase.LeadService
	responder *Responder
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leads *usecase.LeadService, responder *Responder) *LeadHandler {
	return &LeadHandler{
		leads:     leads,
		responder: responder,
	}
}

// createLeadRequest keeps the inbound body to the four booking
// sub-objects; everything else on a lead is server-assigned.
type createLeadRequest struct {
	Flight     *entity.Offer      `json:"flight"`
	Travellers *entity.Travellers `json:"travellers"`
	Contact    *entity.Contact    `json:"contact"`
	Payment    *entity.Payment    `json:"payment"`
}

// CreateLead handles POST /api/leads/create
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) error {
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return apierr.BadRequest("Invalid request body")
	}

	lead, err := h.leads.Create(r.Context(), &entity.Lead{
		Flight:     req.Flight,
		Travellers: req.Travellers,
		Contact:    req.Contact,
		Payment:    req.Payment,
	})
	if err != nil {
		return err
	}

	h.responder.Success(w, http.StatusOK, "Lead created successfully", map[string]string{
		"id":             lead.ID,
		"confirmationId": lead.ConfirmationID,
	})
	return nil
}

// GetLeadByID handles GET /api/leads/{id}
func (h *LeadHandler) GetLeadByID(w http.ResponseWriter, r *http.Request) error {
	lead, err := h.leads.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	h.responder.Success(w, http.StatusOK, "Lead fetched successfully", lead)
	return nil
}

// GetLeadByConfirmation handles GET /api/leads/confirmation/{confirmationId}
func (h *LeadHandler) GetLeadByConfirmation(w http.ResponseWriter, r *http.Request) error {
	lead, err := h.leads.GetByConfirmationID(r.Context(), chi.URLParam(r, "confirmationId"))
	if err != nil {
		return err
	}

	h.responder.Success(w, http.StatusOK, "Booking fetched successfully", lead)
	return nil
}

// GetLatestLead handles GET /api/leads/latest
func (h *LeadHandler) GetLatestLead(w http.ResponseWriter, r *http.Request) error {
	lead, err := h.leads.GetLatest(r.Context())
	if err != nil {
		return err
	}

	h.responder.Success(w, http.StatusOK, "Latest booking retrieved successfully", lead)
	return nil
}
