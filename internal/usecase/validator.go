package usecase

import (
	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/pkg/apierr"
)

// ValidateSearchRequest checks the structural preconditions of a
// search before anything goes upstream. Violations are client faults.
func ValidateSearchRequest(req *entity.SearchRequest) error {
	if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
		return apierr.BadRequest("Origin, destination, and departure date are required")
	}

	if req.TripType == entity.TripTypeRoundtrip && req.ReturnDate == "" {
		return apierr.BadRequest("Return date is required for round-trip searches")
	}

	return nil
}
