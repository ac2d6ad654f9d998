package usecase

import (
	"context"
	"errors"
	"time"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/domain/repository"
	"flightdesk-service/pkg/apierr"
	"flightdesk-service/pkg/duffel"
	"flightdesk-service/pkg/logger"
	"flightdesk-service/pkg/metrics"
)

const searchMaxConnections = 2

// FlightSearch turns validated search requests into normalized offers.
type FlightSearch struct {
	searcher        repository.OfferSearcher
	supplierTimeout time.Duration
	logger          logger.Logger
	metrics         *metrics.Metrics
}

// NewFlightSearch creates a new flight search usecase
func NewFlightSearch(searcher repository.OfferSearcher, supplierTimeout time.Duration, logger logger.Logger, metrics *metrics.Metrics) *FlightSearch {
	return &FlightSearch{
		searcher:        searcher,
		supplierTimeout: supplierTimeout,
		logger:          logger,
		metrics:         metrics,
	}
}

// Search performs one offer search and normalizes the results. Zero
// offers is a valid, empty result.
func (u *FlightSearch) Search(ctx context.Context, req *entity.SearchRequest) ([]entity.Offer, error) {
	if err := ValidateSearchRequest(req); err != nil {
		return nil, err
	}

	u.metrics.SearchesTotal.Inc()

	offerReq := &duffel.OfferRequest{
		Slices:         buildSlices(req),
		Passengers:     buildPassengers(req.Passengers),
		CabinClass:     NormalizeCabinClass(req.TravelClass),
		MaxConnections: searchMaxConnections,
	}

	offers, err := u.searcher.Search(ctx, offerReq, u.supplierTimeout)
	if err != nil {
		u.metrics.ErrorsCount.WithLabelValues("search").Inc()
		u.logger.Error("Offer search failed",
			"origin", req.Origin,
			"destination", req.Destination,
			"error", err)

		var apiErr *duffel.APIError
		if errors.As(err, &apiErr) {
			return nil, apierr.Upstream(apiErr.StatusCode, apiErr.Message, err)
		}
		return nil, apierr.Upstream(0, "Error fetching flights", err)
	}

	return NormalizeOffers(offers), nil
}

func buildSlices(req *entity.SearchRequest) []duffel.SliceRequest {
	slices := []duffel.SliceRequest{
		{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDate,
		},
	}

	if req.TripType == entity.TripTypeRoundtrip {
		slices = append(slices, duffel.SliceRequest{
			Origin:        req.Destination,
			Destination:   req.Origin,
			DepartureDate: req.ReturnDate,
		})
	}

	return slices
}

func buildPassengers(counts entity.PassengerCounts) []duffel.PassengerRequest {
	adults := counts.Adults
	if adults <= 0 {
		adults = 1
	}

	passengers := make([]duffel.PassengerRequest, 0, adults+counts.Children+counts.Infants)
	for i := 0; i < adults; i++ {
		passengers = append(passengers, duffel.PassengerRequest{Type: "adult"})
	}
	for i := 0; i < counts.Children; i++ {
		passengers = append(passengers, duffel.PassengerRequest{Type: "child"})
	}
	for i := 0; i < counts.Infants; i++ {
		passengers = append(passengers, duffel.PassengerRequest{Type: "infant_without_seat"})
	}

	return passengers
}
