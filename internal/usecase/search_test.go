package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/usecase"
	"flightdesk-service/pkg/apierr"
	"flightdesk-service/pkg/duffel"
)

func TestFlightSearch_BuildsUpstreamRequest(t *testing.T) {
	var captured *duffel.OfferRequest
	var capturedTimeout time.Duration

	searcher := &fakeSearcher{
		fn: func(_ context.Context, req *duffel.OfferRequest, timeout time.Duration) ([]duffel.Offer, error) {
			captured = req
			capturedTimeout = timeout
			return nil, nil
		},
	}

	fs := usecase.NewFlightSearch(searcher, 15*time.Second, nopLogger{}, testMetrics)

	_, err := fs.Search(context.Background(), &entity.SearchRequest{
		TripType:      entity.TripTypeRoundtrip,
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-17",
		TravelClass:   "Premium Economy",
		Passengers:    entity.PassengerCounts{Adults: 2, Children: 1, Infants: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, captured)

	require.Len(t, captured.Slices, 2)
	assert.Equal(t, duffel.SliceRequest{Origin: "JFK", Destination: "LAX", DepartureDate: "2026-09-10"}, captured.Slices[0])
	assert.Equal(t, duffel.SliceRequest{Origin: "LAX", Destination: "JFK", DepartureDate: "2026-09-17"}, captured.Slices[1])

	require.Len(t, captured.Passengers, 4)
	assert.Equal(t, "adult", captured.Passengers[0].Type)
	assert.Equal(t, "adult", captured.Passengers[1].Type)
	assert.Equal(t, "child", captured.Passengers[2].Type)
	assert.Equal(t, "infant_without_seat", captured.Passengers[3].Type)

	assert.Equal(t, "premium_economy", captured.CabinClass)
	assert.Equal(t, 2, captured.MaxConnections)
	assert.Equal(t, 15*time.Second, capturedTimeout)
}

func TestFlightSearch_DefaultsToOneAdultEconomy(t *testing.T) {
	var captured *duffel.OfferRequest
	searcher := &fakeSearcher{
		fn: func(_ context.Context, req *duffel.OfferRequest, _ time.Duration) ([]duffel.Offer, error) {
			captured = req
			return nil, nil
		},
	}

	fs := usecase.NewFlightSearch(searcher, 15*time.Second, nopLogger{}, testMetrics)

	_, err := fs.Search(context.Background(), &entity.SearchRequest{
		Origin: "JFK", Destination: "LAX", DepartureDate: "2026-09-10",
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	require.Len(t, captured.Slices, 1)
	require.Len(t, captured.Passengers, 1)
	assert.Equal(t, "adult", captured.Passengers[0].Type)
	assert.Equal(t, "economy", captured.CabinClass)
}

func TestFlightSearch_ZeroOffersIsSuccess(t *testing.T) {
	searcher := &fakeSearcher{
		fn: func(context.Context, *duffel.OfferRequest, time.Duration) ([]duffel.Offer, error) {
			return []duffel.Offer{}, nil
		},
	}

	fs := usecase.NewFlightSearch(searcher, 15*time.Second, nopLogger{}, testMetrics)

	offers, err := fs.Search(context.Background(), &entity.SearchRequest{
		Origin: "JFK", Destination: "LAX", DepartureDate: "2026-09-10",
	})
	require.NoError(t, err)
	assert.Len(t, offers, 0)
}

func TestFlightSearch_ValidationRunsBeforeUpstream(t *testing.T) {
	called := false
	searcher := &fakeSearcher{
		fn: func(context.Context, *duffel.OfferRequest, time.Duration) ([]duffel.Offer, error) {
			called = true
			return nil, nil
		},
	}

	fs := usecase.NewFlightSearch(searcher, 15*time.Second, nopLogger{}, testMetrics)

	_, err := fs.Search(context.Background(), &entity.SearchRequest{Origin: "JFK", Destination: "LAX"})
	require.Error(t, err)
	assert.False(t, called, "validation failures must not reach the upstream")
}

func TestFlightSearch_UpstreamErrorsCarryStatus(t *testing.T) {
	searcher := &fakeSearcher{
		fn: func(context.Context, *duffel.OfferRequest, time.Duration) ([]duffel.Offer, error) {
			return nil, &duffel.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "invalid slice"}
		},
	}

	fs := usecase.NewFlightSearch(searcher, 15*time.Second, nopLogger{}, testMetrics)

	_, err := fs.Search(context.Background(), &entity.SearchRequest{
		Origin: "JFK", Destination: "LAX", DepartureDate: "2026-09-10",
	})
	require.Error(t, err)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
}

func TestFlightSearch_UnclassifiedErrorsBecome500(t *testing.T) {
	searcher := &fakeSearcher{
		fn: func(context.Context, *duffel.OfferRequest, time.Duration) ([]duffel.Offer, error) {
			return nil, errors.New("connection refused")
		},
	}

	fs := usecase.NewFlightSearch(searcher, 15*time.Second, nopLogger{}, testMetrics)

	_, err := fs.Search(context.Background(), &entity.SearchRequest{
		Origin: "JFK", Destination: "LAX", DepartureDate: "2026-09-10",
	})
	require.Error(t, err)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.False(t, apiErr.IsClientFault())
}
