package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/domain/repository"
	"flightdesk-service/pkg/duffel"
	"flightdesk-service/pkg/logger"
	"flightdesk-service/pkg/metrics"
)

const (
	airlineLogoURL = "https://images.kiwi.com/airlines/64/%s.png"

	// Sentinel markers for routes that could not be resolved. Rows
	// carrying them are filtered out before the response.
	markerNoFlights  = "No flights found"
	markerFetchError = "Error fetching data"
)

// trendingPairs is the fixed route list reported by the trending endpoint.
var trendingPairs = []entity.RoutePair{
	{Origin: "JFK", Destination: "LAX"},
	{Origin: "ORD", Destination: "MIA"},
	{Origin: "SFO", Destination: "LAS"},
	{Origin: "DFW", Destination: "NYC"},
	{Origin: "SEA", Destination: "ORD"},
	{Origin: "ATL", Destination: "TPA"},
}

// TrendingRoutes resolves the cheapest current offer for each route on
// a fixed list, one upstream call per route in parallel.
type TrendingRoutes struct {
	searcher        repository.OfferSearcher
	supplierTimeout time.Duration
	logger          logger.Logger
	metrics         *metrics.Metrics
	now             func() time.Time
}

// NewTrendingRoutes creates a new trending routes usecase
func NewTrendingRoutes(searcher repository.OfferSearcher, supplierTimeout time.Duration, logger logger.Logger, metrics *metrics.Metrics) *TrendingRoutes {
	return &TrendingRoutes{
		searcher:        searcher,
		supplierTimeout: supplierTimeout,
		logger:          logger,
		metrics:         metrics,
		now:             time.Now,
	}
}

// Fetch queries all routes concurrently and waits for every call to
// settle. A failing or empty route yields a sentinel that is dropped
// from the result; the other routes are unaffected.
func (u *TrendingRoutes) Fetch(ctx context.Context) []entity.TrendingRoute {
	departureDate := u.now().AddDate(0, 0, 7).Format("2006-01-02")

	results := make([]entity.TrendingRoute, len(trendingPairs))
	var wg sync.WaitGroup

	for i, pair := range trendingPairs {
		wg.Add(1)
		go func(i int, pair entity.RoutePair) {
			defer wg.Done()
			results[i] = u.fetchRoute(ctx, pair, departureDate)
		}(i, pair)
	}

	wg.Wait()

	resolved := make([]entity.TrendingRoute, 0, len(results))
	for _, r := range results {
		if r.TotalAmount != "" {
			resolved = append(resolved, r)
		}
	}
	return resolved
}

// fetchRoute always returns a record; failures and empty results come
// back as sentinels instead of errors so one route can never abort
// the rest.
func (u *TrendingRoutes) fetchRoute(ctx context.Context, pair entity.RoutePair, departureDate string) entity.TrendingRoute {
	offerReq := &duffel.OfferRequest{
		Slices: []duffel.SliceRequest{
			{
				Origin:        pair.Origin,
				Destination:   pair.Destination,
				DepartureDate: departureDate,
			},
		},
		Passengers:     []duffel.PassengerRequest{{Type: "adult"}},
		CabinClass:     DefaultCabinClass,
		MaxConnections: 1,
	}

	offers, err := u.searcher.Search(ctx, offerReq, u.supplierTimeout)
	if err != nil {
		u.metrics.ErrorsCount.WithLabelValues("trending").Inc()
		u.logger.Error("Trending route fetch failed",
			"origin", pair.Origin,
			"destination", pair.Destination,
			"error", err)
		return entity.TrendingRoute{From: pair.Origin, To: pair.Destination, Airline: markerFetchError}
	}

	if len(offers) == 0 {
		return entity.TrendingRoute{From: pair.Origin, To: pair.Destination, Airline: markerNoFlights}
	}

	return buildTrendingRoute(pair, offers[0], departureDate)
}

func buildTrendingRoute(pair entity.RoutePair, offer duffel.Offer, departureDate string) entity.TrendingRoute {
	route := entity.TrendingRoute{
		From:           pair.Origin,
		To:             pair.Destination,
		Airline:        "Unknown Airline",
		TotalAmount:    offer.TotalAmount,
		TotalCurrency:  offer.TotalCurrency,
		FormattedPrice: "$" + offer.TotalAmount,
		Duration:       "N/A",
		RouteDate:      departureDate,
	}

	if offer.Owner != nil {
		if offer.Owner.Name != "" {
			route.Airline = offer.Owner.Name
		}
		if offer.Owner.IATACode != "" {
			code := offer.Owner.IATACode
			logo := fmt.Sprintf(airlineLogoURL, code)
			route.AirlineCode = &code
			route.AirlineLogo = &logo
		}
	}

	if len(offer.Slices) > 0 {
		first := offer.Slices[0]
		if d := FormatISODuration(first.Duration); d != "" {
			route.Duration = d
		}
		route.Departure = first.DepartureAt
		route.Arrival = first.ArrivalAt
		if len(first.DepartureAt) >= 10 {
			route.RouteDate = first.DepartureAt[:10]
		}
	}

	return route
}

// FormatISODuration renders an ISO-8601 duration like PT7H30M as
// "7h 30m". Unknown input comes back empty.
func FormatISODuration(iso string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(iso, "P"), "T")
	if trimmed == "" {
		return ""
	}

	var parts []string
	var digits strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == 'D' || r == 'H' || r == 'M' || r == 'S':
			if digits.Len() == 0 {
				return ""
			}
			parts = append(parts, digits.String()+strings.ToLower(string(r)))
			digits.Reset()
		case r == 'T':
			// date/time separator inside the duration
		default:
			return ""
		}
	}

	return strings.Join(parts, " ")
}
