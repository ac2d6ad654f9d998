package usecase

import (
	"strings"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/pkg/duffel"
)

// zeroLayover is the sentinel for segments without a layover duration.
const zeroLayover = "PT0M"

// DefaultCabinClass is used when the caller does not request one.
const DefaultCabinClass = "economy"

// NormalizeCabinClass lower-cases a requested travel class and joins
// internal spaces with underscores for the upstream API. Empty input
// falls back to economy.
func NormalizeCabinClass(travelClass string) string {
	if travelClass == "" {
		return DefaultCabinClass
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(travelClass)), " ", "_")
}

// LayoverCount derives the layover count of a slice from its segment
// count: one segment means a direct flight.
func LayoverCount(segments int) int {
	if segments <= 1 {
		return 0
	}
	return segments - 1
}

// NormalizeOffers maps raw upstream offers into the stable output
// schema, preserving order. It is pure: no I/O, inputs untouched, and
// every missing optional field degrades to an explicit default.
func NormalizeOffers(offers []duffel.Offer) []entity.Offer {
	normalized := make([]entity.Offer, 0, len(offers))
	for _, offer := range offers {
		normalized = append(normalized, normalizeOffer(offer))
	}
	return normalized
}

func normalizeOffer(offer duffel.Offer) entity.Offer {
	out := entity.Offer{
		ID:               offer.ID,
		TotalAmount:      offer.TotalAmount,
		TotalCurrency:    offer.TotalCurrency,
		BaseAmount:       offer.BaseAmount,
		TaxAmount:        offer.TaxAmount,
		TotalEmissionsKg: offer.TotalEmissionsKg,
		CreatedAt:        offer.CreatedAt,
		Conditions:       normalizeConditions(offer.Conditions),
		Passengers:       make([]entity.OfferPassenger, 0, len(offer.Passengers)),
		Slices:           make([]entity.Slice, 0, len(offer.Slices)),
	}

	if offer.Owner != nil {
		out.Owner = offer.Owner.Name
		out.AirlineLogoCode = offer.Owner.IATACode
	}

	for _, p := range offer.Passengers {
		out.Passengers = append(out.Passengers, normalizePassenger(p))
	}
	for _, s := range offer.Slices {
		out.Slices = append(out.Slices, normalizeSlice(s))
	}

	return out
}

func normalizeConditions(conditions *duffel.OfferConditions) entity.OfferConditions {
	out := entity.OfferConditions{
		ChangeBeforeDeparture: map[string]interface{}{},
		ChangeAfterDeparture:  map[string]interface{}{},
		RefundBeforeDeparture: map[string]interface{}{},
		RefundAfterDeparture:  map[string]interface{}{},
	}
	if conditions == nil {
		return out
	}
	if conditions.ChangeBeforeDeparture != nil {
		out.ChangeBeforeDeparture = conditions.ChangeBeforeDeparture
	}
	if conditions.ChangeAfterDeparture != nil {
		out.ChangeAfterDeparture = conditions.ChangeAfterDeparture
	}
	if conditions.RefundBeforeDeparture != nil {
		out.RefundBeforeDeparture = conditions.RefundBeforeDeparture
	}
	if conditions.RefundAfterDeparture != nil {
		out.RefundAfterDeparture = conditions.RefundAfterDeparture
	}
	return out
}

func normalizePassenger(p duffel.OfferPassenger) entity.OfferPassenger {
	out := entity.OfferPassenger{
		Type:       p.Type,
		CabinClass: p.CabinClass,
		Baggage: entity.PassengerBaggage{
			Cabin:   []entity.BaggageAllowance{},
			Checked: []entity.BaggageAllowance{},
		},
		Conditions: map[string]interface{}{},
	}

	if p.Baggages != nil {
		out.Baggage.Cabin = normalizeBaggage(p.Baggages.Cabin)
		out.Baggage.Checked = normalizeBaggage(p.Baggages.Checked)
	}
	if p.FareBrandName != "" {
		fareBrand := p.FareBrandName
		out.FareBrandName = &fareBrand
	}
	if p.Conditions != nil {
		out.Conditions = p.Conditions
	}

	return out
}

func normalizeSlice(s duffel.Slice) entity.Slice {
	out := entity.Slice{
		Departure: s.DepartureAt,
		Arrival:   s.ArrivalAt,
		Duration:  s.Duration,
		Layovers:  LayoverCount(len(s.Segments)),
		Segments:  make([]entity.Segment, 0, len(s.Segments)),
	}

	if s.Origin != nil {
		out.Origin = s.Origin.IATACode
	}
	if s.Destination != nil {
		out.Destination = s.Destination.IATACode
	}

	for _, seg := range s.Segments {
		out.Segments = append(out.Segments, normalizeSegment(seg))
	}

	return out
}

func normalizeSegment(seg duffel.Segment) entity.Segment {
	out := entity.Segment{
		Departure:       seg.DepartureAt,
		Arrival:         seg.ArrivalAt,
		Duration:        seg.Duration,
		Aircraft:        "N/A",
		FlightNumber:    seg.OperatingCarrierFlightNumber,
		CabinClass:      seg.CabinClass,
		Baggage:         []entity.BaggageAllowance{},
		Stops:           len(seg.Stops),
		LayoverDuration: zeroLayover,
	}

	if seg.Origin != nil {
		out.Origin = seg.Origin.IATACode
	}
	if seg.Destination != nil {
		out.Destination = seg.Destination.IATACode
	}
	if seg.Distance != nil && *seg.Distance != "" {
		distance := *seg.Distance
		out.Distance = &distance
	}
	if seg.Aircraft != nil && seg.Aircraft.Name != "" {
		out.Aircraft = seg.Aircraft.Name
	}
	if seg.MarketingCarrier != nil {
		out.MarketingCarrier = seg.MarketingCarrier.Name
		out.MarketingCarrierCode = seg.MarketingCarrier.IATACode
	}
	if seg.OperatingCarrier != nil {
		out.OperatingCarrier = seg.OperatingCarrier.Name
		out.OperatingCarrierCode = seg.OperatingCarrier.IATACode
	}
	if seg.Baggage != nil {
		out.Baggage = normalizeBaggage(seg.Baggage.Included)
	}
	if seg.LayoverDuration != "" {
		out.LayoverDuration = seg.LayoverDuration
	}

	return out
}

func normalizeBaggage(in []duffel.Baggage) []entity.BaggageAllowance {
	out := make([]entity.BaggageAllowance, 0, len(in))
	for _, b := range in {
		out = append(out, entity.BaggageAllowance{Type: b.Type, Quantity: b.Quantity})
	}
	return out
}
