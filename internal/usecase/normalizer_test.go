package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk-service/internal/usecase"
	"flightdesk-service/pkg/duffel"
)

func TestNormalizeOffers_EmptyInput(t *testing.T) {
	out := usecase.NormalizeOffers(nil)
	require.NotNil(t, out)
	assert.Len(t, out, 0)

	out = usecase.NormalizeOffers([]duffel.Offer{})
	assert.Len(t, out, 0)
}

func TestNormalizeOffers_PreservesOrder(t *testing.T) {
	offers := []duffel.Offer{
		{ID: "off_1"},
		{ID: "off_2"},
		{ID: "off_3"},
	}

	out := usecase.NormalizeOffers(offers)
	require.Len(t, out, 3)
	assert.Equal(t, "off_1", out[0].ID)
	assert.Equal(t, "off_2", out[1].ID)
	assert.Equal(t, "off_3", out[2].ID)
}

func TestNormalizeOffers_MissingOptionalFieldsDegradeToDefaults(t *testing.T) {
	// No owner, no conditions, no baggage, no distance, no aircraft,
	// no layover duration anywhere.
	offers := []duffel.Offer{
		{
			ID:            "off_bare",
			TotalAmount:   "199.50",
			TotalCurrency: "USD",
			Passengers: []duffel.OfferPassenger{
				{Type: "adult", CabinClass: "economy"},
			},
			Slices: []duffel.Slice{
				{
					Segments: []duffel.Segment{
						{DepartureAt: "2026-09-10T08:00:00", ArrivalAt: "2026-09-10T11:00:00"},
					},
				},
			},
		},
	}

	out := usecase.NormalizeOffers(offers)
	require.Len(t, out, 1)
	offer := out[0]

	assert.Equal(t, "", offer.Owner)
	assert.Equal(t, "", offer.AirlineLogoCode)

	// Condition sets default to empty objects, never nil.
	assert.NotNil(t, offer.Conditions.ChangeBeforeDeparture)
	assert.NotNil(t, offer.Conditions.ChangeAfterDeparture)
	assert.NotNil(t, offer.Conditions.RefundBeforeDeparture)
	assert.NotNil(t, offer.Conditions.RefundAfterDeparture)
	assert.Empty(t, offer.Conditions.ChangeBeforeDeparture)

	require.Len(t, offer.Passengers, 1)
	p := offer.Passengers[0]
	assert.NotNil(t, p.Baggage.Cabin)
	assert.NotNil(t, p.Baggage.Checked)
	assert.Empty(t, p.Baggage.Cabin)
	assert.Nil(t, p.FareBrandName)
	assert.NotNil(t, p.Conditions)

	require.Len(t, offer.Slices, 1)
	require.Len(t, offer.Slices[0].Segments, 1)
	seg := offer.Slices[0].Segments[0]
	assert.Nil(t, seg.Distance)
	assert.Equal(t, "N/A", seg.Aircraft)
	assert.NotNil(t, seg.Baggage)
	assert.Empty(t, seg.Baggage)
	assert.Equal(t, 0, seg.Stops)
	assert.Equal(t, "PT0M", seg.LayoverDuration)
}

func TestNormalizeOffers_PopulatedFieldsCarryThrough(t *testing.T) {
	distance := "3970.5"
	offers := []duffel.Offer{
		{
			ID:            "off_full",
			TotalAmount:   "540.00",
			TotalCurrency: "USD",
			BaseAmount:    "480.00",
			TaxAmount:     "60.00",
			Owner:         &duffel.Carrier{Name: "American Airlines", IATACode: "AA"},
			CreatedAt:     "2026-08-01T12:00:00Z",
			Conditions: &duffel.OfferConditions{
				ChangeBeforeDeparture: map[string]interface{}{"allowed": true},
			},
			Passengers: []duffel.OfferPassenger{
				{
					Type:          "adult",
					CabinClass:    "business",
					FareBrandName: "Flexible",
					Baggages: &duffel.PassengerBaggages{
						Checked: []duffel.Baggage{{Type: "checked", Quantity: 2}},
					},
				},
			},
			Slices: []duffel.Slice{
				{
					Origin:      &duffel.Airport{IATACode: "JFK"},
					Destination: &duffel.Airport{IATACode: "LAX"},
					DepartureAt: "2026-09-10T08:00:00",
					ArrivalAt:   "2026-09-10T14:30:00",
					Duration:    "PT6H30M",
					Segments: []duffel.Segment{
						{
							Origin:                       &duffel.Airport{IATACode: "JFK"},
							Destination:                  &duffel.Airport{IATACode: "LAX"},
							Distance:                     &distance,
							Aircraft:                     &duffel.Aircraft{Name: "Boeing 777-300"},
							OperatingCarrierFlightNumber: "1234",
							MarketingCarrier:             &duffel.Carrier{Name: "American Airlines", IATACode: "AA"},
							OperatingCarrier:             &duffel.Carrier{Name: "American Airlines", IATACode: "AA"},
							CabinClass:                   "business",
							Baggage: &duffel.SegmentBaggage{
								Included: []duffel.Baggage{{Type: "carry_on", Quantity: 1}},
							},
							Stops:           []duffel.Stop{{Duration: "PT1H"}},
							LayoverDuration: "PT1H15M",
						},
					},
				},
			},
		},
	}

	out := usecase.NormalizeOffers(offers)
	require.Len(t, out, 1)
	offer := out[0]

	assert.Equal(t, "American Airlines", offer.Owner)
	assert.Equal(t, "AA", offer.AirlineLogoCode)
	assert.Equal(t, map[string]interface{}{"allowed": true}, offer.Conditions.ChangeBeforeDeparture)

	require.Len(t, offer.Passengers, 1)
	require.NotNil(t, offer.Passengers[0].FareBrandName)
	assert.Equal(t, "Flexible", *offer.Passengers[0].FareBrandName)
	assert.Len(t, offer.Passengers[0].Baggage.Checked, 1)

	require.Len(t, offer.Slices, 1)
	slice := offer.Slices[0]
	assert.Equal(t, "JFK", slice.Origin)
	assert.Equal(t, "LAX", slice.Destination)

	require.Len(t, slice.Segments, 1)
	seg := slice.Segments[0]
	require.NotNil(t, seg.Distance)
	assert.Equal(t, "3970.5", *seg.Distance)
	assert.Equal(t, "Boeing 777-300", seg.Aircraft)
	assert.Equal(t, "1234", seg.FlightNumber)
	assert.Equal(t, "AA", seg.MarketingCarrierCode)
	assert.Equal(t, 1, seg.Stops)
	assert.Equal(t, "PT1H15M", seg.LayoverDuration)
}

func TestLayoverCount(t *testing.T) {
	tests := []struct {
		segments int
		want     int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.LayoverCount(tt.segments))
	}
}

func TestNormalizeOffers_LayoversDerivedPerSlice(t *testing.T) {
	offers := []duffel.Offer{
		{
			Slices: []duffel.Slice{
				{Segments: []duffel.Segment{{}}},
				{Segments: []duffel.Segment{{}, {}, {}}},
			},
		},
	}

	out := usecase.NormalizeOffers(offers)
	require.Len(t, out, 1)
	require.Len(t, out[0].Slices, 2)
	assert.Equal(t, 0, out[0].Slices[0].Layovers)
	assert.Equal(t, 2, out[0].Slices[1].Layovers)
}

func TestNormalizeCabinClass(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "economy"},
		{"Economy", "economy"},
		{"Premium Economy", "premium_economy"},
		{"BUSINESS", "business"},
		{" First ", "first"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.NormalizeCabinClass(tt.in), "input %q", tt.in)
	}
}
