package entity

// Normalized flight-offer schema returned by the search API. This is
// the stable outward contract; the upstream wire shape never leaks
// past the normalizer.

// OfferConditions holds pass-through change/refund condition sets.
// Absent sets are empty objects, never null.
type OfferConditions struct {
	ChangeBeforeDeparture map[string]interface{} `json:"change_before_departure" bson:"change_before_departure"`
	ChangeAfterDeparture  map[string]interface{} `json:"change_after_departure" bson:"change_after_departure"`
	RefundBeforeDeparture map[string]interface{} `json:"refund_before_departure" bson:"refund_before_departure"`
	RefundAfterDeparture  map[string]interface{} `json:"refund_after_departure" bson:"refund_after_departure"`
}

// BaggageAllowance is one baggage entry of an offer passenger or segment.
type BaggageAllowance struct {
	Type     string `json:"type" bson:"type"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// PassengerBaggage groups allowances by location.
type PassengerBaggage struct {
	Cabin   []BaggageAllowance `json:"cabin" bson:"cabin"`
	Checked []BaggageAllowance `json:"checked" bson:"checked"`
}

// OfferPassenger is one priced traveller within an offer.
type OfferPassenger struct {
	Type          string                 `json:"type" bson:"type"`
	CabinClass    string                 `json:"cabin_class" bson:"cabin_class"`
	Baggage       PassengerBaggage       `json:"baggage" bson:"baggage"`
	FareBrandName *string                `json:"fare_brand_name" bson:"fare_brand_name"`
	Conditions    map[string]interface{} `json:"conditions" bson:"conditions"`
}

// Segment is one physical flight within a slice.
type Segment struct {
	Origin               string             `json:"origin" bson:"origin"`
	Destination          string             `json:"destination" bson:"destination"`
	Departure            string             `json:"departure" bson:"departure"`
	Arrival              string             `json:"arrival" bson:"arrival"`
	Duration             string             `json:"duration" bson:"duration"`
	Distance             *string            `json:"distance" bson:"distance"`
	Aircraft             string             `json:"aircraft" bson:"aircraft"`
	FlightNumber         string             `json:"flight_number" bson:"flight_number"`
	MarketingCarrier     string             `json:"marketing_carrier" bson:"marketing_carrier"`
	MarketingCarrierCode string             `json:"marketing_carrier_code" bson:"marketing_carrier_code"`
	OperatingCarrier     string             `json:"operating_carrier" bson:"operating_carrier"`
	OperatingCarrierCode string             `json:"operating_carrier_code" bson:"operating_carrier_code"`
	CabinClass           string             `json:"cabin_class" bson:"cabin_class"`
	Baggage              []BaggageAllowance `json:"baggage" bson:"baggage"`
	Stops                int                `json:"stops" bson:"stops"`
	LayoverDuration      string             `json:"layover_duration" bson:"layover_duration"`
}

// Slice is one directional leg of an offer. Layovers is derived:
// segment count minus one, floored at zero.
type Slice struct {
	Origin      string    `json:"origin" bson:"origin"`
	Destination string    `json:"destination" bson:"destination"`
	Departure   string    `json:"departure" bson:"departure"`
	Arrival     string    `json:"arrival" bson:"arrival"`
	Duration    string    `json:"duration" bson:"duration"`
	Layovers    int       `json:"layovers" bson:"layovers"`
	Segments    []Segment `json:"segments" bson:"segments"`
}

// Offer is a normalized, priced itinerary.
type Offer struct {
	ID               string           `json:"id" bson:"id"`
	TotalAmount      string           `json:"total_amount" bson:"total_amount"`
	TotalCurrency    string           `json:"total_currency" bson:"total_currency"`
	BaseAmount       string           `json:"base_amount" bson:"base_amount"`
	TaxAmount        string           `json:"tax_amount" bson:"tax_amount"`
	TotalEmissionsKg string           `json:"total_emissions_kg" bson:"total_emissions_kg"`
	Owner            string           `json:"owner" bson:"owner"`
	AirlineLogoCode  string           `json:"airline_logo_code" bson:"airline_logo_code"`
	CreatedAt        string           `json:"created_at" bson:"created_at"`
	Conditions       OfferConditions  `json:"conditions" bson:"conditions"`
	Passengers       []OfferPassenger `json:"passengers" bson:"passengers"`
	Slices           []Slice          `json:"slices" bson:"slices"`
}
