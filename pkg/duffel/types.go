package duffel

// Wire types for the Duffel offer-request API. Only the fields this
// service reads are mapped; optional objects are pointers so absent
// fields survive decoding.

// OfferRequest is the body of an offer-request creation call.
type OfferRequest struct {
	Slices         []SliceRequest     `json:"slices"`
	Passengers     []PassengerRequest `json:"passengers"`
	CabinClass     string             `json:"cabin_class,omitempty"`
	MaxConnections int                `json:"max_connections"`
}

// SliceRequest is one requested directional leg.
type SliceRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

// PassengerRequest is one requested traveller seat.
type PassengerRequest struct {
	Type string `json:"type"`
}

// Carrier identifies an airline.
type Carrier struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
}

// Airport carries the IATA code of an origin or destination.
type Airport struct {
	IATACode string `json:"iata_code"`
}

// Aircraft carries the aircraft name of a segment.
type Aircraft struct {
	Name string `json:"name"`
}

// Baggage is one baggage allowance entry.
type Baggage struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// PassengerBaggages groups a passenger's allowances by location.
type PassengerBaggages struct {
	Cabin   []Baggage `json:"cabin"`
	Checked []Baggage `json:"checked"`
}

// SegmentBaggage is the allowance attached to a single segment.
type SegmentBaggage struct {
	Included []Baggage `json:"included"`
}

// Stop is an intermediate stop within a segment.
type Stop struct {
	Airport  *Airport `json:"airport"`
	Duration string   `json:"duration"`
}

// Segment is one physical flight within a slice.
type Segment struct {
	Origin                       *Airport        `json:"origin"`
	Destination                  *Airport        `json:"destination"`
	DepartureAt                  string          `json:"departure_at"`
	ArrivalAt                    string          `json:"arrival_at"`
	Duration                     string          `json:"duration"`
	Distance                     *string         `json:"distance"`
	Aircraft                     *Aircraft       `json:"aircraft"`
	OperatingCarrierFlightNumber string          `json:"operating_carrier_flight_number"`
	MarketingCarrier             *Carrier        `json:"marketing_carrier"`
	OperatingCarrier             *Carrier        `json:"operating_carrier"`
	CabinClass                   string          `json:"cabin_class"`
	Baggage                      *SegmentBaggage `json:"baggage"`
	Stops                        []Stop          `json:"stops"`
	LayoverDuration              string          `json:"layover_duration"`
}

// Slice is one directional leg of an offer.
type Slice struct {
	Origin      *Airport  `json:"origin"`
	Destination *Airport  `json:"destination"`
	DepartureAt string    `json:"departure_at"`
	ArrivalAt   string    `json:"arrival_at"`
	Duration    string    `json:"duration"`
	Segments    []Segment `json:"segments"`
}

// OfferPassenger is a priced traveller within an offer.
type OfferPassenger struct {
	Type          string                 `json:"type"`
	CabinClass    string                 `json:"cabin_class"`
	Baggages      *PassengerBaggages     `json:"baggages"`
	FareBrandName string                 `json:"fare_brand_name"`
	Conditions    map[string]interface{} `json:"conditions"`
}

// OfferConditions holds the change/refund condition sets of an offer.
type OfferConditions struct {
	ChangeBeforeDeparture map[string]interface{} `json:"change_before_departure"`
	ChangeAfterDeparture  map[string]interface{} `json:"change_after_departure"`
	RefundBeforeDeparture map[string]interface{} `json:"refund_before_departure"`
	RefundAfterDeparture  map[string]interface{} `json:"refund_after_departure"`
}

// Offer is one priced, bookable itinerary returned by a search.
type Offer struct {
	ID               string           `json:"id"`
	TotalAmount      string           `json:"total_amount"`
	TotalCurrency    string           `json:"total_currency"`
	BaseAmount       string           `json:"base_amount"`
	TaxAmount        string           `json:"tax_amount"`
	TotalEmissionsKg string           `json:"total_emissions_kg"`
	Owner            *Carrier         `json:"owner"`
	CreatedAt        string           `json:"created_at"`
	Conditions       *OfferConditions `json:"conditions"`
	Passengers       []OfferPassenger `json:"passengers"`
	Slices           []Slice          `json:"slices"`
}
