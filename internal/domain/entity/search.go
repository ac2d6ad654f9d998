package entity

// TripTypeRoundtrip marks a round-trip search; anything else is
// treated as one-way.
const TripTypeRoundtrip = "Roundtrip"

// PassengerCounts is the requested traveller breakdown of a search.
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// SearchRequest is the inbound flight-search payload.
type SearchRequest struct {
	TripType      string          `json:"tripType"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	DepartureDate string          `json:"departureDate"`
	ReturnDate    string          `json:"returnDate"`
	TravelClass   string          `json:"travelClass"`
	Passengers    PassengerCounts `json:"passengers"`
}
