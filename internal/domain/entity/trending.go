package entity

// RoutePair is one origin/destination pair on the trending list.
type RoutePair struct {
	Origin      string
	Destination string
}

// TrendingRoute is one resolved trending-route row. AirlineCode and
// AirlineLogo are null when the carrier has no IATA code.
type TrendingRoute struct {
	From           string  `json:"from"`
	To             string  `json:"to"`
	Airline        string  `json:"airline"`
	AirlineCode    *string `json:"airline_code"`
	AirlineLogo    *string `json:"airline_logo"`
	TotalAmount    string  `json:"total_amount"`
	TotalCurrency  string  `json:"total_currency"`
	FormattedPrice string  `json:"formatted_price"`
	Duration       string  `json:"duration"`
	Departure      string  `json:"departure"`
	Arrival        string  `json:"arrival"`
	RouteDate      string  `json:"route_date"`
}
