package entity

import (
	"time"
)

const (
	// LeadSourceWebsite tags leads captured through the public site.
	LeadSourceWebsite = "website"

	// LeadStatusConfirmed is the initial, final status of every lead.
	LeadStatusConfirmed = "confirmed"
)

// Traveller is one person on a booking.
type Traveller struct {
	First string `json:"first" bson:"first"`
	Last  string `json:"last" bson:"last"`
}

// FullName joins the traveller's names for display.
func (t Traveller) FullName() string {
	switch {
	case t.First == "":
		return t.Last
	case t.Last == "":
		return t.First
	default:
		return t.First + " " + t.Last
	}
}

// Travellers partitions a booking's travellers by category.
type Travellers struct {
	Adults   []Traveller `json:"adults" bson:"adults"`
	Children []Traveller `json:"children" bson:"children"`
	Infants  []Traveller `json:"infants" bson:"infants"`
}

// Contact holds the booking contact details.
type Contact struct {
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Street1 string `json:"street1" bson:"street1"`
	Street2 string `json:"street2" bson:"street2"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Country string `json:"country" bson:"country"`
	Zip     string `json:"zip" bson:"zip"`
}

// Payment holds the card details submitted with a booking. The full
// card number stays in the document store only; anything leaving the
// store (the spreadsheet mirror) sees the last four digits at most.
type Payment struct {
	CardHolder  string `json:"cardHolder" bson:"cardHolder"`
	CardNumber  string `json:"cardNumber" bson:"cardNumber"`
	ExpiryMonth string `json:"expiryMonth" bson:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear" bson:"expiryYear"`
}

// CardLast4 returns the last four digits of the card number, or "XXXX"
// when no number was captured.
func (p Payment) CardLast4() string {
	if p.CardNumber == "" {
		return "XXXX"
	}
	if len(p.CardNumber) <= 4 {
		return p.CardNumber
	}
	return p.CardNumber[len(p.CardNumber)-4:]
}

// Lead is a persisted booking intent. Created once, never mutated.
type Lead struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	ConfirmationID string      `json:"confirmationId" bson:"confirmationId"`
	Flight         *Offer      `json:"flight" bson:"flight"`
	Travellers     *Travellers `json:"travellers" bson:"travellers"`
	Contact        *Contact    `json:"contact" bson:"contact"`
	Payment        *Payment    `json:"payment" bson:"payment"`
	BookedAt       time.Time   `json:"bookedAt" bson:"bookedAt"`
	Source         string      `json:"source" bson:"source"`
	Status         string      `json:"status" bson:"status"`
	CreatedAt      time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt" bson:"updatedAt"`
}
