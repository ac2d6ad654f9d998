package sheets

import (
	"strings"

	"flightdesk-service/internal/domain/entity"
)

// bookedAtLayout mimics an en-US locale timestamp.
const bookedAtLayout = "1/2/2006, 3:04:05 PM"

// FlattenLead renders a lead as one sheet row matching headerColumns.
// Card data leaves the store truncated to the last four digits.
func FlattenLead(lead *entity.Lead) []interface{} {
	var travellers entity.Travellers
	if lead.Travellers != nil {
		travellers = *lead.Travellers
	}

	var airline, origin, destination, totalAmount, totalCurrency string
	if lead.Flight != nil {
		airline = lead.Flight.Owner
		totalAmount = lead.Flight.TotalAmount
		totalCurrency = lead.Flight.TotalCurrency
		if len(lead.Flight.Slices) > 0 {
			origin = lead.Flight.Slices[0].Origin
			destination = lead.Flight.Slices[0].Destination
		}
	}

	var email, phone, address string
	if lead.Contact != nil {
		email = lead.Contact.Email
		phone = lead.Contact.Phone
		address = joinNonEmpty(
			lead.Contact.Street1,
			lead.Contact.Street2,
			lead.Contact.City,
			lead.Contact.State,
			lead.Contact.Country,
			lead.Contact.Zip,
		)
	}

	var cardHolder, cardLast4, expiry string
	cardLast4 = "XXXX"
	if lead.Payment != nil {
		cardHolder = lead.Payment.CardHolder
		cardLast4 = lead.Payment.CardLast4()
		expiry = lead.Payment.ExpiryMonth + "/" + lead.Payment.ExpiryYear
	}

	return []interface{}{
		lead.ConfirmationID,
		joinNames(travellers.Adults),
		joinNames(travellers.Children),
		joinNames(travellers.Infants),
		len(travellers.Adults),
		len(travellers.Children),
		len(travellers.Infants),
		airline,
		origin,
		destination,
		totalAmount,
		totalCurrency,
		email,
		phone,
		address,
		cardHolder,
		cardLast4,
		expiry,
		lead.BookedAt.Format(bookedAtLayout),
	}
}

func joinNames(travellers []entity.Traveller) string {
	names := make([]string, 0, len(travellers))
	for _, t := range travellers {
		if name := t.FullName(); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
