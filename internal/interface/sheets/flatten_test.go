package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk-service/internal/domain/entity"
)

func TestFlattenLead_FullRow(t *testing.T) {
	lead := &entity.Lead{
		ConfirmationID: "TKB-482913",
		Travellers: &entity.Travellers{
			Adults: []entity.Traveller{
				{First: "Jane", Last: "Doe"},
				{First: "John", Last: "Doe"},
			},
			Children: []entity.Traveller{{First: "Sam", Last: "Doe"}},
		},
		Flight: &entity.Offer{
			Owner:         "American Airlines",
			TotalAmount:   "540.10",
			TotalCurrency: "USD",
			Slices: []entity.Slice{
				{Origin: "JFK", Destination: "LAX"},
				{Origin: "LAX", Destination: "JFK"},
			},
		},
		Contact: &entity.Contact{
			Email:   "jane@example.com",
			Phone:   "+15550100",
			Street1: "1 Main St",
			City:    "Brooklyn",
			State:   "NY",
			Country: "US",
			Zip:     "11201",
		},
		Payment: &entity.Payment{
			CardHolder:  "Jane Doe",
			CardNumber:  "4111111111111234",
			ExpiryMonth: "09",
			ExpiryYear:  "2030",
		},
		BookedAt: time.Date(2026, time.March, 5, 14, 30, 9, 0, time.UTC),
	}

	row := FlattenLead(lead)
	require.Len(t, row, len(headerColumns))

	assert.Equal(t, "TKB-482913", row[0])
	assert.Equal(t, "Jane Doe, John Doe", row[1])
	assert.Equal(t, "Sam Doe", row[2])
	assert.Equal(t, "", row[3])
	assert.Equal(t, 2, row[4])
	assert.Equal(t, 1, row[5])
	assert.Equal(t, 0, row[6])
	assert.Equal(t, "American Airlines", row[7])
	assert.Equal(t, "JFK", row[8])
	assert.Equal(t, "LAX", row[9])
	assert.Equal(t, "540.10", row[10])
	assert.Equal(t, "USD", row[11])
	assert.Equal(t, "jane@example.com", row[12])
	assert.Equal(t, "+15550100", row[13])
	assert.Equal(t, "1 Main St, Brooklyn, NY, US, 11201", row[14])
	assert.Equal(t, "Jane Doe", row[15])
	assert.Equal(t, "1234", row[16])
	assert.Equal(t, "09/2030", row[17])
	assert.Equal(t, "3/5/2026, 2:30:09 PM", row[18])
}

func TestFlattenLead_MissingSubObjects(t *testing.T) {
	lead := &entity.Lead{
		ConfirmationID: "TKB-100000",
		BookedAt:       time.Date(2026, time.January, 2, 9, 5, 0, 0, time.UTC),
	}

	row := FlattenLead(lead)
	require.Len(t, row, len(headerColumns))

	assert.Equal(t, "TKB-100000", row[0])
	assert.Equal(t, "", row[1])
	assert.Equal(t, 0, row[4])
	assert.Equal(t, "", row[7])
	assert.Equal(t, "", row[14])
	assert.Equal(t, "XXXX", row[16])
	assert.Equal(t, "", row[17])
	assert.Equal(t, "1/2/2026, 9:05:00 AM", row[18])
}

func TestFlattenLead_ShortCardNumberKeptAsIs(t *testing.T) {
	lead := &entity.Lead{
		Payment: &entity.Payment{CardNumber: "99"},
	}

	row := FlattenLead(lead)
	assert.Equal(t, "99", row[16])
}

func TestJoinNames_SkipsEmptyEntries(t *testing.T) {
	names := joinNames([]entity.Traveller{
		{First: "Jane", Last: "Doe"},
		{},
		{First: "Solo"},
	})
	assert.Equal(t, "Jane Doe, Solo", names)
}
