package sheets

import (
	"context"
	"sync/atomic"

	"golang.org/x/oauth2"
	sheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/pkg/logger"
)

const (
	appendRange = "Sheet1!A:S"
	headerRange = "Sheet1!A1:S1"
)

// headerColumns is the fixed, unified header row of the lead sheet.
var headerColumns = []string{
	"Confirmation ID",
	"Adult Names",
	"Children Names",
	"Infant Names",
	"Total Adults",
	"Total Children",
	"Total Infants",
	"Airline",
	"Origin",
	"Destination",
	"Total Fare",
	"Currency",
	"Email",
	"Phone",
	"Address",
	"Card Holder",
	"Card Number (last 4)",
	"Expiry",
	"Booked At",
}

// SheetsService mirrors leads into a Google Sheet. The sheet is a
// derived copy of the document store, never read back.
type SheetsService struct {
	service       *sheets.Service
	spreadsheetID string
	logger        logger.Logger
	headerReady   atomic.Bool
}

// NewSheetsService creates a new Sheets mirror service
func NewSheetsService(ctx context.Context, tokenSource oauth2.TokenSource, spreadsheetID string, logger logger.Logger) (*SheetsService, error) {
	service, err := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &SheetsService{
		service:       service,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// Append flattens a lead into one row and appends it to the sheet,
// initializing the header row on first use.
func (s *SheetsService) Append(ctx context.Context, lead *entity.Lead) error {
	if err := s.ensureHeaders(ctx); err != nil {
		// Header trouble should not block the data row.
		s.logger.Warn("Failed to ensure sheet headers", "error", err)
	}

	values := &sheets.ValueRange{
		Values: [][]interface{}{FlattenLead(lead)},
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, appendRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

// ensureHeaders probes the header range and writes the styled header
// row when the sheet is still empty. The probe makes initialization
// idempotent; concurrent first writers may race it, which at worst
// re-applies the same header.
func (s *SheetsService) ensureHeaders(ctx context.Context) error {
	if s.headerReady.Load() {
		return nil
	}

	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, headerRange).
		Context(ctx).
		Do()
	if err != nil {
		return err
	}

	if len(resp.Values) > 0 {
		s.headerReady.Store(true)
		return nil
	}

	s.logger.Info("No sheet headers found, creating them")

	header := make([]interface{}, len(headerColumns))
	for i, col := range headerColumns {
		header[i] = col
	}

	_, err = s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, headerRange, &sheets.ValueRange{Values: [][]interface{}{header}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return err
	}

	if err := s.styleHeaders(ctx); err != nil {
		return err
	}

	s.headerReady.Store(true)
	return nil
}

// styleHeaders bolds and colors the header row, auto-sizes the columns
// and freezes row 1.
func (s *SheetsService) styleHeaders(ctx context.Context) error {
	requests := []*sheets.Request{
		{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:       0,
					StartRowIndex: 0,
					EndRowIndex:   1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						BackgroundColor: &sheets.Color{
							Red:   0.11,
							Green: 0.36,
							Blue:  0.77,
						},
						HorizontalAlignment: "CENTER",
						TextFormat: &sheets.TextFormat{
							ForegroundColor: &sheets.Color{Red: 1, Green: 1, Blue: 1},
							FontSize:        11,
							Bold:            true,
						},
					},
				},
				Fields: "userEnteredFormat(backgroundColor,textFormat,horizontalAlignment)",
			},
		},
		{
			AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
				Dimensions: &sheets.DimensionRange{
					SheetId:    0,
					Dimension:  "COLUMNS",
					StartIndex: 0,
					EndIndex:   int64(len(headerColumns)),
				},
			},
		},
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: 0,
					GridProperties: &sheets.GridProperties{
						FrozenRowCount: 1,
					},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
	}

	_, err := s.service.Spreadsheets.
		BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}).
		Context(ctx).
		Do()
	return err
}
