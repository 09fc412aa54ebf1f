package sheet

import (
	"context"
	"errors"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"notification-hub/pkg/channel"
)

func (s *Sheet) Name() channel.Name {
	return channel.Sheet
}

// AddRow appends a single row. An empty sheetName selects the configured sheet.
func (s *Sheet) AddRow(ctx context.Context, cells []any, sheetName string) (*sheets.AppendValuesResponse, error) {
	return s.AddRows(ctx, [][]any{cells}, sheetName)
}

// AddRows appends rows in order below the last non-empty row of the sheet.
func (s *Sheet) AddRows(ctx context.Context, rows [][]any, sheetName string) (*sheets.AppendValuesResponse, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	if sheetName == "" {
		sheetName = s.sheetName
	}

	rng := Range(sheetName, rows)
	resp, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption(s.inputOption).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		if s.l != nil {
			s.l.Warnf(ctx, "pkg.sheet.AddRows: range=%s: %v", rng, err)
		}
		return nil, channel.NewTransportError(channel.Sheet, err, apiMessage(err))
	}
	return resp, nil
}

// Verify fetches the spreadsheet id as a lightweight reachability check.
func (s *Sheet) Verify(ctx context.Context) bool {
	_, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil && s.l != nil {
		s.l.Warnf(ctx, "pkg.sheet.Verify: %v", err)
	}
	return err == nil
}

// apiMessage extracts the error message from a Google API error body.
func apiMessage(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Message
	}
	return ""
}
