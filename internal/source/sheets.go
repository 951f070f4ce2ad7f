package source

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// AuthMode selects how the Google Sheets backend authenticates. It is passed
// explicitly into the constructor; there is no global auth state.
type AuthMode string

// Supported auth modes.
const (
	// AuthAPIKey reads the sheet with an API key.
	AuthAPIKey AuthMode = "api-key"
	// AuthCredentialsFile reads the sheet with a service-account
	// credentials file.
	AuthCredentialsFile AuthMode = "credentials-file"
	// AuthNone reads a publicly shared sheet without credentials
	// (the deauthorized mode).
	AuthNone AuthMode = "none"
)

// SheetsSource reads workbook tables from a Google Spreadsheet, one sheet per
// table, addressed by spreadsheet ID.
type SheetsSource struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsSource creates a Sheets-backed source. The secret is the API key
// for AuthAPIKey, the credentials file path for AuthCredentialsFile, and
// ignored for AuthNone.
func NewSheetsSource(ctx context.Context, spreadsheetID string, mode AuthMode, secret string) (*SheetsSource, error) {
	var opts []option.ClientOption
	switch mode {
	case AuthAPIKey:
		opts = []option.ClientOption{option.WithAPIKey(secret)}
	case AuthCredentialsFile:
		opts = []option.ClientOption{
			option.WithCredentialsFile(secret),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope),
		}
	case AuthNone:
		opts = []option.ClientOption{option.WithoutAuthentication()}
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsSource{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadTable fetches one sheet by name. The first row is the header; sheet row
// order is preserved.
func (s *SheetsSource) ReadTable(ctx context.Context, name string) (*Table, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, name).Context(ctx).Do()
	if err != nil {
		return nil, &Error{
			Location: s.spreadsheetID,
			Table:    name,
			Message:  "failed to fetch sheet values",
			Cause:    err,
		}
	}

	records := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = fmt.Sprint(cell)
		}
		records = append(records, record)
	}

	return tableFromCells(name, records), nil
}
