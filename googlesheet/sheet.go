package googlesheet

import (
	"context"
	"fmt"

	"github.com/etnz/foliomail"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ValueRenderMode selects how a cell's computed value is materialized.
type ValueRenderMode string

const (
	// Formatted returns values as they appear in the sheet, e.g. "1,000".
	Formatted ValueRenderMode = "FORMATTED_VALUE"
	// Unformatted returns the raw computed values.
	Unformatted ValueRenderMode = "UNFORMATTED_VALUE"
	// Formula returns the underlying formula text.
	Formula ValueRenderMode = "FORMULA"
)

// ParseValueRenderMode parses the user-facing mode name; the empty string
// defaults to Formatted.
func ParseValueRenderMode(s string) (ValueRenderMode, error) {
	switch s {
	case "", "formatted":
		return Formatted, nil
	case "unformatted", "raw":
		return Unformatted, nil
	case "formula":
		return Formula, nil
	}
	return "", fmt.Errorf("%w: unknown value-rendering mode %q (want formatted, unformatted or formula)", foliomail.ErrConfig, s)
}

// SheetReader resolves a named range of a spreadsheet into holding rows. It
// requires a CredentialStore that already authenticated.
type SheetReader struct {
	SpreadsheetID string
	Range         string          // A1-style: sheet name + cell range
	Mode          ValueRenderMode // defaults to Formatted

	Credentials *CredentialStore

	// Service is built lazily from Credentials; tests inject one pointed at
	// a fake endpoint.
	Service *sheets.Service
}

// Read fetches the configured range and parses it into holding rows. The
// first returned row is the header. A source returning zero rows is a
// configuration error: downstream aggregation has no defined behavior for an
// empty portfolio.
func (r *SheetReader) Read(ctx context.Context) ([]foliomail.HoldingRow, error) {
	svc, err := r.service(ctx)
	if err != nil {
		return nil, err
	}

	mode := r.Mode
	if mode == "" {
		mode = Formatted
	}

	resp, err := svc.Spreadsheets.Values.Get(r.SpreadsheetID, r.Range).
		ValueRenderOption(string(mode)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %s range %q: %w", r.SpreadsheetID, r.Range, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("%w: no data found in sheet %s range %q", foliomail.ErrConfig, r.SpreadsheetID, r.Range)
	}
	return foliomail.ParseHoldings(resp.Values)
}

// Title returns the spreadsheet's title.
func (r *SheetReader) Title(ctx context.Context) (string, error) {
	svc, err := r.service(ctx)
	if err != nil {
		return "", err
	}
	resp, err := svc.Spreadsheets.Get(r.SpreadsheetID).Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("cannot read sheet %s metadata: %w", r.SpreadsheetID, err)
	}
	if resp.Properties == nil {
		return "", nil
	}
	return resp.Properties.Title, nil
}

func (r *SheetReader) service(ctx context.Context) (*sheets.Service, error) {
	if r.Service != nil {
		return r.Service, nil
	}
	if r.Credentials == nil || r.Credentials.Token() == nil {
		return nil, foliomail.ErrUnauthenticated
	}
	svc, err := sheets.NewService(ctx, option.WithTokenSource(r.Credentials.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("cannot build sheets client: %w", err)
	}
	r.Service = svc
	return svc, nil
}
