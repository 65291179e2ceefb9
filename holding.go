package foliomail

import (
	"fmt"
	"strings"
)

// HoldingRow is one row of the holdings sheet, immutable once read. The
// quantity is kept in its raw textual form; coercion happens during
// aggregation.
type HoldingRow struct {
	Company      string
	Account      string
	Ticker       string
	Quantity     string
	PurchaseDate string
}

// Column headers recognized in the sheet's first row, matched
// case-insensitively.
const (
	colCompany      = "company"
	colAccount      = "account"
	colTicker       = "stock"
	colQuantity     = "quantity"
	colPurchaseDate = "purchase date"
)

// ParseHoldings interprets raw sheet values: the first row is a header, all
// subsequent rows are data. Columns are located by header name; a row
// shorter than the header simply leaves the trailing fields empty.
func ParseHoldings(values [][]any) ([]HoldingRow, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: no holding rows found below the header", ErrConfig)
	}

	index := make(map[string]int)
	for i, h := range values[0] {
		index[strings.ToLower(strings.TrimSpace(cell(h)))] = i
	}

	pick := func(row []any, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(cell(row[i]))
	}

	rows := make([]HoldingRow, 0, len(values)-1)
	for _, raw := range values[1:] {
		rows = append(rows, HoldingRow{
			Company:      pick(raw, colCompany),
			Account:      pick(raw, colAccount),
			Ticker:       pick(raw, colTicker),
			Quantity:     pick(raw, colQuantity),
			PurchaseDate: pick(raw, colPurchaseDate),
		})
	}
	return rows, nil
}

// Tickers returns the distinct tickers of the rows, preserving first-seen
// order. Rows with an empty ticker are skipped.
func Tickers(rows []HoldingRow) []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, r := range rows {
		if r.Ticker == "" || seen[r.Ticker] {
			continue
		}
		seen[r.Ticker] = true
		tickers = append(tickers, r.Ticker)
	}
	return tickers
}

// cell renders a spreadsheet cell value as text. The Sheets API materializes
// formatted values as strings, but unformatted mode can yield numbers.
func cell(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
