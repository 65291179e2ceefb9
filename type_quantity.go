package foliomail

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Quantity is an exact number of shares or units. Spreadsheet quantities are
// free text, so arithmetic is kept in decimals to make sums exact.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient Quantity factory.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Quantity{value: v}
	case float32:
		return Quantity{value: decimal.NewFromFloat32(v)}
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Quantity{value: decimal.NewFromInt32(v)}
	case int64:
		return Quantity{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseQuantity coerces the textual quantity of a holding row into a
// Quantity. Thousands separators and surrounding spaces are tolerated;
// anything else that does not parse as a number contributes zero, never an
// error, so one sloppy cell cannot abort a run.
func ParseQuantity(s string) Quantity {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return Quantity{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}
	}
	return Quantity{value: d}
}

func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) String() string          { return q.value.String() }

// Commas formats the quantity with thousands separators and no decimal
// places, the way it appears in the report's holdings table.
func (q Quantity) Commas() string {
	f := money.NewFormatter(0, ".", ",", "", "1")
	return f.Format(q.value.Round(0).IntPart())
}
