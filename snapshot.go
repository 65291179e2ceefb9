package foliomail

import "sort"

// NoHolding is the largest-holding sentinel of an empty snapshot.
const NoHolding = "N/A"

// AggregatedHolding is the per-ticker position derived from the sheet rows
// and the fetched prices.
type AggregatedHolding struct {
	Ticker    string
	Quantity  Quantity
	Price     Money
	Value     Money // Price × Quantity
	PctChange Percent
}

// Snapshot is a normalized view of the portfolio at the time of the run, the
// sole artifact handed to rendering. Daily change and total return stay at
// zero until historical data is wired in.
type Snapshot struct {
	TotalValue     Money
	Holdings       []AggregatedHolding // ordered by value, descending
	NumHoldings    int
	LargestHolding string

	DailyChange    Money
	DailyChangePct Percent
	TotalReturn    Money
	TotalReturnPct Percent
}

// Aggregate groups the holding rows by ticker, sums their coerced
// quantities, values each distinct ticker at its fetched price (zero when
// the price is unknown), and returns the snapshot with holdings sorted by
// value descending. The sort is stable: equal values retain the tickers'
// first-seen order.
func Aggregate(rows []HoldingRow, quotes map[string]Quote) *Snapshot {
	var order []string
	sums := make(map[string]Quantity)
	for _, r := range rows {
		if r.Ticker == "" {
			continue
		}
		if _, ok := sums[r.Ticker]; !ok {
			order = append(order, r.Ticker)
		}
		sums[r.Ticker] = sums[r.Ticker].Add(ParseQuantity(r.Quantity))
	}

	holdings := make([]AggregatedHolding, 0, len(order))
	total := M(0, "")
	for _, ticker := range order {
		price := quotes[ticker].Price // zero Money when absent or unknown
		qty := sums[ticker]
		value := price.Mul(qty)
		total = total.Add(value)
		holdings = append(holdings, AggregatedHolding{
			Ticker:   ticker,
			Quantity: qty,
			Price:    price,
			Value:    value,
		})
	}

	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].Value.GreaterThan(holdings[j].Value)
	})

	largest := NoHolding
	if len(holdings) > 0 {
		largest = holdings[0].Ticker
	}

	return &Snapshot{
		TotalValue:     total,
		Holdings:       holdings,
		NumHoldings:    len(holdings),
		LargestHolding: largest,
	}
}
