package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/foliomail"
)

// Yahoo looks up the latest daily close on the Yahoo Finance chart API. No
// API key is required.
type Yahoo struct {
	Currency string // default USD

	// BaseURL overrides the API host in tests.
	BaseURL string

	client *http.Client
}

func (y *Yahoo) Latest(ctx context.Context, ticker string) (foliomail.Money, error) {
	// https://query1.finance.yahoo.com/v8/finance/chart/AAPL?range=1d&interval=1d
	// The payload nests the closes under
	// chart.result[0].indicators.quote[0].close, possibly with trailing nulls.
	base := y.BaseURL
	if base == "" {
		base = "https://query1.finance.yahoo.com"
	}
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", base, url.PathEscape(ticker))

	var payload interface{}
	if y.client == nil {
		y.client = newDailyCachingClient()
	}
	if err := jwget(ctx, y.client, addr, &payload); err != nil {
		return foliomail.Money{}, err
	}

	if e, err := jsonpath.Get("$.chart.error", payload); err == nil && e != nil {
		return foliomail.Money{}, fmt.Errorf("yahoo chart error for %s: %v", ticker, e)
	}

	closes, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", payload)
	if err != nil {
		return foliomail.Money{}, fmt.Errorf("no price data for %s: %w", ticker, err)
	}
	series, ok := closes.([]interface{})
	if !ok {
		return foliomail.Money{}, fmt.Errorf("unexpected close series for %s: %T", ticker, closes)
	}

	// most recent non-null close
	for i := len(series) - 1; i >= 0; i-- {
		if price, ok := series[i].(float64); ok {
			currency := y.Currency
			if currency == "" {
				currency = foliomail.DefaultCurrency
			}
			return foliomail.M(price, currency), nil
		}
	}
	return foliomail.Money{}, fmt.Errorf("no price data for %s", ticker)
}
