package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/etnz/foliomail"
	"github.com/shopspring/decimal"
)

// EODHD looks up end-of-day closes on the EODHD API.
//
// The EODHD ticker format is "SYMBOL.EXCHANGECODE"; plain portfolio tickers
// are qualified with the configured exchange.
type EODHD struct {
	APIKey   string
	Exchange string // EODHD exchange code appended to tickers, default "US"
	Currency string // currency of the exchange's quotes, default USD

	// BaseURL overrides the API host in tests.
	BaseURL string

	client *http.Client
}

func (e *EODHD) Latest(ctx context.Context, ticker string) (foliomail.Money, error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	// order=d returns the most recent close first, limit=1 keeps it to one.
	base := e.BaseURL
	if base == "" {
		base = "https://eodhd.com"
	}
	exchange := e.Exchange
	if exchange == "" {
		exchange = "US"
	}
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&order=d&limit=1&api_token=%s",
		base, url.PathEscape(ticker+"."+exchange), url.QueryEscape(e.APIKey))

	type info struct {
		Date  string          `json:"date"`
		Close decimal.Decimal `json:"close"`
	}
	content := make([]info, 0)
	if e.client == nil {
		e.client = newDailyCachingClient()
	}
	if err := jwget(ctx, e.client, addr, &content); err != nil {
		return foliomail.Money{}, err
	}
	if len(content) == 0 {
		return foliomail.Money{}, fmt.Errorf("no price data for %s.%s", ticker, exchange)
	}

	currency := e.Currency
	if currency == "" {
		currency = foliomail.DefaultCurrency
	}
	return foliomail.M(content[0].Close, currency), nil
}
