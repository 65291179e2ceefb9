package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/foliomail"
)

const chartPayload = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "USD", "symbol": "AAPL"},
        "timestamp": [1755849600, 1755936000],
        "indicators": {
          "quote": [
            {"close": [149.75, 150.25, null]}
          ]
        }
      }
    ],
    "error": null
  }
}`

func TestYahooLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("path = %q, want /v8/finance/chart/AAPL", r.URL.Path)
		}
		fmt.Fprint(w, chartPayload)
	}))
	defer srv.Close()

	y := &Yahoo{BaseURL: srv.URL, client: srv.Client()}
	price, err := y.Latest(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	// last non-null close wins
	if !price.Equal(foliomail.M(150.25, "USD")) {
		t.Errorf("price = %s, want $150.25", price)
	}
}

func TestYahooLatest_ChartError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer srv.Close()

	y := &Yahoo{BaseURL: srv.URL, client: srv.Client()}
	if _, err := y.Latest(context.Background(), "BOGUS"); err == nil {
		t.Fatal("want an error when the chart payload carries one")
	}
}

func TestYahooLatest_AllNullCloses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"indicators":{"quote":[{"close":[null,null]}]}}],"error":null}}`)
	}))
	defer srv.Close()

	y := &Yahoo{BaseURL: srv.URL, client: srv.Client()}
	if _, err := y.Latest(context.Background(), "HALTED"); err == nil {
		t.Fatal("want an error when every close is null")
	}
}
