package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/foliomail"
)

func TestEODHDLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/eod/AAPL.US" {
			t.Errorf("path = %q, want /api/eod/AAPL.US", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_token") != "test-key" {
			t.Errorf("api_token = %q", q.Get("api_token"))
		}
		if q.Get("fmt") != "json" || q.Get("order") != "d" || q.Get("limit") != "1" {
			t.Errorf("query = %v", q)
		}
		fmt.Fprint(w, `[{"date":"2025-08-22","open":149.1,"high":151.0,"low":148.2,"close":150.5,"volume":1000}]`)
	}))
	defer srv.Close()

	e := &EODHD{APIKey: "test-key", BaseURL: srv.URL, client: srv.Client()}
	price, err := e.Latest(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if !price.Equal(foliomail.M(150.5, "USD")) {
		t.Errorf("price = %s, want $150.50", price)
	}
}

func TestEODHDLatest_CustomExchangeAndCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/eod/AIR.PA" {
			t.Errorf("path = %q, want /api/eod/AIR.PA", r.URL.Path)
		}
		fmt.Fprint(w, `[{"date":"2025-08-22","close":142.3}]`)
	}))
	defer srv.Close()

	e := &EODHD{APIKey: "k", Exchange: "PA", Currency: "EUR", BaseURL: srv.URL, client: srv.Client()}
	price, err := e.Latest(context.Background(), "AIR")
	if err != nil {
		t.Fatal(err)
	}
	if !price.Equal(foliomail.M(142.3, "EUR")) {
		t.Errorf("price = %s, want 142.30 EUR", price)
	}
}

func TestEODHDLatest_EmptySeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	e := &EODHD{APIKey: "k", BaseURL: srv.URL, client: srv.Client()}
	if _, err := e.Latest(context.Background(), "BOGUS"); err == nil {
		t.Fatal("want an error for an empty price series")
	}
}

func TestEODHDLatest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	e := &EODHD{APIKey: "bad", BaseURL: srv.URL, client: srv.Client()}
	if _, err := e.Latest(context.Background(), "AAPL"); err == nil {
		t.Fatal("want an error for a non-200 response")
	}
}
