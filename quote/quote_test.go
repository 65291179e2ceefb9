package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etnz/foliomail"
)

// stubProvider serves canned prices and errors, counting attempts per
// ticker.
type stubProvider struct {
	prices   map[string]foliomail.Money
	errs     map[string]error
	attempts map[string]int

	// failuresBefore makes a ticker fail that many times before succeeding.
	failuresBefore map[string]int
}

func (p *stubProvider) Latest(_ context.Context, ticker string) (foliomail.Money, error) {
	if p.attempts == nil {
		p.attempts = make(map[string]int)
	}
	p.attempts[ticker]++
	if n := p.failuresBefore[ticker]; p.attempts[ticker] <= n {
		return foliomail.Money{}, errors.New("transient failure")
	}
	if err := p.errs[ticker]; err != nil {
		return foliomail.Money{}, err
	}
	return p.prices[ticker], nil
}

func TestFetch_OneBadSymbolNeverAbortsTheBatch(t *testing.T) {
	p := &stubProvider{
		prices: map[string]foliomail.Money{
			"AAPL": foliomail.M(150.0, "USD"),
			"MSFT": foliomail.M(300.0, "USD"),
		},
		errs: map[string]error{"BOGUS": errors.New("no price data for BOGUS.US")},
	}
	f := &Fetcher{Provider: p, Retries: 0, Interval: time.Millisecond}

	quotes := f.Fetch(context.Background(), []string{"AAPL", "BOGUS", "MSFT"})

	if len(quotes) != 3 {
		t.Fatalf("got %d quotes, want an entry for every ticker", len(quotes))
	}
	if q := quotes["AAPL"]; !q.Known() || !q.Price.Equal(foliomail.M(150.0, "USD")) {
		t.Errorf("AAPL = %+v", q)
	}
	if q := quotes["BOGUS"]; q.Known() || !q.Price.IsZero() {
		t.Errorf("BOGUS = %+v, want a zero-price quote with its cause", q)
	}
	if q := quotes["MSFT"]; !q.Known() {
		t.Errorf("MSFT = %+v, want success despite the earlier failure", q)
	}
}

func TestFetch_RetriesTransientFailures(t *testing.T) {
	p := &stubProvider{
		prices:         map[string]foliomail.Money{"AAPL": foliomail.M(150.0, "USD")},
		failuresBefore: map[string]int{"AAPL": 2},
	}
	f := &Fetcher{Provider: p, Retries: 2, Interval: time.Millisecond}

	quotes := f.Fetch(context.Background(), []string{"AAPL"})

	if q := quotes["AAPL"]; !q.Known() {
		t.Fatalf("AAPL = %+v, want success on the third attempt", q)
	}
	if got := p.attempts["AAPL"]; got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestFetch_GivesUpAfterRetryBudget(t *testing.T) {
	p := &stubProvider{failuresBefore: map[string]int{"AAPL": 100}}
	f := &Fetcher{Provider: p, Retries: 1, Interval: time.Millisecond}

	quotes := f.Fetch(context.Background(), []string{"AAPL"})

	if q := quotes["AAPL"]; q.Known() {
		t.Fatalf("AAPL = %+v, want a degraded quote", q)
	}
	if got := p.attempts["AAPL"]; got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestNewFetcherDefaults(t *testing.T) {
	f := NewFetcher(&stubProvider{})
	if f.Retries != 2 {
		t.Errorf("Retries = %d, want 2", f.Retries)
	}
	if f.Interval != 500*time.Millisecond {
		t.Errorf("Interval = %v, want 500ms", f.Interval)
	}
}
