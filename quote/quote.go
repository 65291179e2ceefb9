// Package quote resolves ticker symbols to their most recent trading price.
//
// Lookups are independent per symbol with a deliberate partial-failure
// policy: one bad symbol never prevents reporting on the rest of the
// portfolio. A failed lookup degrades to a zero-price quote carrying its
// cause.
package quote

import (
	"context"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/etnz/foliomail"
)

// Provider looks up the most recent trading price for a single ticker. The
// market-data sources have no batch endpoint.
type Provider interface {
	Latest(ctx context.Context, ticker string) (foliomail.Money, error)
}

// Fetcher resolves a batch of tickers through a Provider, retrying each
// symbol a bounded number of times before degrading it to a zero quote.
type Fetcher struct {
	Provider Provider

	// Retries is the number of additional attempts per symbol after the
	// first one.
	Retries uint64

	// Interval is the initial backoff interval (jittered, exponential).
	Interval time.Duration
}

// NewFetcher returns a Fetcher with the default retry policy: three attempts
// per symbol starting half a second apart.
func NewFetcher(p Provider) *Fetcher {
	return &Fetcher{Provider: p, Retries: 2, Interval: 500 * time.Millisecond}
}

// Fetch resolves each ticker independently. The returned map has an entry
// for every requested ticker; entries whose lookup failed have a zero price
// and a non-nil Err. Fetch itself never fails.
func (f *Fetcher) Fetch(ctx context.Context, tickers []string) map[string]foliomail.Quote {
	quotes := make(map[string]foliomail.Quote, len(tickers))
	for _, ticker := range tickers {
		price, err := f.fetchOne(ctx, ticker)
		if err != nil {
			log.Printf("no price for %s, valuing at zero: %v", ticker, err)
			quotes[ticker] = foliomail.Quote{Ticker: ticker, Err: err}
			continue
		}
		quotes[ticker] = foliomail.Quote{Ticker: ticker, Price: price}
	}
	return quotes
}

func (f *Fetcher) fetchOne(ctx context.Context, ticker string) (foliomail.Money, error) {
	policy := backoff.NewExponentialBackOff()
	if f.Interval > 0 {
		policy.InitialInterval = f.Interval
	}

	var price foliomail.Money
	op := func() error {
		var err error
		price, err = f.Provider.Latest(ctx, ticker)
		return err
	}
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, f.Retries), ctx))
	return price, err
}
