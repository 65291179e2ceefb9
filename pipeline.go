package foliomail

import "context"

// Quote is the per-symbol result of a price lookup. A failed lookup is not a
// missing entry: it carries a zero price and the cause in Err, so callers
// can tell "priced at zero" from "price unknown".
type Quote struct {
	Ticker string
	Price  Money
	Err    error
}

// Known reports whether the price is a real quotation rather than the
// zero-price degradation of a failed lookup.
func (q Quote) Known() bool { return q.Err == nil }

// Inline references an image embeddable in the report's markup body by its
// stable embed identifier.
type Inline struct {
	ID   string // content id referenced as cid:<ID> in the markup
	Path string // image file on disk
}

// Document is a rendered report ready for delivery.
type Document struct {
	Subject string
	Text    string // plain-text body; derived from HTML by the transport when empty
	HTML    string
	Images  []Inline
}

// The pipeline's collaborators are constructor-supplied interfaces, not
// ambient imports.

// Authenticator owns credential acquisition, validation, refresh and
// caching. Authenticate is idempotent and safe to call every run.
type Authenticator interface {
	Authenticate(ctx context.Context) error
}

// HoldingsSource resolves the configured range into holding rows.
type HoldingsSource interface {
	Read(ctx context.Context) ([]HoldingRow, error)
}

// QuoteProvider resolves tickers to quotes, independently per symbol. It
// never fails the batch: a failed symbol yields a zero-price Quote.
type QuoteProvider interface {
	Fetch(ctx context.Context, tickers []string) map[string]Quote
}

// Renderer turns a snapshot into a report document. Pure, no I/O.
type Renderer interface {
	Render(s *Snapshot) Document
}

// Sender delivers a rendered document. It never raises past its boundary:
// any delivery failure is reported as false.
type Sender interface {
	Send(ctx context.Context, doc Document) bool
}

// Pipeline runs the reporting stages in order: authenticate, read holdings,
// fetch quotes, aggregate, render, send.
type Pipeline struct {
	Auth     Authenticator
	Holdings HoldingsSource
	Quotes   QuoteProvider
	Renderer Renderer
	Mailer   Sender
}

// Run executes one full report. Configuration and authentication errors
// propagate and terminate the run; price-fetch failures degrade per symbol
// so aggregation and rendering always complete. The returned boolean is the
// delivery outcome; the caller decides whether a failed delivery is fatal.
func (p *Pipeline) Run(ctx context.Context) (*Snapshot, bool, error) {
	if err := p.Auth.Authenticate(ctx); err != nil {
		return nil, false, err
	}

	rows, err := p.Holdings.Read(ctx)
	if err != nil {
		return nil, false, err
	}

	quotes := p.Quotes.Fetch(ctx, Tickers(rows))
	snap := Aggregate(rows, quotes)

	doc := p.Renderer.Render(snap)
	return snap, p.Mailer.Send(ctx, doc), nil
}
