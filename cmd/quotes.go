package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

// quotesCmd fetches current prices for explicit tickers, to verify the
// market-data side of the pipeline on its own.
type quotesCmd struct{}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "fetch current prices for the given tickers" }
func (*quotesCmd) Usage() string {
	return `foliomail quotes TICKER [TICKER...]

  Fetches the most recent trading price for each ticker. A failing ticker is
  reported with its cause; it never aborts the batch.
`
}

func (*quotesCmd) SetFlags(_ *flag.FlagSet) {}

func (*quotesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fetcher, err := newQuoteFetcher(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tickers := f.Args()
	quotes := fetcher.Fetch(ctx, tickers)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Ticker", "Price", "Status"},
	}
	for _, t := range tickers {
		q := quotes[t]
		status := "ok"
		if !q.Known() {
			status = q.Err.Error()
		}
		table.Rows = append(table.Rows, []string{md.Bold(t), q.Price.String(), status})
	}
	doc.Table(table)
	printMarkdown(doc.String())

	return subcommands.ExitSuccess
}
