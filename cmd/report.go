package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/foliomail"
	"github.com/etnz/foliomail/report"
	"github.com/google/subcommands"
)

// reportCmd runs the full pipeline: authenticate, read holdings, price them,
// aggregate, render and email the daily report.
type reportCmd struct {
	dryRun bool
	chart  string
	mode   string
	to     string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "fetch holdings, price them, and email the daily report" }
func (*reportCmd) Usage() string {
	return `foliomail report [-n] [-chart <image>] [-mode <mode>] [-to <addresses>]

  Reads the portfolio holdings from the configured spreadsheet range,
  fetches current prices, and emails the rendered summary report.
  With -n the report is printed to the terminal and nothing is sent.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "render the report to the terminal instead of sending it")
	f.StringVar(&c.chart, "chart", "", "Path to a performance chart image to embed in the report")
	f.StringVar(&c.mode, "mode", "", "Value-rendering mode (formatted, unformatted, formula)")
	f.StringVar(&c.to, "to", "", "Comma-separated recipients overriding EMAIL_TO")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if c.to != "" {
		cfg.To = splitList(c.to)
	}
	if c.mode != "" {
		cfg.SheetMode = c.mode
	}

	if !c.dryRun {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	} else if cfg.SheetID == "" || cfg.SheetRange == "" {
		fmt.Fprintf(os.Stderr, "Error: %v: missing sheet id, sheet range\n", foliomail.ErrConfig)
		return subcommands.ExitFailure
	}

	p, err := c.pipeline(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snap, delivered, err := p.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Portfolio value %s across %d holdings, largest %s\n",
		snap.TotalValue, snap.NumHoldings, snap.LargestHolding)
	if !delivered {
		fmt.Fprintln(os.Stderr, "Error: the report email was not delivered")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *reportCmd) pipeline(cfg *foliomail.Config) (*foliomail.Pipeline, error) {
	store := newCredentialStore(cfg)
	reader, err := newSheetReader(cfg, store)
	if err != nil {
		return nil, err
	}
	fetcher, err := newQuoteFetcher(cfg)
	if err != nil {
		return nil, err
	}

	var mailer foliomail.Sender = newMailer(cfg)
	if c.dryRun {
		mailer = previewSender{}
	}

	return &foliomail.Pipeline{
		Auth:     store,
		Holdings: reader,
		Quotes:   fetcher,
		Renderer: &report.Renderer{Date: time.Now(), ChartPath: c.chart},
		Mailer:   mailer,
	}, nil
}

// previewSender prints the report to the terminal instead of delivering it.
type previewSender struct{}

func (previewSender) Send(_ context.Context, doc foliomail.Document) bool {
	fmt.Println("Subject:", doc.Subject)
	printMarkdown(doc.Text)
	return true
}
