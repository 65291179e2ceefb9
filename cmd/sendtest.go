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

// sendTestCmd delivers a fixture report, to verify the SMTP configuration
// end to end without touching the spreadsheet or the market data source.
type sendTestCmd struct{}

func (*sendTestCmd) Name() string     { return "send-test" }
func (*sendTestCmd) Synopsis() string { return "send a fixture report to verify the mail settings" }
func (*sendTestCmd) Usage() string {
	return `foliomail send-test

  Renders a small fixture portfolio and emails it to the configured
  recipients. Use this once when setting up the SMTP account.
`
}

func (*sendTestCmd) SetFlags(_ *flag.FlagSet) {}

func (*sendTestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	renderer := &report.Renderer{Date: time.Now()}
	doc := renderer.Render(fixtureSnapshot())
	doc.Subject = "[test] " + doc.Subject

	if !newMailer(cfg).Send(ctx, doc) {
		fmt.Fprintln(os.Stderr, "Error: the test email was not delivered")
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Test email sent to %v\n", cfg.To)
	return subcommands.ExitSuccess
}

// fixtureSnapshot is a small, plausible portfolio exercising both sign
// classes in the rendered report.
func fixtureSnapshot() *foliomail.Snapshot {
	holdings := []foliomail.AggregatedHolding{
		{Ticker: "MSFT", Quantity: foliomail.Q(75), Price: foliomail.M(380.0, "USD"), Value: foliomail.M(28500.0, "USD"), PctChange: 2.3},
		{Ticker: "AAPL", Quantity: foliomail.Q(100), Price: foliomail.M(185.0, "USD"), Value: foliomail.M(18500.0, "USD"), PctChange: 1.5},
		{Ticker: "GOOGL", Quantity: foliomail.Q(50), Price: foliomail.M(300.0, "USD"), Value: foliomail.M(15000.0, "USD"), PctChange: -0.8},
	}
	return &foliomail.Snapshot{
		TotalValue:     foliomail.M(62000.0, "USD"),
		Holdings:       holdings,
		NumHoldings:    len(holdings),
		LargestHolding: "MSFT",
		DailyChange:    foliomail.M(1250.50, "USD"),
		DailyChangePct: 1.01,
		TotalReturn:    foliomail.M(12000.0, "USD"),
		TotalReturnPct: 24.0,
	}
}
