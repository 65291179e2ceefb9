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

// holdingsCmd reads the configured sheet range and prints the parsed rows,
// to verify the spreadsheet side of the pipeline on its own.
type holdingsCmd struct {
	mode string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "read and display the holdings sheet" }
func (*holdingsCmd) Usage() string {
	return `foliomail holdings [-mode <mode>]

  Authenticates, reads the configured spreadsheet range, and prints the
  parsed holding rows.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "", "Value-rendering mode (formatted, unformatted, formula)")
}

func (c *holdingsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if c.mode != "" {
		cfg.SheetMode = c.mode
	}

	store := newCredentialStore(cfg)
	if err := store.Authenticate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	reader, err := newSheetReader(cfg, store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	rows, err := reader.Read(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	if title, err := reader.Title(ctx); err == nil && title != "" {
		doc.H1(title)
	}
	table := md.TableSet{
		Header: []string{"Company", "Account", "Ticker", "Quantity", "Purchase Date"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Company, r.Account, r.Ticker, r.Quantity, r.PurchaseDate})
	}
	doc.Table(table)
	printMarkdown(doc.String())

	fmt.Printf("Fetched %d holdings\n", len(rows))
	return subcommands.ExitSuccess
}
