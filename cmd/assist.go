package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/foliomail"
	"github.com/etnz/foliomail/agent"
	"github.com/etnz/foliomail/report"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd runs the pipeline up to rendering and asks an AI analyst for a
// short commentary on the result. Requires a Gemini API key in the
// environment.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "AI commentary on today's portfolio report" }
func (*assistCmd) Usage() string {
	return `foliomail assist [-model <model>]

  Builds today's report and prints an AI-written commentary on the
  portfolio's composition. Nothing is emailed.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Model to use for the commentary")
}

func (c *assistCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store := newCredentialStore(cfg)
	reader, err := newSheetReader(cfg, store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fetcher, err := newQuoteFetcher(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	p := &foliomail.Pipeline{
		Auth:     store,
		Holdings: reader,
		Quotes:   fetcher,
		Renderer: &report.Renderer{Date: time.Now()},
		Mailer:   silentSender{},
	}
	snap, _, err := p.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	commentator := &agent.Commentator{Model: c.model}
	doc := (&report.Renderer{Date: time.Now()}).Render(snap)
	commentary, err := commentator.Comment(ctx, client, doc.Text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(commentary)
	return subcommands.ExitSuccess
}

// silentSender skips delivery; assist only needs the snapshot.
type silentSender struct{}

func (silentSender) Send(context.Context, foliomail.Document) bool { return true }
