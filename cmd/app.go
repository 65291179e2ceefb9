// Package cmd implements the foliomail CLI: the daily report pipeline plus
// small commands to exercise each collaborator (authorization, sheet
// reading, quote fetching, mail delivery) on its own.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/foliomail"
	"github.com/etnz/foliomail/googlesheet"
	"github.com/etnz/foliomail/mail"
	"github.com/etnz/foliomail/quote"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands of the foliomail CLI.
// A main package registers each of them and Execute()s the selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&authCmd{},
	&holdingsCmd{},
	&quotesCmd{},
	&sendTestCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env", ".env", "Path to the env file holding the pipeline settings")

// loadConfig populates the pipeline configuration from the environment,
// loading the env file first. Validation is left to the commands: a dry run
// needs less than a delivery.
func loadConfig() (*foliomail.Config, error) {
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: cannot load env file %q: %v", foliomail.ErrConfig, *envFile, err)
	}

	port := 587
	if v := os.Getenv("EMAIL_SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: EMAIL_SMTP_PORT %q is not a number", foliomail.ErrConfig, v)
		}
		port = p
	}

	startTLS := true
	if v := os.Getenv("EMAIL_STARTTLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: EMAIL_STARTTLS %q is not a boolean", foliomail.ErrConfig, v)
		}
		startTLS = b
	}

	return &foliomail.Config{
		SheetID:          os.Getenv("GOOGLE_SHEET_ID"),
		SheetRange:       os.Getenv("GOOGLE_SHEET_RANGE"),
		SheetMode:        os.Getenv("GOOGLE_SHEET_MODE"),
		ClientSecretFile: getenv("GOOGLE_CLIENT_SECRET", "config/credentials.json"),
		TokenCacheFile:   getenv("GOOGLE_TOKEN_CACHE", "config/token.json"),
		QuoteSource:      getenv("QUOTE_SOURCE", "eodhd"),
		EODHDKey:         getenv("EODHD_API_KEY", "demo"),
		SMTPHost:         getenv("EMAIL_SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:         port,
		From:             os.Getenv("EMAIL_FROM"),
		Password:         os.Getenv("EMAIL_PASSWORD"),
		To:               splitList(os.Getenv("EMAIL_TO")),
		StartTLS:         startTLS,
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// --- collaborator builders ---

func newCredentialStore(cfg *foliomail.Config) *googlesheet.CredentialStore {
	return &googlesheet.CredentialStore{
		ClientSecretFile: cfg.ClientSecretFile,
		TokenCacheFile:   cfg.TokenCacheFile,
	}
}

func newSheetReader(cfg *foliomail.Config, store *googlesheet.CredentialStore) (*googlesheet.SheetReader, error) {
	mode, err := googlesheet.ParseValueRenderMode(cfg.SheetMode)
	if err != nil {
		return nil, err
	}
	return &googlesheet.SheetReader{
		SpreadsheetID: cfg.SheetID,
		Range:         cfg.SheetRange,
		Mode:          mode,
		Credentials:   store,
	}, nil
}

func newQuoteFetcher(cfg *foliomail.Config) (*quote.Fetcher, error) {
	switch cfg.QuoteSource {
	case "", "eodhd":
		return quote.NewFetcher(&quote.EODHD{APIKey: cfg.EODHDKey}), nil
	case "yahoo":
		return quote.NewFetcher(&quote.Yahoo{}), nil
	}
	return nil, fmt.Errorf("%w: unknown quote source %q (want eodhd or yahoo)", foliomail.ErrConfig, cfg.QuoteSource)
}

func newMailer(cfg *foliomail.Config) *mail.Transport {
	return &mail.Transport{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.From,
		Password: cfg.Password,
		To:       cfg.To,
		StartTLS: cfg.StartTLS,
	}
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
