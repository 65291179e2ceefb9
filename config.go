package foliomail

import (
	"fmt"
	"strings"
)

// Config is the fully-populated configuration value consumed by the
// pipeline. The core never reads environment variables or global state; the
// cmd layer is responsible for populating and validating a Config.
type Config struct {
	// Spreadsheet source.
	SheetID          string // spreadsheet identifier (from the sheet URL)
	SheetRange       string // A1-style range, e.g. "Portfolio Holdings!A1:Z100"
	SheetMode        string // value-rendering mode: formatted, unformatted or formula
	ClientSecretFile string // OAuth client secret JSON, needed only for the full flow
	TokenCacheFile   string // cached credential record

	// Market data source.
	QuoteSource string // "eodhd" or "yahoo"
	EODHDKey    string // api token for the eodhd source

	// Mail transport.
	SMTPHost string
	SMTPPort int
	From     string
	Password string
	To       []string
	StartTLS bool // true: plaintext connect then STARTTLS upgrade; false: implicit TLS
}

// Validate checks that every required setting is present and reports all
// missing ones at once, so a misconfigured deployment is fixed in one pass.
func (c *Config) Validate() error {
	var missing []string
	if c.SheetID == "" {
		missing = append(missing, "sheet id")
	}
	if c.SheetRange == "" {
		missing = append(missing, "sheet range")
	}
	if c.From == "" {
		missing = append(missing, "sender address")
	}
	if c.Password == "" {
		missing = append(missing, "sender password")
	}
	if len(c.To) == 0 {
		missing = append(missing, "recipient address")
	}
	if c.SMTPHost == "" {
		missing = append(missing, "smtp host")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfig, strings.Join(missing, ", "))
	}
	return nil
}
