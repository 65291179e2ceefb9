package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// authCmd runs the credential acquisition standalone, so the interactive
// authorization flow can be completed once before scheduling reports.
type authCmd struct{}

func (*authCmd) Name() string     { return "auth" }
func (*authCmd) Synopsis() string { return "acquire and cache the spreadsheet credential" }
func (*authCmd) Usage() string {
	return `foliomail auth

  Loads the cached credential, refreshing or running the authorization flow
  as needed, and persists the result for subsequent runs.
`
}

func (*authCmd) SetFlags(_ *flag.FlagSet) {}

func (*authCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store := newCredentialStore(cfg)
	if err := store.Authenticate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Authenticated; credential cached in %s\n", cfg.TokenCacheFile)
	return subcommands.ExitSuccess
}
