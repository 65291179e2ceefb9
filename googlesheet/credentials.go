// Package googlesheet reads portfolio holdings from a Google spreadsheet,
// owning the whole OAuth credential lifecycle: on-disk caching, expiry
// validation, refresh, and the interactive authorization flow.
package googlesheet

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/foliomail"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ReadonlyScope is the only scope the pipeline ever needs.
const ReadonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

// cacheVersion is bumped whenever the cache record changes shape; a record
// with any other version is treated as "no cached credential".
const cacheVersion = 1

// cachedToken is the versioned on-disk credential record.
type cachedToken struct {
	Version int           `json:"version"`
	Token   *oauth2.Token `json:"token"`
}

// CredentialStore acquires, validates, refreshes and caches the OAuth
// credential for the spreadsheet source.
//
// Authenticate resolves, in order: a valid cached token (no network call);
// an expired cached token with a refresh token (refreshed and re-persisted);
// the full authorization flow from the client secret file. The client secret
// file is required only when refresh is impossible or fails; its absence at
// that point is a fatal configuration error.
type CredentialStore struct {
	ClientSecretFile string
	TokenCacheFile   string
	Scopes           []string // defaults to ReadonlyScope

	// Config overrides the client secret file; tests point its Endpoint at
	// a fake token server.
	Config *oauth2.Config

	// Prompt asks the user to visit the authorization URL and returns the
	// resulting code. Defaults to a stderr/stdin exchange.
	Prompt func(authURL string) (code string, err error)

	token *oauth2.Token
}

// Authenticate is idempotent and safe to call at the start of every run.
func (s *CredentialStore) Authenticate(ctx context.Context) error {
	if s.token.Valid() {
		return nil
	}

	tok := s.loadCache()
	if tok.Valid() {
		s.token = tok
		return nil
	}

	if tok != nil && tok.RefreshToken != "" {
		if cfg, err := s.oauthConfig(); err == nil {
			fresh, rerr := cfg.TokenSource(ctx, tok).Token()
			if rerr == nil {
				// Persist the refreshed token right away so it survives a
				// process restart.
				if werr := s.saveCache(fresh); werr != nil {
					log.Printf("cannot persist refreshed credentials (ignored): %v", werr)
				}
				s.token = fresh
				return nil
			}
			log.Printf("failed to refresh credentials, falling back to authorization: %v", rerr)
		}
	}

	return s.authorize(ctx)
}

// authorize runs the full out-of-band authorization flow and persists the
// resulting credential.
func (s *CredentialStore) authorize(ctx context.Context) error {
	cfg, err := s.oauthConfig()
	if err != nil {
		return err
	}

	prompt := s.Prompt
	if prompt == nil {
		prompt = stdinPrompt
	}
	code, err := prompt(cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	if err != nil {
		return fmt.Errorf("%w: authorization aborted: %v", foliomail.ErrAuth, err)
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: cannot exchange authorization code: %v", foliomail.ErrAuth, err)
	}

	if err := s.saveCache(tok); err != nil {
		log.Printf("cannot persist credentials (ignored): %v", err)
	}
	s.token = tok
	return nil
}

// Token returns the credential once Authenticate succeeded, nil otherwise.
func (s *CredentialStore) Token() *oauth2.Token { return s.token }

// TokenSource returns a source backed by the store's credential, refreshing
// through the OAuth config when one is available.
func (s *CredentialStore) TokenSource(ctx context.Context) oauth2.TokenSource {
	if cfg, err := s.oauthConfig(); err == nil {
		return cfg.TokenSource(ctx, s.token)
	}
	return oauth2.StaticTokenSource(s.token)
}

// oauthConfig returns the OAuth client configuration, loading it from the
// client secret file on first use.
func (s *CredentialStore) oauthConfig() (*oauth2.Config, error) {
	if s.Config != nil {
		return s.Config, nil
	}

	b, err := os.ReadFile(s.ClientSecretFile)
	if err != nil {
		return nil, fmt.Errorf("%w: client secret file %q not found; download the OAuth client credentials and save them there: %v",
			foliomail.ErrConfig, s.ClientSecretFile, err)
	}

	scopes := s.Scopes
	if len(scopes) == 0 {
		scopes = []string{ReadonlyScope}
	}
	cfg, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse client secret file %q: %v", foliomail.ErrConfig, s.ClientSecretFile, err)
	}
	s.Config = cfg
	return cfg, nil
}

// loadCache reads the on-disk credential record. Any problem (absent file,
// bad JSON, wrong version) means "no cached credential", not an error.
func (s *CredentialStore) loadCache() *oauth2.Token {
	b, err := os.ReadFile(s.TokenCacheFile)
	if err != nil {
		return nil
	}
	var rec cachedToken
	if err := json.Unmarshal(b, &rec); err != nil {
		log.Printf("ignoring unreadable credential cache %q: %v", s.TokenCacheFile, err)
		return nil
	}
	if rec.Version != cacheVersion {
		log.Printf("ignoring credential cache %q with version %d", s.TokenCacheFile, rec.Version)
		return nil
	}
	return rec.Token
}

func (s *CredentialStore) saveCache(tok *oauth2.Token) error {
	b, err := json.Marshal(cachedToken{Version: cacheVersion, Token: tok})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.TokenCacheFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.TokenCacheFile, b, 0o600)
}

func stdinPrompt(authURL string) (string, error) {
	fmt.Fprintf(os.Stderr, "Visit the following URL, authorize the application, then paste the code here:\n%s\n> ", authURL)
	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(code), nil
}
