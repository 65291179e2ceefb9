package foliomail

import "errors"

// The pipeline distinguishes three classes of fatal errors. Enrichment and
// transport failures are not represented here: price lookups degrade to a
// zero Quote, and mail delivery reports a boolean.
var (
	// ErrConfig marks a missing required external input: a missing client
	// secret file, an empty sheet result, or unset settings. It aborts the
	// run.
	ErrConfig = errors.New("configuration error")

	// ErrAuth marks a failed credential acquisition with no fallback path
	// left (refresh failed and the authorization flow failed too).
	ErrAuth = errors.New("authentication error")

	// ErrUnauthenticated marks a programming error: a sheet read attempted
	// before Authenticate succeeded.
	ErrUnauthenticated = errors.New("not authenticated: call Authenticate first")
)
