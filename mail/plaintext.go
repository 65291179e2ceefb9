package mail

import (
	"regexp"
	"strings"
)

var (
	headRe  = regexp.MustCompile(`(?is)<head.*?</head>`)
	paraRe  = regexp.MustCompile(`(?i)</p>`)
	breakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	runRe   = regexp.MustCompile(`\n{3,}`)
)

// PlainText derives a plain-text fallback from an HTML body: paragraph ends
// become blank lines, line breaks become newlines, every remaining tag is
// stripped, and newline runs are collapsed.
func PlainText(html string) string {
	s := headRe.ReplaceAllString(html, "")
	s = paraRe.ReplaceAllString(s, "\n\n")
	s = breakRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = runRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
