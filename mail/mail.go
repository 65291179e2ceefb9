// Package mail delivers rendered report documents over SMTP. The transport
// never raises past its boundary: every failure is logged and reported as a
// boolean, leaving the caller to decide whether it is fatal to the run.
package mail

import (
	"context"
	"log"
	"os"

	"github.com/etnz/foliomail"
	gomail "github.com/wneessen/go-mail"
)

// Transport serializes a report into a multipart email envelope and delivers
// it over an authenticated, encrypted session.
type Transport struct {
	Host     string
	Port     int
	From     string
	Password string
	To       []string

	// StartTLS selects encryption-on-connect: true connects in plaintext on
	// the given port and negotiates a STARTTLS upgrade before
	// authenticating; false establishes an implicit TLS session directly.
	StartTLS bool
}

// Send builds and delivers the envelope: an alternative part holding the
// plain-text and HTML bodies, plus zero or more inline images tagged with
// their embed identifier so the HTML can reference them as cid:<id>. A
// missing image file is logged and skipped rather than failing the send.
func (t *Transport) Send(ctx context.Context, doc foliomail.Document) bool {
	msg := gomail.NewMsg()
	if err := msg.From(t.From); err != nil {
		log.Printf("invalid sender address %q: %v", t.From, err)
		return false
	}
	if err := msg.To(t.To...); err != nil {
		log.Printf("invalid recipient addresses %v: %v", t.To, err)
		return false
	}
	msg.Subject(doc.Subject)

	text := doc.Text
	if text == "" {
		text = PlainText(doc.HTML)
	}
	msg.SetBodyString(gomail.TypeTextPlain, text)
	msg.AddAlternativeString(gomail.TypeTextHTML, doc.HTML)

	for _, img := range doc.Images {
		if _, err := os.Stat(img.Path); err != nil {
			log.Printf("image %q not found, skipping embed %q", img.Path, img.ID)
			continue
		}
		msg.EmbedFile(img.Path, gomail.WithFileContentID(img.ID))
	}

	opts := []gomail.Option{
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.From),
		gomail.WithPassword(t.Password),
	}
	if t.StartTLS {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithSSL())
	}
	// the port policy sets its own default port, so the configured one must
	// come after it
	opts = append(opts, gomail.WithPort(t.Port))

	client, err := gomail.NewClient(t.Host, opts...)
	if err != nil {
		log.Printf("cannot configure mail client for %s:%d: %v", t.Host, t.Port, err)
		return false
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("cannot deliver report to %v via %s:%d: %v", t.To, t.Host, t.Port, err)
		return false
	}
	log.Printf("report delivered to %d recipient(s)", len(t.To))
	return true
}
