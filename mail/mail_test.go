package mail

import (
	"context"
	"net"
	"testing"

	"github.com/etnz/foliomail"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraph then break",
			html: "<p>Hello</p><br>World",
			want: "Hello\n\nWorld",
		},
		{
			name: "head is dropped entirely",
			html: "<html><head><style>h1 { color: red; }</style></head><body><h1>Title</h1></body></html>",
			want: "Title",
		},
		{
			name: "self closing break",
			html: "line one<br/>line two<br />line three",
			want: "line one\nline two\nline three",
		},
		{
			name: "nested markup",
			html: "<p>Total: <strong>$2,250.00</strong></p><p><em>automated report</em></p>",
			want: "Total: $2,250.00\n\nautomated report",
		},
		{
			name: "newline runs collapse",
			html: "<p>a</p><p></p><p>b</p>",
			want: "a\n\nb",
		},
		{
			name: "already plain",
			html: "no markup here",
			want: "no markup here",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlainText(tc.html); got != tc.want {
				t.Errorf("PlainText(%q) = %q, want %q", tc.html, got, tc.want)
			}
		})
	}
}

// closedPort returns a port that was listening a moment ago and is not
// anymore.
func closedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return port
}

func TestSend_TransportFailureReturnsFalse(t *testing.T) {
	tr := &Transport{
		Host:     "127.0.0.1",
		Port:     closedPort(t),
		From:     "reporter@example.com",
		Password: "app-password",
		To:       []string{"holder@example.com"},
	}
	doc := foliomail.Document{Subject: "s", Text: "t", HTML: "<p>t</p>"}
	if tr.Send(context.Background(), doc) {
		t.Error("Send = true against a closed port, want false")
	}
}

func TestSend_InvalidSenderReturnsFalse(t *testing.T) {
	tr := &Transport{
		Host: "smtp.example.com",
		Port: 587,
		From: "not an address",
		To:   []string{"holder@example.com"},
	}
	if tr.Send(context.Background(), foliomail.Document{Subject: "s"}) {
		t.Error("Send = true with an invalid sender, want false")
	}
}

func TestSend_InvalidRecipientReturnsFalse(t *testing.T) {
	tr := &Transport{
		Host: "smtp.example.com",
		Port: 587,
		From: "reporter@example.com",
		To:   []string{"not an address"},
	}
	if tr.Send(context.Background(), foliomail.Document{Subject: "s"}) {
		t.Error("Send = true with an invalid recipient, want false")
	}
}
