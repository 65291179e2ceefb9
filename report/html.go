package report

import (
	"bytes"
	_ "embed"
	"html/template"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed shell.html
var shellHTML string

var shellTmpl = template.Must(template.New("shell").Parse(shellHTML))

// markdownConverter turns the report markdown into HTML. Tables need GFM;
// unsafe rendering keeps the sign-class spans and the cid image reference.
var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

// toHTML converts the markdown body and wraps it in the styled HTML shell.
func toHTML(markdown string) string {
	var body bytes.Buffer
	if err := markdownConverter.Convert([]byte(markdown), &body); err != nil {
		log.Printf("cannot convert report markdown (falling back to raw): %v", err)
		return markdown
	}

	var out bytes.Buffer
	data := struct{ Body template.HTML }{Body: template.HTML(body.String())}
	if err := shellTmpl.Execute(&out, data); err != nil {
		log.Printf("cannot render report shell (falling back to bare body): %v", err)
		return body.String()
	}
	return out.String()
}
