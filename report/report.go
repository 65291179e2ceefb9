// Package report renders a portfolio snapshot into a report document: a
// markdown-derived plain-text body, an HTML body suitable for email clients,
// and the references of the images it embeds. Rendering is a pure function
// of its inputs.
package report

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/etnz/foliomail"
	md "github.com/nao1215/markdown"
)

// TopHoldings caps the holdings table; any remainder is silently truncated.
const TopHoldings = 10

// EmbedChart is the stable embed identifier of the performance chart image.
const EmbedChart = "chart"

// Renderer renders snapshots into report documents.
type Renderer struct {
	// Date is the report date shown in the header and the subject; the zero
	// value means "now".
	Date time.Time

	// ChartPath optionally embeds a performance chart image. The chart
	// section is included if and only if this is set.
	ChartPath string
}

// Render builds the report document for the snapshot.
func (r *Renderer) Render(s *foliomail.Snapshot) foliomail.Document {
	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}

	body := r.markdown(s, date)
	doc := foliomail.Document{
		Subject: "Daily Portfolio Summary - " + date.Format("January 2, 2006"),
		Text:    stripSpans(body),
		HTML:    toHTML(body),
	}
	if r.ChartPath != "" {
		doc.Images = []foliomail.Inline{{ID: EmbedChart, Path: r.ChartPath}}
	}
	return doc
}

// markdown builds the report body. Sign classes are carried as raw inline
// spans so they survive the markdown-to-HTML conversion.
func (r *Renderer) markdown(s *foliomail.Snapshot, date time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	doc.PlainText(date.Format("January 2, 2006"))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Portfolio Value"),
			md.Bold(s.TotalValue.String()),
		},
		Rows: [][]string{
			{"Daily Change", span(s.DailyChange.Class(), change(s.DailyChange, s.DailyChangePct))},
			{"Total Return", change(s.TotalReturn, s.TotalReturnPct)},
		},
	})

	if len(s.Holdings) > 0 {
		doc.H2("Top Holdings")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{
				"Ticker",
				"Quantity",
				"Value",
				"% Change",
			},
		}
		for i, h := range s.Holdings {
			if i == TopHoldings {
				break
			}
			table.Rows = append(table.Rows, []string{
				md.Bold(h.Ticker),
				h.Quantity.Commas(),
				h.Value.String(),
				span(h.PctChange.Class(), h.PctChange.SignedString()),
			})
		}
		doc.Table(table)
	}

	if r.ChartPath != "" {
		doc.H2("Performance Chart")
		doc.PlainText(fmt.Sprintf("![Performance Chart](cid:%s)", EmbedChart))
	}

	doc.HorizontalRule()
	doc.PlainText(md.Italic("This is an automated report from your portfolio reporting pipeline."))

	return doc.String()
}

// change renders a monetary change with its percentage, "-" when flat.
func change(v foliomail.Money, p foliomail.Percent) string {
	if v.IsZero() && p.Equal(0) {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", v.SignedString(), p.SignedString())
}

func span(class, s string) string {
	return fmt.Sprintf(`<span class="%s">%s</span>`, class, s)
}

var spanRe = regexp.MustCompile(`</?span[^>]*>`)

// stripSpans removes the sign-class spans, leaving readable plain text.
func stripSpans(s string) string {
	return spanRe.ReplaceAllString(s, "")
}
