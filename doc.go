// Package foliomail implements a daily portfolio reporting pipeline: it
// reads holdings from a remote spreadsheet, enriches them with live market
// prices, aggregates per-security totals, and renders a summary report that
// is delivered by email.
//
// The package holds the domain model (HoldingRow, Quote, Snapshot) and the
// Pipeline that orchestrates the stages. Each external collaborator lives in
// its own subpackage behind a small interface defined here:
//
//   - googlesheet: OAuth credential lifecycle and spreadsheet reading
//   - quote: per-symbol market price lookup with failure isolation
//   - report: pure rendering of a Snapshot into text and HTML bodies
//   - mail: SMTP delivery of the rendered report
//
// The cmd package wires them into the foliomail CLI.
package foliomail
