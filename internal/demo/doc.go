// Package demo builds the data types report: sample values of every
// primitive kind, the conversions between them, and two constants.
//
// Build assembles a report.Report from fixed literals. The only inputs that
// vary between runs are the wall clock (the date/time section) and the
// locale used for labels. Everything else is deterministic.
//
// Labels are looked up in a golang.org/x/text message catalog, so the same
// report can be produced in English or Chinese. Numeric values are never
// localized; ranges in notes are printed with locale digit grouping and
// dates use a per-locale layout.
package demo
