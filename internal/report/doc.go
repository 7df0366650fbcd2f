// Package report defines the document a demo run produces and checks it
// against an embedded CUE schema before it is emitted in a structured format.
package report
