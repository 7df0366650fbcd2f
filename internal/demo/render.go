package demo

import (
	"bufio"
	"io"

	"github.com/roach88/typedemo/internal/report"
)

// RenderText writes r as human-readable text: a banner, each section as a
// header followed by "label: value (note)" lines and a blank line, then the
// closing line.
func RenderText(w io.Writer, r *report.Report, loc *Locale) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(loc.Banner())
	bw.WriteString("\n\n")

	for _, s := range r.Sections {
		bw.WriteString(loc.T(msgHeader, s.Title))
		bw.WriteString("\n")
		for _, e := range s.Entries {
			bw.WriteString(e.Label)
			bw.WriteString(": ")
			bw.WriteString(e.Value)
			if e.Note != "" {
				bw.WriteString(loc.T(msgNote, e.Note))
			}
			bw.WriteString("\n")
		}
		bw.WriteString("\n")
	}

	bw.WriteString(loc.Closing())
	bw.WriteString("\n")

	return bw.Flush()
}
