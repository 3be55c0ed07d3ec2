package report

import (
	"fmt"
	"strconv"
	"strings"
)

const textRule = "------------------------------"

// Text renders the fixed-layout plain-text summary block. The section
// headers, label order, and number formatting are a compatibility surface;
// downstream consumers parse this output.
func (s Summary) Text() string {
	var b strings.Builder
	line := func(label string, n int, p float64) {
		fmt.Fprintf(&b, "%s: %d\n", label, n)
		fmt.Fprintf(&b, "%s %%: %s\n", label, formatPct(p))
	}

	b.WriteString(textRule + "\n")
	b.WriteString("       SUMMARY INFO\n")
	b.WriteString(textRule + "\n")
	line("Total Data", s.Total, s.TotalPct)
	line("Messy Data", s.Messy, s.MessyPct)
	line("Clean Data", s.Clean, s.CleanPct)
	b.WriteString(textRule + "\n")
	b.WriteString("       INVALID INFO\n")
	b.WriteString(textRule + "\n")
	line("Invalid Parameter", s.TotalInvalid, s.TotalInvalidPct)
	line("Clean Parameter", s.CleanInvalid, s.CleanInvalidPct)
	line("Messy Parameter", s.MessyInvalid, s.MessyInvalidPct)
	for _, f := range s.Fields {
		line(f.Label, f.Count, f.Pct)
	}
	b.WriteString(textRule + "\n")
	return b.String()
}

// formatPct prints a rounded percentage with minimal digits but always at
// least one decimal place: 100.0, 33.33, 0.0.
func formatPct(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
