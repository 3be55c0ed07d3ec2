package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette.
var (
	dashTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	dashCard  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	dashGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	dashBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935"))
	dashWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	dashMuted = lipgloss.NewStyle().Faint(true)
)

// Dashboard renders a terminal summary: metric cards, the per-field
// invalid breakdown sorted by count, and the key finding naming the most
// problematic field.
func (s Summary) Dashboard() string {
	var b strings.Builder

	b.WriteString(dashTitle.Render("Data Quality Overview"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Total Records", fmt.Sprintf("%d", s.Total), dashMuted),
		metricCard("Clean Records", fmt.Sprintf("%d (%s%%)", s.Clean, formatPct(s.CleanPct)), dashGood),
		metricCard("Messy Records", fmt.Sprintf("%d (%s%%)", s.Messy, formatPct(s.MessyPct)), dashBad),
	))
	b.WriteString("\n\n")

	b.WriteString(dashTitle.Render("Invalid Data Breakdown"))
	b.WriteString("\n")
	b.WriteString(s.breakdown())

	if top, ok := s.mostProblematic(); ok {
		b.WriteString("\n")
		b.WriteString(dashTitle.Render("Key Findings"))
		b.WriteString("\n")
		finding := fmt.Sprintf("Most common issue: %s (%d, %s%% of invalid parameters)\nRecommendation: focus data-quality effort on %s",
			top.Label, top.Count, formatPct(top.Pct), top.Label)
		b.WriteString(dashCard.Render(finding))
		b.WriteString("\n")
	}
	b.WriteString(dashMuted.Render("run " + s.RunID))
	b.WriteString("\n")
	return b.String()
}

func metricCard(label, value string, style lipgloss.Style) string {
	return dashCard.Render(dashMuted.Render(label) + "\n" + style.Render(value))
}

// breakdown renders the per-field counts as fixed-width bars, highest first.
func (s Summary) breakdown() string {
	fields := append([]FieldStat{}, s.Fields...)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Count > fields[j].Count })

	labelWidth := 0
	maxCount := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.Label); w > labelWidth {
			labelWidth = w
		}
		if f.Count > maxCount {
			maxCount = f.Count
		}
	}

	const barWidth = 24
	var b strings.Builder
	for _, f := range fields {
		bar := 0
		if maxCount > 0 {
			bar = f.Count * barWidth / maxCount
		}
		style := dashWarn
		if f.Count == 0 {
			style = dashMuted
		}
		b.WriteString(fmt.Sprintf("%-*s %s %d (%s%%)\n",
			labelWidth, f.Label,
			style.Render(strings.Repeat("█", bar)+strings.Repeat("░", barWidth-bar)),
			f.Count, formatPct(f.Pct)))
	}
	return b.String()
}

// mostProblematic returns the field with the highest invalid count.
func (s Summary) mostProblematic() (FieldStat, bool) {
	var top FieldStat
	found := false
	for _, f := range s.Fields {
		if f.Count > 0 && (!found || f.Count > top.Count) {
			top = f
			found = true
		}
	}
	return top, found
}
