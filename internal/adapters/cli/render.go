package cli

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/timeline"
)

const (
	barGlyph      = "█"
	maxLabelWidth = 24
	minBarWidth   = 10
)

// ganttRenderer draws a timeline.Chart as fixed-width text. Rows keep chart
// order, so the first task added is the top line.
type ganttRenderer struct {
	width int
	color bool
}

func (r ganttRenderer) render(name string, c timeline.Chart) string {
	var b strings.Builder
	b.WriteString(name + "\n\n")

	if c.Empty() {
		b.WriteString("No tasks to display.\n")
		r.writeLegend(&b, c.Legend)
		return b.String()
	}

	label := 0
	for _, row := range c.Rows {
		label = max(label, utf8.RuneCountInString(row.Task))
	}
	label = min(label, maxLabelWidth)
	barWidth := max(r.width-label-3, minBarWidth)

	span := days(c.Start, c.End)
	for _, row := range c.Rows {
		offset := scale(days(c.Start, row.Start), span, barWidth)
		length := max(scale(days(c.Start, row.Finish), span, barWidth)-offset, 1)
		if offset+length > barWidth {
			offset = barWidth - length
		}

		b.WriteString(pad(truncate(row.Task, label), label))
		b.WriteString(" │")
		b.WriteString(strings.Repeat(" ", offset))
		b.WriteString(r.paint(strings.Repeat(barGlyph, length), row.Color))
		b.WriteString("\n")
	}

	axisStart := c.Start.Format(project.DateLayout)
	axisEnd := c.End.Format(project.DateLayout)
	gap := max(barWidth-len(axisStart)-len(axisEnd), 1)
	b.WriteString(strings.Repeat(" ", label) + " └" + strings.Repeat("─", barWidth) + "\n")
	b.WriteString(strings.Repeat(" ", label+2) + axisStart + strings.Repeat(" ", gap) + axisEnd + "\n")

	r.writeLegend(&b, c.Legend)
	return b.String()
}

func (r ganttRenderer) writeLegend(b *strings.Builder, legend []timeline.LegendEntry) {
	if len(legend) == 0 {
		return
	}
	b.WriteString("\n")
	parts := make([]string, len(legend))
	for i, l := range legend {
		parts[i] = r.paint(barGlyph+barGlyph, l.Color) + " " + l.Stage
	}
	b.WriteString(strings.Join(parts, "  ") + "\n")
}

func (r ganttRenderer) paint(s, hex string) string {
	if !r.color {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

func days(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// scale maps n of total onto [0, width].
func scale(n, total, width int) int {
	if total <= 0 {
		return 0
	}
	return n * width / total
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}
