// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/factorshape/freq"
	"github.com/katalvlaran/factorshape/progress"
)

// Chart palette.
var (
	barColor   = lipgloss.Color("#4db6ac")
	titleColor = lipgloss.Color("#8BC34A")
	mutedColor = lipgloss.Color("#6b7a90")
)

// Chart renders a ranked table as a horizontal bar chart.
type Chart struct {
	// BarWidth is the cell width of the longest bar.
	BarWidth int

	title lipgloss.Style
	label lipgloss.Style
	bar   lipgloss.Style
	count lipgloss.Style
}

// NewChart returns a Chart whose longest bar spans barWidth cells
// (minimum 10).
func NewChart(barWidth int) *Chart {
	if barWidth < 10 {
		barWidth = 10
	}

	return &Chart{
		BarWidth: barWidth,
		title:    lipgloss.NewStyle().Bold(true).Foreground(titleColor).MarginBottom(1),
		label:    lipgloss.NewStyle().Align(lipgloss.Right).PaddingRight(1),
		bar:      lipgloss.NewStyle().Foreground(barColor),
		count:    lipgloss.NewStyle().Foreground(mutedColor).PaddingLeft(1),
	}
}

// Title formats the heading for a frame, e.g. "Shapes of 2 … 1,000 (frame 3/448)".
func Title(f progress.Frame) string {
	t := fmt.Sprintf("Shapes of %s … %s", humanize.Comma(int64(f.Start)), humanize.Comma(int64(f.Bound)))
	if f.Total > 1 {
		t += fmt.Sprintf(" (frame %d/%d)", f.Index+1, f.Total)
	}

	return t
}

// Render draws entries under title. Bars scale to the largest count.
func (c *Chart) Render(title string, entries []freq.Entry) string {
	var sb strings.Builder
	sb.WriteString(c.title.Render(title))
	sb.WriteByte('\n')
	if len(entries) == 0 {
		return sb.String()
	}

	labelWidth, maxCount := 0, 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Shape.String()); w > labelWidth {
			labelWidth = w
		}
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	labelStyle := c.label.Width(labelWidth + 1)

	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		n := barCells(e.Count, maxCount, c.BarWidth)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(e.Shape.String()),
			c.bar.Render(strings.Repeat("█", n)),
			c.count.Render(humanize.Comma(int64(e.Count))),
		))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	sb.WriteByte('\n')

	return sb.String()
}

// barCells scales count to [1, width] cells; count > 0 always shows a bar.
func barCells(count, maxCount, width int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	n := count * width / maxCount
	if n < 1 {
		n = 1
	}

	return n
}
