package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// columnGap separates table columns.
const columnGap = "  "

// Table prints headers and rows as space-aligned columns. Widths are
// measured in terminal cells, so titles with accents or wide glyphs line up.
// Cells beyond the header count are dropped.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	widths := columnWidths(headers, rows)
	p.tableRow(headers, widths, p.styles.Bold.Render)
	for _, row := range rows {
		p.tableRow(row, widths, nil)
	}
}

// tableRow pads each cell to its column and applies render, when set.
func (p *Printer) tableRow(cells []string, widths []int, render func(...string) string) {
	n := min(len(cells), len(widths))
	padded := make([]string, n)
	for i := range n {
		padded[i] = padRight(cells[i], widths[i])
		if render != nil {
			padded[i] = render(padded[i])
		}
	}
	mustWrite(fmt.Fprintln(p.w, strings.Join(padded, columnGap)))
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range min(len(row), len(widths)) {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

// Section prints a blank line, then title underlined to its display width.
func (p *Printer) Section(title string) {
	underline := strings.Repeat("─", lipgloss.Width(title))
	mustWrite(fmt.Fprintf(p.w, "\n%s\n%s\n", p.styles.Title.Render(title), p.styles.Muted.Render(underline)))
}

// KeyValue prints "key: value".
func (p *Printer) KeyValue(key, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// Issue prints one check finding as "severity  path: message". An empty path
// is omitted. JSON callers encode issues themselves.
func (p *Printer) Issue(severity, path, message string) {
	label := p.styles.severityLabel(severity)
	if path == "" {
		mustWrite(fmt.Fprintf(p.w, "%s  %s\n", label, message))
		return
	}
	mustWrite(fmt.Fprintf(p.w, "%s  %s: %s\n", label, p.styles.Bold.Render(path), message))
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
