package export

import (
	"strings"

	"github.com/gorewood/md2ms/internal/manuscript"
)

// FormatText renders the manuscript as plain text: title and byline, then
// one line per block with blank lines around section headings, and a closing
// END. Run styles are dropped.
func FormatText(m *manuscript.Manuscript) string {
	var builder strings.Builder

	builder.WriteString(m.Title + "\n")
	if m.Author != "" {
		builder.WriteString("by " + m.Author + "\n")
	}
	builder.WriteString("\n")

	for _, block := range m.Blocks {
		switch block.Kind {
		case manuscript.KindSectionBreak:
			builder.WriteString("\n" + block.Heading + "\n\n")
		default:
			builder.WriteString(block.Text() + "\n")
		}
	}

	builder.WriteString("\nEND\n")
	return builder.String()
}
