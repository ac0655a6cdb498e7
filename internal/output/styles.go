package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for human output. Every style is
// plain when color is off.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
}

// ANSI palette indexes.
const (
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorBlue   = "12"
	colorCyan   = "14"
)

func newStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error: plain, Success: plain, Warning: plain, Bold: plain,
			Title: plain, Muted: plain, Key: plain,
		}
	}
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return &Styles{
		Error:   fg(colorRed).Bold(true),
		Success: fg(colorGreen),
		Warning: fg(colorYellow),
		Bold:    lipgloss.NewStyle().Bold(true),
		Title:   fg(colorBlue).Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Key:     fg(colorCyan),
	}
}

// severityLabel renders a check severity padded to a fixed column, red for
// errors and yellow otherwise.
func (s *Styles) severityLabel(severity string) string {
	label := padRight(severity, len("warning"))
	if severity == "error" {
		return s.Error.Render(label)
	}
	return s.Warning.Render(label)
}
