package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style

	Ghost       lipgloss.Style
	GhostCursor lipgloss.Style

	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyle() Style {
	ghost := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Faint(true)
	return Style{
		Text:        lipgloss.NewStyle(),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Ghost:       ghost,
		GhostCursor: ghost.Reverse(true),
		StatusBar:   lipgloss.NewStyle().Reverse(true),
		Message:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
