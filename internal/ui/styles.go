package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors for the chrome around the alert stacks.
const (
	ColorAccent    = "86"  // titles
	ColorHighlight = "205" // modal borders, selected values
	ColorMuted     = "241" // hints
)

// Styles holds the shared chrome styles. Alert bodies are styled per variant
// by alert.Variant.Style.
var Styles = struct {
	Title     lipgloss.Style
	Box       lipgloss.Style
	Hint      lipgloss.Style
	Value     lipgloss.Style
	Empty     lipgloss.Style
	Dismiss   lipgloss.Style
	StatusBar lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Dismiss: lipgloss.NewStyle().
		Bold(true),
	StatusBar: lipgloss.NewStyle().
		MarginTop(1),
}
