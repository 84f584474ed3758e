package alert

import "github.com/charmbracelet/lipgloss"

// Presentation holds the colours a variant is drawn with. An empty Border
// means the variant has no border.
type Presentation struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
}

// presentations is indexed by Variant. The assertion below stops the build
// when the table is longer or shorter than numVariants. A keyed entry dropped
// from the middle keeps the length and leaves a zero Presentation, which
// TestEveryVariantHasPresentation reports.
var presentations = [...]Presentation{
	VariantInfo:    {Background: "#2563eb", Foreground: "#ffffff"},
	VariantSuccess: {Background: "#16a34a", Foreground: "#ffffff"},
	VariantError:   {Background: "#dc2626", Foreground: "#ffffff"},
	VariantWarning: {Background: "#ca8a04", Foreground: "#ffffff"},
	VariantUpload:  {Background: "#ffffff", Foreground: "#374151", Border: "#000000"},
}

var _ [0]struct{} = [len(presentations) - numVariants]struct{}{}

// Presentation returns the colours for v. Unknown variants use VariantInfo's.
func (v Variant) Presentation() Presentation {
	if !v.Valid() {
		v = VariantInfo
	}
	return presentations[v]
}

// Style returns a lipgloss style for an alert body of variant v.
func (v Variant) Style() lipgloss.Style {
	p := v.Presentation()
	style := lipgloss.NewStyle().
		Background(p.Background).
		Foreground(p.Foreground).
		Padding(0, 1)
	if p.Border != "" {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			BorderBackground(p.Background)
	}
	return style
}
