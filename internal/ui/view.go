package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: an Elm-style model hosted by a parent
// model or pushed as an overlay.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
