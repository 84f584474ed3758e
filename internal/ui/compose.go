package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ComposeSubmittedMsg is sent when the user submits a custom alert message.
type ComposeSubmittedMsg struct {
	Message string
}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}

// ComposeModal asks for the text of a new alert. Enter submits, Esc cancels.
type ComposeModal struct {
	input textinput.Model
}

var _ View = (*ComposeModal)(nil)

// NewComposeModal creates a focused compose modal.
func NewComposeModal() *ComposeModal {
	ti := textinput.New()
	ti.Placeholder = "Profile saved"
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()
	return &ComposeModal{input: ti}
}

// Init implements View.
func (m *ComposeModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ComposeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			return m, func() tea.Msg { return ComposeSubmittedMsg{Message: text} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ComposeModal) View() string {
	content := Styles.Title.Render("New alert") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: show  Esc: cancel")
	return Styles.Box.Render(content)
}
