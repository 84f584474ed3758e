package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of AlertsView. It implements help.KeyMap.
type KeyMap struct {
	Info     key.Binding
	Success  key.Binding
	Warning  key.Binding
	Error    key.Binding
	Upload   key.Binding
	Compose  key.Binding
	Position key.Binding
	Sticky   key.Binding
	Dismiss  key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Info:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Success:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Warning:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Error:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Upload:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
		Compose:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new message")),
		Position: key.NewBinding(key.WithKeys("p", "tab"), key.WithHelp("p", "next corner")),
		Sticky:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle dismissible")),
		Dismiss:  key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "dismiss newest")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Compose, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Info, k.Success, k.Warning, k.Error, k.Upload},
		{k.Compose, k.Position, k.Sticky},
		{k.Dismiss, k.Clear, k.Help, k.Quit},
	}
}
