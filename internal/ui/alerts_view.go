package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uikit/internal/alert"
	"uikit/internal/ui/textutil"
)

const (
	defaultWidth    = 80
	maxToastWidth   = 36
	dismissMarker   = " ×"
	uploadMessage   = "Uploading report.pdf…"
	uploadedMessage = "Upload complete"
)

// sampleMessages is what the per-variant keys raise.
var sampleMessages = map[alert.Variant]string{
	alert.VariantInfo:    "A new version is available",
	alert.VariantSuccess: "Changes saved",
	alert.VariantWarning: "Storage is almost full",
	alert.VariantError:   "Something went wrong",
}

// uploadFinishedMsg completes a simulated upload started with the Upload key.
type uploadFinishedMsg struct {
	ID string
}

// AlertsView hosts the four corner stacks of an alert.Store. It renders from
// the groups delivered through its Feed and calls Store.Remove when the user
// dismisses an alert.
type AlertsView struct {
	Store    *alert.Store
	Feed     *Feed
	Groups   alert.Groups
	Overlays OverlayStack

	// Variant is used for composed messages; Position and Dismissible apply
	// to every alert raised from the keyboard.
	Variant     alert.Variant
	Position    alert.Position
	Dismissible bool

	// UploadDelay is how long the simulated upload runs before its alert is
	// turned into a self-expiring success.
	UploadDelay time.Duration

	keys  KeyMap
	help  help.Model
	width int
}

var _ View = (*AlertsView)(nil)

// NewAlertsView creates a view subscribed to store.
func NewAlertsView(store *alert.Store, variant alert.Variant, position alert.Position) *AlertsView {
	h := help.New()
	h.Styles.ShortKey = Styles.Value
	h.Styles.FullKey = Styles.Value
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.FullDesc = Styles.Hint

	return &AlertsView{
		Store:       store,
		Feed:        NewFeed(store),
		Groups:      store.Groups(),
		Variant:     variant,
		Position:    position,
		UploadDelay: 2 * time.Second,
		keys:        DefaultKeyMap(),
		help:        h,
	}
}

// Init implements View.
func (v *AlertsView) Init() tea.Cmd {
	return v.Feed.Wait()
}

// Update implements View.
func (v *AlertsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case AlertsChangedMsg:
		v.Groups = msg.Groups
		return v, v.Feed.Wait()
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
		return v, nil
	case ComposeSubmittedMsg:
		v.Overlays.Pop()
		v.Store.Show(msg.Message, v.Variant, v.Dismissible, v.Position)
		return v, nil
	case DismissModalMsg:
		v.Overlays.Pop()
		return v, nil
	case uploadFinishedMsg:
		v.Store.Update(msg.ID, uploadedMessage, alert.VariantSuccess, false)
		return v, nil
	case tea.KeyMsg:
		if v.Overlays.Len() > 0 {
			cmd, _ := v.Overlays.UpdateTop(msg)
			return v, cmd
		}
		return v, v.handleKey(msg)
	}

	if cmd, ok := v.Overlays.UpdateTop(msg); ok {
		return v, cmd
	}
	return v, nil
}

func (v *AlertsView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Quit):
		v.Feed.Close()
		return tea.Quit
	case key.Matches(msg, v.keys.Info):
		v.raise(alert.VariantInfo)
	case key.Matches(msg, v.keys.Success):
		v.raise(alert.VariantSuccess)
	case key.Matches(msg, v.keys.Warning):
		v.raise(alert.VariantWarning)
	case key.Matches(msg, v.keys.Error):
		v.raise(alert.VariantError)
	case key.Matches(msg, v.keys.Upload):
		id := v.Store.Show(uploadMessage, alert.VariantUpload, true, v.Position)
		return tea.Tick(v.UploadDelay, func(time.Time) tea.Msg {
			return uploadFinishedMsg{ID: id}
		})
	case key.Matches(msg, v.keys.Compose):
		m := NewComposeModal()
		v.Overlays.Push(m)
		return m.Init()
	case key.Matches(msg, v.keys.Position):
		v.Position = alert.Position((int(v.Position) + 1) % len(alert.Positions()))
	case key.Matches(msg, v.keys.Sticky):
		v.Dismissible = !v.Dismissible
	case key.Matches(msg, v.keys.Dismiss):
		v.DismissNewest()
	case key.Matches(msg, v.keys.Clear):
		v.Store.Clear()
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
	}
	return nil
}

func (v *AlertsView) raise(variant alert.Variant) {
	v.Store.Show(sampleMessages[variant], variant, v.Dismissible, v.Position)
}

// DismissNewest removes the most recently shown dismissible alert. Returns
// false when there is none.
func (v *AlertsView) DismissNewest() bool {
	alerts := v.Store.Alerts()
	for i := len(alerts) - 1; i >= 0; i-- {
		if alerts[i].Dismissible {
			v.Store.Remove(alerts[i].ID)
			return true
		}
	}
	return false
}

// View implements View.
func (v *AlertsView) View() string {
	width := v.width
	if width <= 0 {
		width = defaultWidth
	}
	left := width / 2
	right := width - left

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(left, lipgloss.Left, v.renderGroup(alert.PositionTopLeft)),
		lipgloss.PlaceHorizontal(right, lipgloss.Right, v.renderGroup(alert.PositionTopRight)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Bottom,
		lipgloss.PlaceHorizontal(left, lipgloss.Left, v.renderGroup(alert.PositionBottomLeft)),
		lipgloss.PlaceHorizontal(right, lipgloss.Right, v.renderGroup(alert.PositionBottomRight)),
	)

	middle := ""
	if overlay, ok := v.Overlays.Peek(); ok {
		middle = lipgloss.PlaceHorizontal(width, lipgloss.Center, overlay.View())
	} else if v.Groups.Len() == 0 {
		middle = lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Empty.Render("No alerts"))
	}

	sections := []string{Styles.Title.Render("uikit alerts"), top}
	if middle != "" {
		sections = append(sections, "", middle, "")
	}
	sections = append(sections, bottom, v.statusLine(), v.help.View(v.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *AlertsView) renderGroup(p alert.Position) string {
	group := v.Groups[p]
	if len(group) == 0 {
		return ""
	}
	rows := make([]string, 0, len(group))
	for _, a := range group {
		text := textutil.SingleLine(a.Message)
		limit := maxToastWidth
		if a.Dismissible {
			limit -= textutil.VisualWidth(dismissMarker)
		}
		text = textutil.Truncate(text, limit)
		if a.Dismissible {
			text += Styles.Dismiss.Render(dismissMarker)
		}
		rows = append(rows, a.Variant.Style().Render(text))
	}
	return lipgloss.JoinVertical(alignFor(p), rows...)
}

func alignFor(p alert.Position) lipgloss.Position {
	switch p {
	case alert.PositionTopLeft, alert.PositionBottomLeft:
		return lipgloss.Left
	default:
		return lipgloss.Right
	}
}

func (v *AlertsView) statusLine() string {
	sticky := "no"
	if v.Dismissible {
		sticky = "yes"
	}
	parts := []string{
		Styles.Hint.Render("corner ") + Styles.Value.Render(v.Position.String()),
		Styles.Hint.Render("dismissible ") + Styles.Value.Render(sticky),
		Styles.Hint.Render("live ") + Styles.Value.Render(fmt.Sprintf("%d", v.Groups.Len())),
	}
	return Styles.StatusBar.Render(strings.Join(parts, "  "))
}

// AsTeaModel adapts a View for tea.NewProgram.
func AsTeaModel(v View) tea.Model {
	return viewModel{view: v}
}

type viewModel struct {
	view View
}

func (m viewModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := m.view.Update(msg)
	m.view = v
	return m, cmd
}

func (m viewModel) View() string {
	return m.view.View()
}
