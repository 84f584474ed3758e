package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"uikit/internal/alert"
)

// AlertsChangedMsg carries the latest position groups from the store.
type AlertsChangedMsg struct {
	Groups alert.Groups
}

// Feed turns Store change notifications into Bubble Tea messages. It keeps
// only the newest state, so a slow event loop never blocks the store.
type Feed struct {
	latest      chan alert.Groups
	done        chan struct{}
	unsubscribe func()
	closeOnce   sync.Once
}

// NewFeed subscribes to s.
func NewFeed(s *alert.Store) *Feed {
	f := &Feed{
		latest: make(chan alert.Groups, 1),
		done:   make(chan struct{}),
	}
	f.unsubscribe = s.Subscribe(f.offer)
	return f
}

// offer replaces any undelivered state with g. The store serializes
// deliveries, so offer never runs concurrently with itself.
func (f *Feed) offer(g alert.Groups) {
	select {
	case <-f.latest:
	default:
	}
	select {
	case f.latest <- g:
	default:
	}
}

// Wait returns a command that blocks until the next state change.
// It yields nil once the feed is closed.
func (f *Feed) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case g := <-f.latest:
			return AlertsChangedMsg{Groups: g}
		case <-f.done:
			return nil
		}
	}
}

// Close unsubscribes and releases any pending Wait.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		f.unsubscribe()
		close(f.done)
	})
}
