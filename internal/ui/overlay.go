package ui

import tea "github.com/charmbracelet/bubbletea"

// OverlayStack holds modal views; the topmost receives input first.
type OverlayStack struct {
	stack []View
}

// Push adds v on top.
func (s *OverlayStack) Push(v View) {
	s.stack = append(s.stack, v)
}

// Pop removes the top overlay. Returns false when the stack is empty.
func (s *OverlayStack) Pop() (View, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (View, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of overlays.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top overlay and stores the returned view.
// The second result is false when there is no overlay to receive msg.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := len(s.stack) - 1
	v, cmd := s.stack[top].Update(msg)
	s.stack[top] = v
	return cmd, true
}
