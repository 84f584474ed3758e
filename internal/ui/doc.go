// Package ui hosts an alert.Store in a Bubble Tea program.
//
// Pieces:
//   - View: Elm-style unit of composition (Init/Update/View)
//   - OverlayStack: modal views that take input before the base view
//   - Feed: store change notifications as tea messages, newest state only
//   - AlertsView: the four corner stacks, keyboard actions and dismissal
//   - ComposeModal: text entry for a custom alert
package ui
