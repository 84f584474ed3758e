// Package alert implements the transient notification store behind toasts:
// a Store that owns the live alerts and expires non-dismissible ones after a
// delay, and a single-slot Bridge that lets code outside the UI tree raise
// alerts without holding the Store.
package alert

import "time"

// DefaultDismissDelay is how long a non-dismissible alert stays visible.
const DefaultDismissDelay = 5 * time.Second

// Alert is one live notification. Consumers treat it as read-only; the Store
// hands out copies.
type Alert struct {
	ID          string
	Message     string
	Variant     Variant
	Dismissible bool
	Position    Position
	CreatedAt   time.Time
	// ExpiresAt is when the auto-dismiss timer fires. Zero for dismissible alerts.
	ExpiresAt time.Time
}

// Groups partitions the live alerts by corner. Every Position is present as
// a key; each slice is in insertion order.
type Groups map[Position][]Alert

// Len returns the total number of alerts across all groups.
func (g Groups) Len() int {
	n := 0
	for _, alerts := range g {
		n += len(alerts)
	}
	return n
}

func groupAlerts(alerts []Alert) Groups {
	groups := make(Groups, numPositions)
	for _, p := range Positions() {
		groups[p] = []Alert{}
	}
	for _, a := range alerts {
		groups[a.Position] = append(groups[a.Position], a)
	}
	return groups
}
