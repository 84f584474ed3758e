package alert

import "sync"

// ShowFunc matches Store.Show.
type ShowFunc func(message string, variant Variant, dismissible bool, position Position) string

// Bridge is a single-slot indirection to one Store's Show. It supports exactly
// one registration at a time; the zero value is an empty slot.
type Bridge struct {
	mu    sync.RWMutex
	show  ShowFunc
	token uint64
}

// Register installs fn, replacing any earlier registration. The returned
// function clears the slot if it still holds fn's registration; it is safe
// to call more than once.
func (b *Bridge) Register(fn ShowFunc) (unregister func()) {
	b.mu.Lock()
	b.token++
	token := b.token
	b.show = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.token == token {
				b.show = nil
			}
		})
	}
}

// Registered reports whether a Show function is installed.
func (b *Bridge) Registered() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.show != nil
}

// Dispatch forwards to the registered Show at the default position. With
// nothing registered the call is dropped and "" is returned.
func (b *Bridge) Dispatch(message string, variant Variant, dismissible bool) string {
	return b.DispatchAt(message, variant, dismissible, PositionTopRight)
}

// DispatchAt is Dispatch with an explicit position.
func (b *Bridge) DispatchAt(message string, variant Variant, dismissible bool, position Position) string {
	b.mu.RLock()
	show := b.show
	b.mu.RUnlock()
	if show == nil {
		return ""
	}
	return show(message, variant, dismissible, position)
}

// Default is the process-wide bridge used by the package-level helpers.
var Default = &Bridge{}

// Register installs fn on the Default bridge.
func Register(fn ShowFunc) (unregister func()) {
	return Default.Register(fn)
}

// Dispatch raises an alert through the Default bridge.
func Dispatch(message string, variant Variant, dismissible bool) string {
	return Default.Dispatch(message, variant, dismissible)
}
