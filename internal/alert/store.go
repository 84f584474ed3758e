package alert

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// entry is the store-private record behind an Alert.
type entry struct {
	alert Alert
	timer clockwork.Timer
	gen   uint64 // token of the armed timer; 0 when none is armed
}

// Store owns the live alert collection. All methods are safe for concurrent
// use; auto-dismiss timers fire on the clock's goroutine.
//
// Lookups by id that match nothing are no-ops, never errors.
type Store struct {
	clock  clockwork.Clock
	delay  time.Duration
	logger zerolog.Logger
	tracer trace.Tracer
	newID  func() string

	mu      sync.Mutex
	order   []*entry // insertion order
	index   map[string]*entry
	gen     uint64
	closed  bool
	unmount func()

	subs       map[uint64]func(Groups)
	nextSub    uint64
	version    uint64 // bumped on every state change
	delivered  uint64 // last version handed to subscribers
	delivering bool
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := defaultStore()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DismissDelay returns the auto-dismiss delay applied to non-dismissible alerts.
func (s *Store) DismissDelay() time.Duration {
	return s.delay
}

// Show appends a new alert and returns its id. Non-dismissible alerts are
// removed automatically after DismissDelay. Out-of-range variants and
// positions fall back to VariantInfo and PositionTopRight.
//
// After Close, Show records nothing and returns "".
func (s *Store) Show(message string, variant Variant, dismissible bool, position Position) string {
	if !variant.Valid() {
		variant = VariantInfo
	}
	if !position.Valid() {
		position = PositionTopRight
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ""
	}
	id := s.newID()
	if _, taken := s.index[id]; taken || id == "" {
		id = uuid.NewString()
	}
	e := &entry{alert: Alert{
		ID:          id,
		Message:     message,
		Variant:     variant,
		Dismissible: dismissible,
		Position:    position,
		CreatedAt:   s.clock.Now(),
	}}
	if !dismissible {
		s.armLocked(e)
	}
	s.order = append(s.order, e)
	s.index[id] = e
	s.version++
	s.mu.Unlock()

	s.logger.Debug().
		Str("alert_id", id).
		Str("variant", variant.String()).
		Str("position", position.String()).
		Bool("dismissible", dismissible).
		Msg("Alert shown")
	s.span("alert.show", id,
		attribute.String("uikit.alert.variant", variant.String()),
		attribute.String("uikit.alert.position", position.String()),
		attribute.Bool("uikit.alert.dismissible", dismissible),
	)

	s.publish()
	return id
}

// Update replaces the message, variant and dismissible flag of a live alert.
// The id and position never change.
//
// Flipping dismissible from false to true cancels the pending auto-dismiss;
// flipping it from true to false arms a fresh timer of the full delay. When
// the flag is unchanged, an armed timer keeps its original deadline.
func (s *Store) Update(id, message string, variant Variant, dismissible bool) {
	if !variant.Valid() {
		variant = VariantInfo
	}

	s.mu.Lock()
	e, ok := s.index[id]
	if !ok || s.closed {
		s.mu.Unlock()
		return
	}
	was := e.alert.Dismissible
	e.alert.Message = message
	e.alert.Variant = variant
	e.alert.Dismissible = dismissible
	switch {
	case was && !dismissible:
		s.armLocked(e)
	case !was && dismissible:
		s.disarmLocked(e)
	}
	s.version++
	s.mu.Unlock()

	s.logger.Debug().
		Str("alert_id", id).
		Str("variant", variant.String()).
		Bool("dismissible", dismissible).
		Msg("Alert updated")
	s.span("alert.update", id,
		attribute.String("uikit.alert.variant", variant.String()),
		attribute.Bool("uikit.alert.dismissible", dismissible),
	)

	s.publish()
}

// Remove deletes the alert with the given id, if it is still live.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if !s.removeLocked(id) {
		s.mu.Unlock()
		return
	}
	s.version++
	s.mu.Unlock()

	s.logger.Debug().Str("alert_id", id).Msg("Alert removed")
	s.span("alert.remove", id)

	s.publish()
}

// expire is the auto-dismiss callback. A timer whose token no longer matches
// the entry (removed, re-armed or cancelled) does nothing.
func (s *Store) expire(id string, gen uint64) {
	s.mu.Lock()
	e, ok := s.index[id]
	if !ok || e.gen != gen || s.closed {
		s.mu.Unlock()
		return
	}
	e.timer = nil
	s.removeLocked(id)
	s.version++
	s.mu.Unlock()

	s.logger.Debug().Str("alert_id", id).Msg("Alert expired")
	s.span("alert.expire", id)

	s.publish()
}

// Clear removes every alert and cancels their timers.
func (s *Store) Clear() {
	s.mu.Lock()
	if len(s.order) == 0 {
		s.mu.Unlock()
		return
	}
	n := s.clearLocked()
	s.version++
	s.mu.Unlock()

	s.logger.Debug().Int("count", n).Msg("Alerts cleared")
	s.publish()
}

// Close tears the store down: timers are cancelled, alerts dropped, the
// bridge registration made by Mount is released and subscribers receive a
// final empty state before being detached. When another delivery is in
// flight, that delivery hands out the empty state and detaches them. Close is
// idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.clearLocked()
	s.version++
	unmount := s.unmount
	s.unmount = nil
	s.mu.Unlock()

	if unmount != nil {
		unmount()
	}
	s.publish()

	s.logger.Debug().Msg("Alert store closed")
}

// Mount installs Show on b. A later Mount replaces the earlier registration;
// Close releases it.
func (s *Store) Mount(b *Bridge) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	previous := s.unmount
	s.unmount = nil
	s.mu.Unlock()

	if previous != nil {
		previous()
	}
	unmount := b.Register(s.Show)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		unmount()
		return
	}
	s.unmount = unmount
	s.mu.Unlock()
}

// Get returns a copy of the alert with the given id.
func (s *Store) Get(id string) (Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.index[id]
	if !ok {
		return Alert{}, false
	}
	return e.alert, true
}

// Len returns the number of live alerts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Alerts returns a snapshot of the live alerts in insertion order.
func (s *Store) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Groups returns the live alerts partitioned by position.
func (s *Store) Groups() Groups {
	return groupAlerts(s.Alerts())
}

// Subscribe registers fn to receive the position groups after every state
// change. Deliveries are serialized and never go backwards in time; when
// changes race, intermediate states may be coalesced into the latest one.
// fn may call back into the Store. Subscribing to a closed Store does nothing.
func (s *Store) Subscribe(fn func(Groups)) (unsubscribe func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	s.nextSub++
	key := s.nextSub
	s.subs[key] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, key)
			s.mu.Unlock()
		})
	}
}

// publish delivers the newest state to subscribers. Only one goroutine
// delivers at a time; others leave their change for it to pick up. Once the
// Store is closed and the final state is out, subscribers are detached.
func (s *Store) publish() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.mu.Unlock()

	// A panicking subscriber must not leave the store stuck in delivery.
	idle := false
	defer func() {
		if !idle {
			s.mu.Lock()
			s.delivering = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if s.delivered >= s.version {
			s.delivering = false
			if s.closed {
				s.subs = make(map[uint64]func(Groups))
			}
			idle = true
			s.mu.Unlock()
			return
		}
		s.delivered = s.version
		groups := groupAlerts(s.snapshotLocked())
		subs := make([]func(Groups), 0, len(s.subs))
		for key := uint64(1); key <= s.nextSub; key++ {
			if fn, ok := s.subs[key]; ok {
				subs = append(subs, fn)
			}
		}
		s.mu.Unlock()

		for _, fn := range subs {
			fn(groups)
		}
	}
}

func (s *Store) snapshotLocked() []Alert {
	out := make([]Alert, len(s.order))
	for i, e := range s.order {
		out[i] = e.alert
	}
	return out
}

// armLocked (re)starts the auto-dismiss timer for e.
func (s *Store) armLocked(e *entry) {
	s.disarmLocked(e)
	s.gen++
	id, gen := e.alert.ID, s.gen
	e.gen = gen
	e.alert.ExpiresAt = s.clock.Now().Add(s.delay)
	e.timer = s.clock.AfterFunc(s.delay, func() { s.expire(id, gen) })
}

func (s *Store) disarmLocked(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen = 0
	e.alert.ExpiresAt = time.Time{}
}

func (s *Store) removeLocked(id string) bool {
	e, ok := s.index[id]
	if !ok {
		return false
	}
	s.disarmLocked(e)
	delete(s.index, id)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Store) clearLocked() int {
	n := len(s.order)
	for _, e := range s.order {
		s.disarmLocked(e)
	}
	s.order = nil
	s.index = make(map[string]*entry)
	return n
}

// span records a zero-length span marking a lifecycle event.
func (s *Store) span(name, id string, attrs ...attribute.KeyValue) {
	_, span := s.tracer.Start(context.Background(), name,
		trace.WithAttributes(append(attrs, attribute.String("uikit.alert.id", id))...),
	)
	span.End()
}
