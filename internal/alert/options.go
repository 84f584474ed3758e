package alert

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for timestamps and auto-dismiss timers.
// Tests pass a clockwork.FakeClock to drive expiry.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDismissDelay overrides DefaultDismissDelay. Non-positive values are ignored.
func WithDismissDelay(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithTracer sets the tracer used for lifecycle spans. The default is the
// global otel tracer provider's "uikit/alert" tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Store) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithIDGenerator replaces the UUIDv4 id source. Generated ids that collide
// with a live alert are replaced with a fresh UUID.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func defaultStore() *Store {
	return &Store{
		clock:  clockwork.NewRealClock(),
		delay:  DefaultDismissDelay,
		logger: zerolog.Nop(),
		tracer: otel.Tracer("uikit/alert"),
		newID:  uuid.NewString,
		index:  make(map[string]*entry),
		subs:   make(map[uint64]func(Groups)),
	}
}
