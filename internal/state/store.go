// Package state owns the single application state and is the only place
// it is mutated. Every successful mutation is persisted in full through a
// store.KV; persistence problems are logged and never surface to callers.
package state

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/catalog"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/codec"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/store"

	"github.com/shopspring/decimal"
)

// DefaultKey is the storage key holding the whole AppState.
const DefaultKey = "event_cost_calculator_v1"

// ErrNoEvent is returned by Edit when there is no current event.
var ErrNoEvent = errors.New("no current event")

// Store holds the application state.
type Store struct {
	mu    sync.Mutex
	state model.AppState

	kv     store.KV
	key    string
	now    func() time.Time
	logger *slog.Logger

	hydrated        bool
	persistFailures int
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New creates a store and hydrates it with a single read from kv. A nil
// kv keeps the state in memory only.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		state:  model.Initial(),
		kv:     kv,
		key:    DefaultKey,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.kv == nil {
		return
	}
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Warn("reading stored state failed", "key", s.key, "error", err)
		return
	}
	if !ok {
		s.logger.Debug("no stored state", "key", s.key)
		return
	}
	loaded, err := codec.UnmarshalState([]byte(raw))
	if err != nil {
		s.logger.Warn("ignoring unreadable stored state", "key", s.key, "error", err)
		return
	}
	loaded.IsFirstVisit = false
	s.state = loaded
	s.hydrated = true
}

// Hydrated reports whether a stored state was adopted at startup.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// State returns a deep copy of the current application state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Current returns a copy of the current event.
func (s *Store) Current() (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentEvent == nil {
		return model.Event{}, false
	}
	return s.state.CurrentEvent.Clone(), true
}

// IsFirstVisit reports whether onboarding should be shown.
func (s *Store) IsFirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsFirstVisit
}

// Total returns the grand total of the current event, zero without one.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentEvent == nil {
		return decimal.Zero
	}
	return s.state.CurrentEvent.Total()
}

// StartNewEvent replaces any current event with a fresh one seeded from
// the template catalog. It is destructive; confirm with the user first.
func (s *Store) StartNewEvent(t model.EventType, customName string, loc model.Location) model.Event {
	ev := model.NewEvent(t, customName, loc, s.now())
	ev.Sections = catalog.DefaultSections(ev.Type, ev.Location)

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	cur := ev.Clone()
	next.CurrentEvent = &cur
	next.IsFirstVisit = false
	s.commit(next)
	return ev
}

// UpdateEvent replaces the current event wholesale and stamps
// LastModified. Derived fields are normalized first; an event that still
// fails validation is logged and dropped, leaving the state unchanged.
func (s *Store) UpdateEvent(e model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.updateLocked(e); err != nil {
		s.logger.Warn("rejected event update", "error", err)
	}
}

func (s *Store) updateLocked(e model.Event) error {
	ev := e.Normalize()
	ms := s.now().UnixMilli()
	if ms < ev.LastModified {
		ms = ev.LastModified
	}
	if s.state.CurrentEvent != nil && ms < s.state.CurrentEvent.LastModified {
		ms = s.state.CurrentEvent.LastModified
	}
	ev.LastModified = ms
	if err := ev.Validate(); err != nil {
		return err
	}

	next := s.state.Clone()
	next.CurrentEvent = &ev
	s.commit(next)
	return nil
}

// Edit applies a copy-on-write edit to the current event and stores the
// result through UpdateEvent. If fn fails, or its result is invalid,
// nothing changes.
func (s *Store) Edit(fn func(model.Event) (model.Event, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentEvent == nil {
		return ErrNoEvent
	}
	next, err := fn(s.state.CurrentEvent.Clone())
	if err != nil {
		return err
	}
	return s.updateLocked(next)
}

// GenerateSaveCode returns the restore code for the whole state, or
// codec.Unencodable if it cannot be produced.
func (s *Store) GenerateSaveCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return codec.Encode(s.state)
}

// LoadEvent replaces the whole state with the one held in code. On any
// decoding failure the state is left untouched and false is returned.
func (s *Store) LoadEvent(code string) bool {
	loaded, err := codec.Decode(code)
	if err != nil {
		s.logger.Info("rejected restore code", "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(loaded)
	return true
}

// ResetApp discards everything but remembers that the user has visited.
func (s *Store) ResetApp() {
	next := model.Initial()
	next.IsFirstVisit = false

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(next)
}

// SetVisited toggles only the onboarding flag.
func (s *Store) SetVisited(visited bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	next.IsFirstVisit = !visited
	s.commit(next)
}

// PersistFailures counts writes that could not be stored.
func (s *Store) PersistFailures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistFailures
}

// commit installs next and persists it. Callers hold s.mu.
func (s *Store) commit(next model.AppState) {
	s.state = next
	s.persist()
}

func (s *Store) persist() {
	if s.kv == nil || s.state.IsFirstVisit {
		return
	}
	b, err := codec.MarshalState(s.state)
	if err == nil {
		err = s.kv.Set(s.key, string(b))
	}
	if err != nil {
		s.persistFailures++
		s.logger.Warn("persisting state failed, continuing in memory", "key", s.key, "error", err)
	}
}
