// Package editor holds a resume document in memory during an editing session,
// tracks unsaved-change state, and persists it on a debounce without blocking
// the caller.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/cv-studio/internal/types"
)

// DefaultDebounce is the quiet period after the last mutation before an
// autosave fires.
const DefaultDebounce = 1500 * time.Millisecond

// State is the session's save state.
type State int

const (
	// Clean means no pending mutations since the last successful persist.
	Clean State = iota
	// Dirty means at least one field mutated since the last persist.
	Dirty
	// Saving means a persist operation is in flight.
	Saving
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case Saving:
		return "saving"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PersistFunc writes a document snapshot to storage.
type PersistFunc func(ctx context.Context, doc types.ResumeDocument) error

// Option configures a session.
type Option func(*Session)

// WithDebounce overrides the autosave quiet period.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) { s.debounce = d }
}

// WithErrorHandler installs a callback invoked when a debounced persist
// fails. The session stays Dirty either way; the handler only surfaces the
// error to the user.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Session) { s.onError = fn }
}

// Session wraps one resume document during editing. All mutations go through
// UpdateField, which replaces a single top-level field copy-on-write, so
// snapshots handed to the scorer or renderers are never mutated underneath
// them.
//
// The session guarantees at most one in-flight persist at a time: mutations
// arriving while a save is in flight do not trigger a second concurrent save;
// they schedule exactly one follow-up carrying the latest state.
type Session struct {
	mu       sync.Mutex
	idle     *sync.Cond // signaled when an in-flight persist finishes
	doc      types.ResumeDocument
	state    State
	seq      uint64 // bumped on every mutation
	saved    uint64 // seq captured by the last successful persist
	inFlight bool
	timer    *time.Timer
	closed   bool

	debounce time.Duration
	persist  PersistFunc
	onError  func(error)
}

// NewSession creates a session around an initial document snapshot.
func NewSession(doc types.ResumeDocument, persist PersistFunc, opts ...Option) *Session {
	s := &Session{
		doc:      doc,
		state:    Clean,
		debounce: DefaultDebounce,
		persist:  persist,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Document returns the current document snapshot. The snapshot is safe to
// read concurrently; later mutations produce new values instead of touching
// it.
func (s *Session) Document() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// State returns the current save state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return Saving
	}
	return s.state
}

// UpdateField replaces exactly one top-level document field, marks the
// session Dirty and (re)arms the debounce timer. Invalid updates are rejected
// without changing state.
func (s *Session) UpdateField(field string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("session is closed")
	}

	updated, err := s.doc.Set(field, value)
	if err != nil {
		return err
	}

	s.doc = updated
	s.seq++
	s.state = Dirty
	s.armTimerLocked()
	return nil
}

// armTimerLocked (re)starts the debounce timer. Caller holds s.mu.
func (s *Session) armTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.debounceFired)
}

// debounceFired runs when the quiet period elapses with no new mutation.
func (s *Session) debounceFired() {
	s.mu.Lock()
	if s.closed || s.state != Dirty || s.inFlight {
		// An in-flight save will schedule its own follow-up if needed.
		s.mu.Unlock()
		return
	}
	snapshot := s.doc
	seq := s.seq
	s.inFlight = true
	s.state = Saving
	s.mu.Unlock()

	err := s.persist(context.Background(), snapshot)
	s.finishPersist(seq, err)
}

// finishPersist applies the state transition after a persist attempt. The
// newest state always wins: if a mutation arrived mid-flight the session goes
// back to Dirty and one follow-up save is scheduled with the latest document.
func (s *Session) finishPersist(seq uint64, err error) {
	s.mu.Lock()
	s.inFlight = false
	s.idle.Broadcast()

	switch {
	case err != nil:
		// Stay Dirty; the next natural mutation re-arms the debounce. No
		// automatic retry loop.
		s.state = Dirty
		handler := s.onError
		s.mu.Unlock()
		if handler != nil {
			handler(err)
		}
		return
	case s.seq != seq:
		// Mutated while saving: exactly one follow-up with the newest state.
		s.state = Dirty
		if !s.closed {
			s.armTimerLocked()
		}
		s.mu.Unlock()
		return
	default:
		s.saved = seq
		s.state = Clean
		s.mu.Unlock()
	}
}

// Save persists the current state immediately, regardless of timer state.
// It is used on explicit navigation ("next step" / "finish") to guarantee no
// data loss on exit; a failure is returned to the caller and the session
// stays Dirty so the caller can block navigation until resolved.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("session is closed")
	}
	// Never start a second concurrent persist; wait for the in-flight one.
	for s.inFlight {
		s.idle.Wait()
	}
	if s.state == Clean {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	snapshot := s.doc
	seq := s.seq
	s.inFlight = true
	s.state = Saving
	s.mu.Unlock()

	err := s.persist(ctx, snapshot)
	s.finishPersist(seq, err)
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	return nil
}

// Close stops the session from scheduling further debounced saves, as when
// the editing surface unmounts. It does not flush; call Save first when exit
// must not lose data.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
