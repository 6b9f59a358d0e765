// file: internals/features/moderation/drift/service/tracker.go
package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CountSource is the one thing a subject exposes: how many items are pending now.
type CountSource interface {
	PendingCount(ctx context.Context) (int64, error)
}

type CountFunc func(ctx context.Context) (int64, error)

func (f CountFunc) PendingCount(ctx context.Context) (int64, error) { return f(ctx) }

type subject struct {
	mu      sync.Mutex // serializes state mutation for this subject
	source  CountSource
	state   State
	lastErr error
}

// Status is a read-only copy of a subject for display.
type Status struct {
	Subject   string
	State     State
	LastError error
}

// Tracker owns one State per subject. Overlapping observations of the same subject
// share a single in-flight fetch; observe and acknowledge never interleave.
type Tracker struct {
	Clock Clock

	mu       sync.RWMutex
	subjects map[string]*subject
	group    singleflight.Group
}

func NewTracker(clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Tracker{Clock: clock, subjects: map[string]*subject{}}
}

// Register adds a subject; registering an existing name swaps its source and keeps state.
func (t *Tracker) Register(name string, src CountSource) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.subjects[name]; ok {
		s.mu.Lock()
		s.source = src
		s.mu.Unlock()
		return
	}
	t.subjects[name] = &subject{source: src}
}

func (t *Tracker) Subjects() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.subjects))
	for name := range t.subjects {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t *Tracker) lookup(name string) (*subject, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.subjects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSubject, name)
	}
	return s, nil
}

// Observe runs one observation and reports whether it raised a notice.
// Failures are logged as *TransientObservationError and never touch state.
func (t *Tracker) Observe(ctx context.Context, name string) bool {
	raised, err := t.observe(ctx, name)
	if err != nil {
		log.Printf("[DRIFT] %v", err)
		return false
	}
	return raised
}

func (t *Tracker) observe(ctx context.Context, name string) (bool, error) {
	s, err := t.lookup(name)
	if err != nil {
		return false, &TransientObservationError{Subject: name, Err: err}
	}

	v, err, _ := t.group.Do(name, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		n, err := s.source.PendingCount(ctx)
		if err == nil && n < 0 {
			err = fmt.Errorf("negative pending count %d", n)
		}
		if err != nil {
			s.lastErr = err
			return false, &TransientObservationError{Subject: name, Err: err}
		}
		s.lastErr = nil

		next, raised := Observe(s.state, n, t.Clock.Now())
		wasArmed := s.state.Armed
		s.state = next
		switch {
		case !wasArmed:
			log.Printf("[DRIFT] %s armed baseline=%d", name, next.Baseline)
		case raised:
			log.Printf("[DRIFT] %s notice delta=%d pending=%d baseline=%d", name, next.Notice.Delta, n, next.Baseline)
		}
		return raised, nil
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Acknowledge moves the baseline to the current pending count and clears the notice.
// When the fresh count cannot be fetched an armed subject falls back to the last seen count.
func (t *Tracker) Acknowledge(ctx context.Context, name string) (State, error) {
	s, err := t.lookup(name)
	if err != nil {
		return State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.LastSeen
	n, err := s.source.PendingCount(ctx)
	if err == nil && n < 0 {
		err = fmt.Errorf("negative pending count %d", n)
	}
	switch {
	case err == nil:
		current = n
	case !s.state.Armed:
		// nothing seen yet, so there is no count to fall back to
		s.lastErr = err
		log.Printf("[DRIFT] %s ack skipped: not armed and fresh count unavailable (%v)", name, err)
		return s.state, &TransientObservationError{Subject: name, Err: err}
	default:
		log.Printf("[DRIFT] %s ack: fresh count unavailable (%v), using last seen=%d", name, err, current)
	}
	s.state = Acknowledge(s.state, current, t.Clock.Now())
	log.Printf("[DRIFT] %s acknowledged baseline=%d", name, current)
	return s.state, nil
}

// AcknowledgeSubject is Acknowledge for callers that only care about failure.
func (t *Tracker) AcknowledgeSubject(ctx context.Context, name string) error {
	_, err := t.Acknowledge(ctx, name)
	return err
}

func (t *Tracker) Status(name string) (Status, error) {
	s, err := t.lookup(name)
	if err != nil {
		return Status{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Subject: name, State: s.state, LastError: s.lastErr}, nil
}

// Statuses lists every subject in name order.
func (t *Tracker) Statuses() []Status {
	names := t.Subjects()
	out := make([]Status, 0, len(names))
	for _, name := range names {
		if st, err := t.Status(name); err == nil {
			out = append(out, st)
		}
	}
	return out
}
