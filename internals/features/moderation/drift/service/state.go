// file: internals/features/moderation/drift/service/state.go
package service

import "time"

// Notice reports items that arrived since the last acknowledged baseline.
type Notice struct {
	Delta    int64
	Pending  int64
	Baseline int64
	RaisedAt time.Time // first raise since the last acknowledge
}

// State is one subject's drift state. Zero value = unarmed.
type State struct {
	Armed          bool
	Baseline       int64
	LastSeen       int64
	Notice         *Notice
	ObservedAt     time.Time
	AcknowledgedAt time.Time
}

// Observe folds one successful pending-count observation into s.
//
//	unarmed            → armed, baseline = pending, silent
//	pending <= baseline → silent, baseline and notice untouched
//	pending >  baseline → notice with delta against the unchanged baseline
//
// Only Acknowledge moves the baseline.
func Observe(s State, pending int64, now time.Time) (State, bool) {
	s.LastSeen = pending
	s.ObservedAt = now

	if !s.Armed {
		s.Armed = true
		s.Baseline = pending
		return s, false
	}
	if pending <= s.Baseline {
		return s, false
	}

	raisedAt := now
	if s.Notice != nil {
		raisedAt = s.Notice.RaisedAt
	}
	s.Notice = &Notice{
		Delta:    pending - s.Baseline,
		Pending:  pending,
		Baseline: s.Baseline,
		RaisedAt: raisedAt,
	}
	return s, true
}

// Acknowledge resets the baseline to current and clears any notice.
func Acknowledge(s State, current int64, now time.Time) State {
	s.Armed = true
	s.Baseline = current
	s.LastSeen = current
	s.Notice = nil
	s.AcknowledgedAt = now
	return s
}
