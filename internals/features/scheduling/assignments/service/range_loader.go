// file: internals/features/scheduling/assignments/service/range_loader.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/assignments/repository"
)

// ErrSuperseded: a newer load for the same viewer started before this one finished.
var ErrSuperseded = errors.New("range load superseded by a newer request")

// RangeLister is the slice of LedgerService the loader needs.
type RangeLister interface {
	List(ctx context.Context, from, to *time.Time, f repository.Filter) ([]model.AssignmentModel, error)
}

type loadTicket struct {
	seq    uint64
	cancel context.CancelFunc
}

// RangeLoader keeps at most one live range load per viewer. Starting a new load cancels
// the previous one, and a load that lost the race returns ErrSuperseded instead of rows.
type RangeLoader struct {
	Lister RangeLister

	mu       sync.Mutex
	seq      uint64
	inflight map[string]loadTicket
}

func NewRangeLoader(lister RangeLister) *RangeLoader {
	return &RangeLoader{Lister: lister, inflight: map[string]loadTicket{}}
}

func (l *RangeLoader) Load(ctx context.Context, viewer string, from, to time.Time) ([]model.AssignmentModel, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	l.seq++
	seq := l.seq
	if prev, ok := l.inflight[viewer]; ok {
		prev.cancel()
	}
	l.inflight[viewer] = loadTicket{seq: seq, cancel: cancel}
	l.mu.Unlock()

	rows, err := l.Lister.List(ctx, &from, &to, repository.Filter{})

	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.inflight[viewer]
	if !ok || cur.seq != seq {
		return nil, ErrSuperseded
	}
	delete(l.inflight, viewer)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
