package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/assignments/repository"
)

// gatedLister blocks its first call until the context is cancelled.
type gatedLister struct {
	started chan struct{}
	calls   int
	rows    []model.AssignmentModel
}

func (g *gatedLister) List(ctx context.Context, _, _ *time.Time, _ repository.Filter) ([]model.AssignmentModel, error) {
	g.calls++
	if g.calls == 1 {
		close(g.started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return g.rows, nil
}

func TestRangeLoaderDiscardsSupersededLoad(t *testing.T) {
	var row model.AssignmentModel
	row.AssignmentID = uuid.New()
	lister := &gatedLister{started: make(chan struct{}), rows: []model.AssignmentModel{row}}
	loader := NewRangeLoader(lister)

	from := time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	type result struct {
		rows []model.AssignmentModel
		err  error
	}
	stale := make(chan result, 1)
	go func() {
		rows, err := loader.Load(context.Background(), "viewer-1", from, to)
		stale <- result{rows, err}
	}()
	<-lister.started

	rows, err := loader.Load(context.Background(), "viewer-1", from.AddDate(0, 1, 0), to.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("newest load: %v", err)
	}
	if len(rows) != 1 || rows[0].AssignmentID != row.AssignmentID {
		t.Fatalf("newest load returned %v", rows)
	}

	select {
	case res := <-stale:
		if !errors.Is(res.err, ErrSuperseded) || res.rows != nil {
			t.Fatalf("stale load should be discarded, got rows=%v err=%v", res.rows, res.err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("stale load was never cancelled")
	}
}

func TestRangeLoaderIndependentViewers(t *testing.T) {
	lister := &gatedLister{started: make(chan struct{})}
	lister.calls = 1 // skip the gate
	loader := NewRangeLoader(lister)
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	if _, err := loader.Load(context.Background(), "a", now, now); err != nil {
		t.Fatalf("viewer a: %v", err)
	}
	if _, err := loader.Load(context.Background(), "b", now, now); err != nil {
		t.Fatalf("viewer b: %v", err)
	}
	if len(loader.inflight) != 0 {
		t.Fatalf("finished loads should be forgotten, have %d", len(loader.inflight))
	}
}
