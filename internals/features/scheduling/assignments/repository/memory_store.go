// file: internals/features/scheduling/assignments/repository/memory_store.go
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/helpers/dbtime"
)

// MemoryStore keeps assignments in process, with the same (child, date) uniqueness
// the postgres index gives GormStore. Used by tests and local runs without a database.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]model.AssignmentModel
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: map[uuid.UUID]model.AssignmentModel{}, now: time.Now}
}

func (s *MemoryStore) ListRange(ctx context.Context, from, to *time.Time, f Filter) ([]model.AssignmentModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lo, hi string
	if from != nil {
		lo = dbtime.DayKey(*from)
	}
	if to != nil {
		hi = dbtime.DayKey(*to)
	}

	out := make([]model.AssignmentModel, 0, len(s.rows))
	for _, r := range s.rows {
		k := r.DayKey()
		if lo != "" && k < lo {
			continue
		}
		if hi != "" && k > hi {
			continue
		}
		if f.ChildID != nil && r.AssignmentChildID != *f.ChildID {
			continue
		}
		if f.NannyID != nil && r.AssignmentNannyID != *f.NannyID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if ki, kj := out[i].DayKey(), out[j].DayKey(); ki != kj {
			return ki < kj
		}
		return out[i].AssignmentCreatedAt.Before(out[j].AssignmentCreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) FindByChildAndDate(ctx context.Context, childID uuid.UUID, date time.Time) ([]model.AssignmentModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matching(childID, dbtime.DayKey(date), uuid.Nil), nil
}

func (s *MemoryStore) matching(childID uuid.UUID, day string, exclude uuid.UUID) []model.AssignmentModel {
	var out []model.AssignmentModel
	for id, r := range s.rows {
		if id == exclude {
			continue
		}
		if r.AssignmentChildID == childID && r.DayKey() == day {
			out = append(out, r)
		}
	}
	return out
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (model.AssignmentModel, error) {
	if err := ctx.Err(); err != nil {
		return model.AssignmentModel{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[id]
	if !ok {
		return model.AssignmentModel{}, &model.NotFoundError{ID: id}
	}
	return r, nil
}

func (s *MemoryStore) Create(ctx context.Context, m *model.AssignmentModel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	if dup := s.matching(m.AssignmentChildID, m.DayKey(), m.AssignmentID); len(dup) > 0 {
		return &model.ConflictError{ChildID: m.AssignmentChildID, Date: m.Day(), ExistingID: dup[0].AssignmentID}
	}
	now := s.now()
	m.AssignmentCreatedAt = now
	m.AssignmentUpdatedAt = now
	s.rows[m.AssignmentID] = *m
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, m *model.AssignmentModel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rows[m.AssignmentID]
	if !ok {
		return &model.NotFoundError{ID: m.AssignmentID}
	}
	if dup := s.matching(m.AssignmentChildID, m.DayKey(), m.AssignmentID); len(dup) > 0 {
		return &model.ConflictError{ChildID: m.AssignmentChildID, Date: m.Day(), ExistingID: dup[0].AssignmentID}
	}
	m.AssignmentCreatedAt = existing.AssignmentCreatedAt
	if m.AssignmentCreatedBy == nil {
		m.AssignmentCreatedBy = existing.AssignmentCreatedBy
	}
	m.AssignmentUpdatedAt = s.now()
	s.rows[m.AssignmentID] = *m
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return &model.NotFoundError{ID: id}
	}
	delete(s.rows, id)
	return nil
}
