// file: internals/features/moderation/applications/repository/memory_store.go
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/moderation/applications/model"
)

type MemoryStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]model.ApplicationModel
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: map[uuid.UUID]model.ApplicationModel{}, now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, m *model.ApplicationModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ApplicationID == uuid.Nil {
		m.ApplicationID = uuid.New()
	}
	if m.ApplicationStatus == "" {
		m.ApplicationStatus = model.StatusPending
	}
	now := s.now()
	m.ApplicationCreatedAt = now
	m.ApplicationUpdatedAt = now
	s.rows[m.ApplicationID] = *m
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (model.ApplicationModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.rows[id]
	if !ok {
		return m, model.ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) List(_ context.Context, q ListQuery) ([]model.ApplicationModel, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []model.ApplicationModel
	for _, m := range s.rows {
		if q.Status == nil || m.ApplicationStatus == *q.Status {
			all = append(all, m)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ApplicationCreatedAt.Equal(all[j].ApplicationCreatedAt) {
			return all[i].ApplicationID.String() < all[j].ApplicationID.String()
		}
		return all[i].ApplicationCreatedAt.Before(all[j].ApplicationCreatedAt)
	})
	total := int64(len(all))
	if q.Offset >= len(all) {
		return []model.ApplicationModel{}, total, nil
	}
	all = all[q.Offset:]
	if q.Limit > 0 && q.Limit < len(all) {
		all = all[:q.Limit]
	}
	return all, total, nil
}

func (s *MemoryStore) CountByStatus(_ context.Context, status string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, m := range s.rows {
		if m.ApplicationStatus == status {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Decide(_ context.Context, id uuid.UUID, d model.Decision) (model.ApplicationModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.rows[id]
	if !ok {
		return m, model.ErrNotFound
	}
	if m.ApplicationStatus != model.StatusPending {
		return m, model.ErrAlreadyDecided
	}
	at := d.At
	m.ApplicationStatus = d.Status
	m.ApplicationDecisionNote = d.Note
	m.ApplicationDecidedBy = d.By
	m.ApplicationDecidedAt = &at
	m.ApplicationUpdatedAt = s.now()
	s.rows[id] = m
	return m, nil
}
