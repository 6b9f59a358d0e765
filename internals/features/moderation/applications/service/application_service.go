// file: internals/features/moderation/applications/service/application_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/moderation/applications/model"
	"childcare_backend/internals/features/moderation/applications/repository"
)

// DriftSubject names the pending-applications queue in the drift tracker.
const DriftSubject = "applications"

type ApplicationService struct {
	Store repository.Store
	Now   func() time.Time
}

func NewApplicationService(store repository.Store) *ApplicationService {
	return &ApplicationService{Store: store, Now: time.Now}
}

func (s *ApplicationService) Submit(ctx context.Context, m model.ApplicationModel) (model.ApplicationModel, error) {
	m.ApplicationID = uuid.Nil
	m.ApplicationStatus = model.StatusPending
	m.ApplicationDecisionNote, m.ApplicationDecidedBy, m.ApplicationDecidedAt = nil, nil, nil
	if err := s.Store.Create(ctx, &m); err != nil {
		return model.ApplicationModel{}, fmt.Errorf("create application: %w", err)
	}
	log.Printf("[APPLICATION] submitted id=%s", m.ApplicationID)
	return m, nil
}

func (s *ApplicationService) List(ctx context.Context, q repository.ListQuery) ([]model.ApplicationModel, int64, error) {
	return s.Store.List(ctx, q)
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (model.ApplicationModel, error) {
	return s.Store.Get(ctx, id)
}

// Decide approves or rejects a pending application.
func (s *ApplicationService) Decide(ctx context.Context, id uuid.UUID, status string, note *string, by *uuid.UUID) (model.ApplicationModel, error) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return model.ApplicationModel{}, fmt.Errorf("invalid decision %q", status)
	}
	m, err := s.Store.Decide(ctx, id, model.Decision{Status: status, Note: note, By: by, At: s.Now()})
	if err != nil {
		return m, err
	}
	log.Printf("[APPLICATION] decided id=%s status=%s", id, status)
	return m, nil
}

// PendingCount feeds the drift tracker.
func (s *ApplicationService) PendingCount(ctx context.Context) (int64, error) {
	return s.Store.CountByStatus(ctx, model.StatusPending)
}
