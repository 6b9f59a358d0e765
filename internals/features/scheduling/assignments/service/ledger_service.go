// file: internals/features/scheduling/assignments/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/assignments/repository"
)

// DirectoryChecker answers whether referenced children/nannies exist.
type DirectoryChecker interface {
	ChildExists(ctx context.Context, id uuid.UUID) (bool, error)
	NannyExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// LedgerService owns create/update/delete of day bookings.
// It keeps no cache; callers reload the affected range after a write.
type LedgerService struct {
	Store     repository.Store
	Directory DirectoryChecker
}

func NewLedgerService(store repository.Store, dir DirectoryChecker) *LedgerService {
	return &LedgerService{Store: store, Directory: dir}
}

// List returns assignments dated within [from, to]; nil bounds are open.
func (s *LedgerService) List(ctx context.Context, from, to *time.Time, f repository.Filter) ([]model.AssignmentModel, error) {
	if from != nil && to != nil && to.Before(*from) {
		verr := model.NewValidationError()
		verr.Add("to", "must be on or after from")
		return nil, verr
	}
	return s.Store.ListRange(ctx, from, to, f)
}

func (s *LedgerService) Get(ctx context.Context, id uuid.UUID) (model.AssignmentModel, error) {
	return s.Store.Get(ctx, id)
}

// CreateOrUpdate validates, checks the one-booking-per-child-per-day rule (ignoring
// existingID), then writes. A conflict performs no write.
func (s *LedgerService) CreateOrUpdate(ctx context.Context, a model.AssignmentModel, existingID *uuid.UUID) (model.AssignmentModel, error) {
	if err := s.validate(ctx, a, existingID); err != nil {
		return model.AssignmentModel{}, err
	}
	a.SetDay(a.Day())

	exclude := uuid.Nil
	if existingID != nil {
		exclude = *existingID
		if _, err := s.Store.Get(ctx, exclude); err != nil {
			return model.AssignmentModel{}, err
		}
		a.AssignmentID = exclude
	}

	// fast path; the store's unique constraint is the real guard
	rows, err := s.Store.FindByChildAndDate(ctx, a.AssignmentChildID, a.Day())
	if err != nil {
		return model.AssignmentModel{}, fmt.Errorf("conflict scan: %w", err)
	}
	for _, r := range rows {
		if r.AssignmentID != exclude {
			log.Printf("[LEDGER] conflict child=%s date=%s existing=%s", a.AssignmentChildID, a.DayKey(), r.AssignmentID)
			return model.AssignmentModel{}, &model.ConflictError{
				ChildID:    a.AssignmentChildID,
				Date:       a.Day(),
				ExistingID: r.AssignmentID,
			}
		}
	}

	if existingID != nil {
		err = s.Store.Update(ctx, &a)
	} else {
		err = s.Store.Create(ctx, &a)
	}
	if err != nil {
		return model.AssignmentModel{}, err
	}
	log.Printf("[LEDGER] saved assignment=%s child=%s nanny=%s date=%s", a.AssignmentID, a.AssignmentChildID, a.AssignmentNannyID, a.DayKey())
	return a, nil
}

// Delete removes the booking immediately; unknown ids are NotFoundError.
func (s *LedgerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[LEDGER] deleted assignment=%s", id)
	return nil
}

func (s *LedgerService) validate(ctx context.Context, a model.AssignmentModel, existingID *uuid.UUID) error {
	verr := model.NewValidationError()
	if time.Time(a.AssignmentDate).IsZero() {
		verr.Add("assignment_date", "required")
	}
	if a.AssignmentChildID == uuid.Nil {
		verr.Add("assignment_child_id", "required")
	}
	if a.AssignmentNannyID == uuid.Nil {
		verr.Add("assignment_nanny_id", "required")
	}
	if existingID != nil && *existingID == uuid.Nil {
		verr.Add("assignment_id", "must not be empty when updating")
	}
	if !verr.Empty() {
		return verr
	}

	if s.Directory == nil {
		return nil
	}
	ok, err := s.Directory.ChildExists(ctx, a.AssignmentChildID)
	if err != nil {
		return fmt.Errorf("check child: %w", err)
	}
	if !ok {
		verr.Add("assignment_child_id", "unknown or inactive child")
	}
	ok, err = s.Directory.NannyExists(ctx, a.AssignmentNannyID)
	if err != nil {
		return fmt.Errorf("check nanny: %w", err)
	}
	if !ok {
		verr.Add("assignment_nanny_id", "unknown nanny")
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}
