// file: internals/features/scheduling/assignments/repository/store.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
)

// Filter narrows a range query. Nil fields are ignored.
type Filter struct {
	ChildID *uuid.UUID
	NannyID *uuid.UUID
}

// Store is the ledger's storage collaborator.
//
// Implementations must enforce uniqueness of (child, date) themselves and report a
// violation as *model.ConflictError; unknown ids are *model.NotFoundError.
type Store interface {
	// ListRange returns assignments with from <= date <= to. Nil bounds are open.
	ListRange(ctx context.Context, from, to *time.Time, f Filter) ([]model.AssignmentModel, error)
	FindByChildAndDate(ctx context.Context, childID uuid.UUID, date time.Time) ([]model.AssignmentModel, error)
	Get(ctx context.Context, id uuid.UUID) (model.AssignmentModel, error)
	Create(ctx context.Context, m *model.AssignmentModel) error
	Update(ctx context.Context, m *model.AssignmentModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}
