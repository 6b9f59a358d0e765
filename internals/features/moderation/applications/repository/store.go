// file: internals/features/moderation/applications/repository/store.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"childcare_backend/internals/features/moderation/applications/model"
)

type ListQuery struct {
	Status *string
	Offset int
	Limit  int
}

type Store interface {
	Create(ctx context.Context, m *model.ApplicationModel) error
	Get(ctx context.Context, id uuid.UUID) (model.ApplicationModel, error)
	List(ctx context.Context, q ListQuery) ([]model.ApplicationModel, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// Decide applies d only while the row is still pending.
	Decide(ctx context.Context, id uuid.UUID, d model.Decision) (model.ApplicationModel, error)
}
