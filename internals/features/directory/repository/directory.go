// file: internals/features/directory/repository/directory.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"childcare_backend/internals/features/directory/model"
)

type NannyFilter struct {
	Availability *string
	Search       string // name ILIKE
}

// Directory is everything the scheduling side needs about children and nannies.
type Directory interface {
	// ChildExists is true only for active children; inactive ones cannot be booked.
	ChildExists(ctx context.Context, id uuid.UUID) (bool, error)
	NannyExists(ctx context.Context, id uuid.UUID) (bool, error)
	CountChildren(ctx context.Context) (int64, error)
	ActiveChildIDs(ctx context.Context) ([]uuid.UUID, error)
	CountActiveNannies(ctx context.Context) (int64, error)

	ListChildren(ctx context.Context, includeInactive bool) ([]model.ChildModel, error)
	ListNannies(ctx context.Context, f NannyFilter) ([]model.NannyModel, error)
}
