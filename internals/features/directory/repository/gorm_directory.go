// file: internals/features/directory/repository/gorm_directory.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"childcare_backend/internals/features/directory/model"
)

type GormDirectory struct {
	DB *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory { return &GormDirectory{DB: db} }

func (r *GormDirectory) exists(ctx context.Context, m any, col string, id uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(m).Where(col+" = ?", id).Limit(1).Count(&n).Error
	return n > 0, err
}

func (r *GormDirectory) ChildExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.ChildModel{}).
		Where("child_id = ? AND child_is_active = ?", id, true).
		Limit(1).Count(&n).Error
	return n > 0, err
}

func (r *GormDirectory) NannyExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &model.NannyModel{}, "nanny_id", id)
}

// CountChildren counts enrolled (active) children; the attendance denominator.
func (r *GormDirectory) CountChildren(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.ChildModel{}).
		Where("child_is_active = ?", true).
		Count(&n).Error
	return n, err
}

// ActiveChildIDs lists the children that attendance counts against.
func (r *GormDirectory) ActiveChildIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.WithContext(ctx).Model(&model.ChildModel{}).
		Where("child_is_active = ?", true).
		Pluck("child_id", &ids).Error
	return ids, err
}

func (r *GormDirectory) CountActiveNannies(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.NannyModel{}).
		Where("nanny_availability = ?", model.NannyAvailable).
		Count(&n).Error
	return n, err
}

func (r *GormDirectory) ListChildren(ctx context.Context, includeInactive bool) ([]model.ChildModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.ChildModel{})
	if !includeInactive {
		q = q.Where("child_is_active = ?", true)
	}
	var rows []model.ChildModel
	if err := q.Order("child_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormDirectory) ListNannies(ctx context.Context, f NannyFilter) ([]model.NannyModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.NannyModel{})
	if f.Availability != nil {
		q = q.Where("nanny_availability = ?", *f.Availability)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where("nanny_name ILIKE ?", "%"+s+"%")
	}
	var rows []model.NannyModel
	if err := q.Order("nanny_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
