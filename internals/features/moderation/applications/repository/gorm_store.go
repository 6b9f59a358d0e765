// file: internals/features/moderation/applications/repository/gorm_store.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"childcare_backend/internals/features/moderation/applications/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) Create(ctx context.Context, m *model.ApplicationModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) Get(ctx context.Context, id uuid.UUID) (model.ApplicationModel, error) {
	var m model.ApplicationModel
	err := s.DB.WithContext(ctx).Where("application_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, model.ErrNotFound
	}
	return m, err
}

func (s *GormStore) List(ctx context.Context, q ListQuery) ([]model.ApplicationModel, int64, error) {
	base := func() *gorm.DB {
		tx := s.DB.WithContext(ctx).Model(&model.ApplicationModel{})
		if q.Status != nil {
			tx = tx.Where("application_status = ?", *q.Status)
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.ApplicationModel
	if err := base().Order("application_created_at ASC").Offset(q.Offset).Limit(q.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *GormStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.ApplicationModel{}).
		Where("application_status = ?", status).
		Count(&n).Error
	return n, err
}

func (s *GormStore) Decide(ctx context.Context, id uuid.UUID, d model.Decision) (model.ApplicationModel, error) {
	res := s.DB.WithContext(ctx).Model(&model.ApplicationModel{}).
		Where("application_id = ? AND application_status = ?", id, model.StatusPending).
		Updates(map[string]any{
			"application_status":        d.Status,
			"application_decision_note": d.Note,
			"application_decided_by":    d.By,
			"application_decided_at":    d.At,
		})
	if res.Error != nil {
		return model.ApplicationModel{}, res.Error
	}
	cur, err := s.Get(ctx, id)
	if err != nil {
		return cur, err
	}
	if res.RowsAffected == 0 {
		return cur, model.ErrAlreadyDecided
	}
	return cur, nil
}
