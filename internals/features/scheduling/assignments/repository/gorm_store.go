// file: internals/features/scheduling/assignments/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/helpers/dbtime"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListRange(ctx context.Context, from, to *time.Time, f Filter) ([]model.AssignmentModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.AssignmentModel{})
	if from != nil {
		q = q.Where("assignment_date >= ?", datatypes.Date(dbtime.DateOf(*from)))
	}
	if to != nil {
		q = q.Where("assignment_date <= ?", datatypes.Date(dbtime.DateOf(*to)))
	}
	if f.ChildID != nil {
		q = q.Where("assignment_child_id = ?", *f.ChildID)
	}
	if f.NannyID != nil {
		q = q.Where("assignment_nanny_id = ?", *f.NannyID)
	}

	var rows []model.AssignmentModel
	if err := q.Order("assignment_date ASC, assignment_created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return rows, nil
}

func (s *GormStore) FindByChildAndDate(ctx context.Context, childID uuid.UUID, date time.Time) ([]model.AssignmentModel, error) {
	return findByChildAndDate(s.DB.WithContext(ctx), childID, date)
}

func findByChildAndDate(tx *gorm.DB, childID uuid.UUID, date time.Time) ([]model.AssignmentModel, error) {
	var rows []model.AssignmentModel
	err := tx.
		Where("assignment_child_id = ? AND assignment_date = ?", childID, datatypes.Date(dbtime.DateOf(date))).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find assignments by child/date: %w", err)
	}
	return rows, nil
}

func (s *GormStore) Get(ctx context.Context, id uuid.UUID) (model.AssignmentModel, error) {
	var m model.AssignmentModel
	err := s.DB.WithContext(ctx).First(&m, "assignment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AssignmentModel{}, &model.NotFoundError{ID: id}
	}
	if err != nil {
		return model.AssignmentModel{}, fmt.Errorf("get assignment: %w", err)
	}
	return m, nil
}

// guardConflict locks the child's rows for that day and rejects any row other than self.
// The unique index still decides when two inserts race past the lock.
func guardConflict(tx *gorm.DB, m *model.AssignmentModel) error {
	var rows []model.AssignmentModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("assignment_child_id = ? AND assignment_date = ?", m.AssignmentChildID, m.AssignmentDate).
		Find(&rows).Error
	if err != nil {
		return fmt.Errorf("lock assignments: %w", err)
	}
	for _, r := range rows {
		if r.AssignmentID != m.AssignmentID {
			return &model.ConflictError{ChildID: m.AssignmentChildID, Date: m.Day(), ExistingID: r.AssignmentID}
		}
	}
	return nil
}

func (s *GormStore) Create(ctx context.Context, m *model.AssignmentModel) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := guardConflict(tx, m); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	return translateWriteError(err, m)
}

func (s *GormStore) Update(ctx context.Context, m *model.AssignmentModel) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AssignmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&existing, "assignment_id = ?", m.AssignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &model.NotFoundError{ID: m.AssignmentID}
			}
			return err
		}
		if err := guardConflict(tx, m); err != nil {
			return err
		}
		m.AssignmentCreatedAt = existing.AssignmentCreatedAt
		if m.AssignmentCreatedBy == nil {
			m.AssignmentCreatedBy = existing.AssignmentCreatedBy
		}
		return tx.Model(&model.AssignmentModel{}).
			Where("assignment_id = ?", m.AssignmentID).
			Updates(updateColumns(m, time.Now())).Error
	})
	return translateWriteError(err, m)
}

// updateColumns stamps m with now so the caller sees the same updated_at as the row.
func updateColumns(m *model.AssignmentModel, now time.Time) map[string]any {
	m.AssignmentUpdatedAt = now
	return map[string]any{
		"assignment_date":       m.AssignmentDate,
		"assignment_child_id":   m.AssignmentChildID,
		"assignment_nanny_id":   m.AssignmentNannyID,
		"assignment_note":       m.AssignmentNote,
		"assignment_updated_at": now,
	}
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.AssignmentModel{}, "assignment_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &model.NotFoundError{ID: id}
	}
	return nil
}

func translateWriteError(err error, m *model.AssignmentModel) error {
	if err == nil {
		return nil
	}
	var conflict *model.ConflictError
	var notFound *model.NotFoundError
	if errors.As(err, &conflict) || errors.As(err, &notFound) {
		return err
	}
	if IsUniqueViolation(err) {
		return &model.ConflictError{ChildID: m.AssignmentChildID, Date: m.Day()}
	}
	return fmt.Errorf("write assignment: %w", err)
}
