// file: internals/features/scheduling/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"childcare_backend/internals/helpers/dbtime"
)

// AssignmentModel books one child with one nanny for one whole day.
// (assignment_child_id, assignment_date) is unique; rows are hard-deleted.
type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`

	AssignmentDate    datatypes.Date `gorm:"column:assignment_date;type:date;not null;uniqueIndex:uq_assignments_child_date,priority:2;index:idx_assignments_date" json:"assignment_date"`
	AssignmentChildID uuid.UUID      `gorm:"column:assignment_child_id;type:uuid;not null;uniqueIndex:uq_assignments_child_date,priority:1" json:"assignment_child_id"`
	AssignmentNannyID uuid.UUID      `gorm:"column:assignment_nanny_id;type:uuid;not null;index:idx_assignments_nanny" json:"assignment_nanny_id"`

	AssignmentNote      *string    `gorm:"column:assignment_note;type:text" json:"assignment_note,omitempty"`
	AssignmentCreatedBy *uuid.UUID `gorm:"column:assignment_created_by;type:uuid" json:"assignment_created_by,omitempty"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;type:timestamptz;not null;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"column:assignment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }

// Day returns the booking date as midnight, dropping any time-of-day noise from the driver.
func (m AssignmentModel) Day() time.Time {
	return dbtime.DateOf(time.Time(m.AssignmentDate))
}

// DayKey is "YYYY-MM-DD" of the booking.
func (m AssignmentModel) DayKey() string {
	return dbtime.DayKey(time.Time(m.AssignmentDate))
}

// SetDay stores d at day granularity.
func (m *AssignmentModel) SetDay(d time.Time) {
	m.AssignmentDate = datatypes.Date(dbtime.DateOf(d))
}
