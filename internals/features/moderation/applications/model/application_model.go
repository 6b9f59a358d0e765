// file: internals/features/moderation/applications/model/application_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyDecided = errors.New("application already decided")
)

// ApplicationModel is a membership request waiting in the moderation queue.
type ApplicationModel struct {
	ApplicationID uuid.UUID `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`

	ApplicationParentName string  `gorm:"column:application_parent_name;type:varchar(120);not null" json:"application_parent_name"`
	ApplicationChildName  string  `gorm:"column:application_child_name;type:varchar(120);not null" json:"application_child_name"`
	ApplicationEmail      string  `gorm:"column:application_email;type:varchar(160);not null;index:idx_applications_email" json:"application_email"`
	ApplicationPhone      *string `gorm:"column:application_phone;type:varchar(32)" json:"application_phone,omitempty"`
	ApplicationMessage    *string `gorm:"column:application_message;type:text" json:"application_message,omitempty"`

	ApplicationStatus       string     `gorm:"column:application_status;type:varchar(16);not null;default:'pending';check:application_status IN ('pending','approved','rejected');index:idx_applications_status" json:"application_status"`
	ApplicationDecisionNote *string    `gorm:"column:application_decision_note;type:text" json:"application_decision_note,omitempty"`
	ApplicationDecidedBy    *uuid.UUID `gorm:"column:application_decided_by;type:uuid" json:"application_decided_by,omitempty"`
	ApplicationDecidedAt    *time.Time `gorm:"column:application_decided_at;type:timestamptz" json:"application_decided_at,omitempty"`

	ApplicationCreatedAt time.Time      `gorm:"column:application_created_at;type:timestamptz;not null;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt time.Time      `gorm:"column:application_updated_at;type:timestamptz;not null;autoUpdateTime" json:"application_updated_at"`
	ApplicationDeletedAt gorm.DeletedAt `gorm:"column:application_deleted_at;index" json:"-"`
}

func (ApplicationModel) TableName() string { return "applications" }

// Decision is the moderator's verdict on a pending application.
type Decision struct {
	Status string
	Note   *string
	By     *uuid.UUID
	At     time.Time
}
