// file: internals/features/directory/model/child_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChildModel struct {
	ChildID        uuid.UUID       `gorm:"column:child_id;type:uuid;default:gen_random_uuid();primaryKey" json:"child_id"`
	ChildName      string          `gorm:"column:child_name;type:varchar(120);not null;uniqueIndex:uq_children_name_birth,priority:1" json:"child_name"`
	ChildBirthDate *datatypes.Date `gorm:"column:child_birth_date;type:date;uniqueIndex:uq_children_name_birth,priority:2" json:"child_birth_date,omitempty"`
	ChildGuardian  *string         `gorm:"column:child_guardian;type:varchar(120)" json:"child_guardian,omitempty"`
	ChildIsActive  bool            `gorm:"column:child_is_active;not null;index:idx_children_active" json:"child_is_active"`

	ChildCreatedAt time.Time      `gorm:"column:child_created_at;type:timestamptz;not null;autoCreateTime" json:"child_created_at"`
	ChildUpdatedAt time.Time      `gorm:"column:child_updated_at;type:timestamptz;not null;autoUpdateTime" json:"child_updated_at"`
	ChildDeletedAt gorm.DeletedAt `gorm:"column:child_deleted_at;index" json:"-"`
}

func (ChildModel) TableName() string { return "children" }
