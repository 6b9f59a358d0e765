// file: internals/features/directory/model/nanny_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NannyAvailable   = "available"
	NannyUnavailable = "unavailable"
	NannyOnLeave     = "on_leave"
)

// IsValidAvailability reports whether s is one of the nanny_availability values.
func IsValidAvailability(s string) bool {
	switch s {
	case NannyAvailable, NannyUnavailable, NannyOnLeave:
		return true
	}
	return false
}

type NannyModel struct {
	NannyID           uuid.UUID `gorm:"column:nanny_id;type:uuid;default:gen_random_uuid();primaryKey" json:"nanny_id"`
	NannyName         string    `gorm:"column:nanny_name;type:varchar(120);not null;uniqueIndex:uq_nannies_name" json:"nanny_name"`
	NannyPhone        *string   `gorm:"column:nanny_phone;type:varchar(32)" json:"nanny_phone,omitempty"`
	NannyAvailability string    `gorm:"column:nanny_availability;type:varchar(16);not null;default:'available';check:nanny_availability IN ('available','unavailable','on_leave');index:idx_nannies_availability" json:"nanny_availability"`

	NannyCreatedAt time.Time      `gorm:"column:nanny_created_at;type:timestamptz;not null;autoCreateTime" json:"nanny_created_at"`
	NannyUpdatedAt time.Time      `gorm:"column:nanny_updated_at;type:timestamptz;not null;autoUpdateTime" json:"nanny_updated_at"`
	NannyDeletedAt gorm.DeletedAt `gorm:"column:nanny_deleted_at;index" json:"-"`
}

func (NannyModel) TableName() string { return "nannies" }
