// file: internals/features/directory/dto/directory_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/directory/model"
	"childcare_backend/internals/helpers/dbtime"
)

type ChildResponse struct {
	ChildID        uuid.UUID `json:"child_id"`
	ChildName      string    `json:"child_name"`
	ChildBirthDate *string   `json:"child_birth_date,omitempty"`
	ChildGuardian  *string   `json:"child_guardian,omitempty"`
	ChildIsActive  bool      `json:"child_is_active"`
}

func FromChild(m model.ChildModel) ChildResponse {
	out := ChildResponse{
		ChildID:       m.ChildID,
		ChildName:     m.ChildName,
		ChildGuardian: m.ChildGuardian,
		ChildIsActive: m.ChildIsActive,
	}
	if m.ChildBirthDate != nil {
		s := dbtime.DayKey(time.Time(*m.ChildBirthDate))
		out.ChildBirthDate = &s
	}
	return out
}

func FromChildren(rows []model.ChildModel) []ChildResponse {
	out := make([]ChildResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromChild(r))
	}
	return out
}

type NannyResponse struct {
	NannyID           uuid.UUID `json:"nanny_id"`
	NannyName         string    `json:"nanny_name"`
	NannyPhone        *string   `json:"nanny_phone,omitempty"`
	NannyAvailability string    `json:"nanny_availability"`
}

func FromNanny(m model.NannyModel) NannyResponse {
	return NannyResponse{
		NannyID:           m.NannyID,
		NannyName:         m.NannyName,
		NannyPhone:        m.NannyPhone,
		NannyAvailability: m.NannyAvailability,
	}
}

func FromNannies(rows []model.NannyModel) []NannyResponse {
	out := make([]NannyResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromNanny(r))
	}
	return out
}
