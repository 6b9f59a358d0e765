// file: internals/features/moderation/applications/dto/application_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/moderation/applications/model"
)

type SubmitApplicationRequest struct {
	ParentName string  `json:"application_parent_name" validate:"required,min=2,max=120"`
	ChildName  string  `json:"application_child_name"  validate:"required,min=2,max=120"`
	Email      string  `json:"application_email"       validate:"required,email,max=160"`
	Phone      *string `json:"application_phone"       validate:"omitempty,max=32"`
	Message    *string `json:"application_message"     validate:"omitempty,max=2000"`
}

func (r *SubmitApplicationRequest) Normalize() {
	r.ParentName = strings.TrimSpace(r.ParentName)
	r.ChildName = strings.TrimSpace(r.ChildName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = trimPtr(r.Phone)
	r.Message = trimPtr(r.Message)
}

func (r SubmitApplicationRequest) ToModel() model.ApplicationModel {
	return model.ApplicationModel{
		ApplicationParentName: r.ParentName,
		ApplicationChildName:  r.ChildName,
		ApplicationEmail:      r.Email,
		ApplicationPhone:      r.Phone,
		ApplicationMessage:    r.Message,
	}
}

type DecideApplicationRequest struct {
	Status string  `json:"application_status"        validate:"required,oneof=approved rejected"`
	Note   *string `json:"application_decision_note" validate:"omitempty,max=1000"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

type ApplicationResponse struct {
	ApplicationID           uuid.UUID  `json:"application_id"`
	ApplicationParentName   string     `json:"application_parent_name"`
	ApplicationChildName    string     `json:"application_child_name"`
	ApplicationEmail        string     `json:"application_email"`
	ApplicationPhone        *string    `json:"application_phone,omitempty"`
	ApplicationMessage      *string    `json:"application_message,omitempty"`
	ApplicationStatus       string     `json:"application_status"`
	ApplicationDecisionNote *string    `json:"application_decision_note,omitempty"`
	ApplicationDecidedBy    *uuid.UUID `json:"application_decided_by,omitempty"`
	ApplicationDecidedAt    *time.Time `json:"application_decided_at,omitempty"`
	ApplicationCreatedAt    time.Time  `json:"application_created_at"`
}

func FromModel(m model.ApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:           m.ApplicationID,
		ApplicationParentName:   m.ApplicationParentName,
		ApplicationChildName:    m.ApplicationChildName,
		ApplicationEmail:        m.ApplicationEmail,
		ApplicationPhone:        m.ApplicationPhone,
		ApplicationMessage:      m.ApplicationMessage,
		ApplicationStatus:       m.ApplicationStatus,
		ApplicationDecisionNote: m.ApplicationDecisionNote,
		ApplicationDecidedBy:    m.ApplicationDecidedBy,
		ApplicationDecidedAt:    m.ApplicationDecidedAt,
		ApplicationCreatedAt:    m.ApplicationCreatedAt,
	}
}

func FromModels(rows []model.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// SubmittedResponse is what the public form gets back; no moderation fields.
type SubmittedResponse struct {
	ApplicationID     uuid.UUID `json:"application_id"`
	ApplicationStatus string    `json:"application_status"`
}
