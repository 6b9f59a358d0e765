// file: internals/features/scheduling/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUESTS
   ========================================================= */

// UpsertAssignmentRequest is shared by POST (create) and PUT (update).
type UpsertAssignmentRequest struct {
	AssignmentDate    string  `json:"assignment_date"     validate:"required,datetime=2006-01-02"`
	AssignmentChildID string  `json:"assignment_child_id" validate:"required,uuid"`
	AssignmentNannyID string  `json:"assignment_nanny_id" validate:"required,uuid"`
	AssignmentNote    *string `json:"assignment_note"     validate:"omitempty,max=500"`
}

func (r UpsertAssignmentRequest) ToModel(loc *time.Location) (model.AssignmentModel, error) {
	verr := model.NewValidationError()

	day, err := dbtime.ParseDate(r.AssignmentDate, loc)
	if err != nil {
		verr.Add("assignment_date", err.Error())
	}
	childID, err := uuid.Parse(strings.TrimSpace(r.AssignmentChildID))
	if err != nil {
		verr.Add("assignment_child_id", "invalid uuid")
	}
	nannyID, err := uuid.Parse(strings.TrimSpace(r.AssignmentNannyID))
	if err != nil {
		verr.Add("assignment_nanny_id", "invalid uuid")
	}
	if !verr.Empty() {
		return model.AssignmentModel{}, verr
	}

	m := model.AssignmentModel{
		AssignmentChildID: childID,
		AssignmentNannyID: nannyID,
		AssignmentNote:    trimPtr(r.AssignmentNote),
	}
	m.SetDay(day)
	return m, nil
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

/* =========================================================
   RESPONSE
   ========================================================= */

type AssignmentResponse struct {
	AssignmentID        uuid.UUID  `json:"assignment_id"`
	AssignmentDate      string     `json:"assignment_date"`
	AssignmentChildID   uuid.UUID  `json:"assignment_child_id"`
	AssignmentNannyID   uuid.UUID  `json:"assignment_nanny_id"`
	AssignmentNote      *string    `json:"assignment_note,omitempty"`
	AssignmentCreatedBy *uuid.UUID `json:"assignment_created_by,omitempty"`
	AssignmentCreatedAt time.Time  `json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time  `json:"assignment_updated_at"`
}

func FromModel(m model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:        m.AssignmentID,
		AssignmentDate:      m.DayKey(),
		AssignmentChildID:   m.AssignmentChildID,
		AssignmentNannyID:   m.AssignmentNannyID,
		AssignmentNote:      m.AssignmentNote,
		AssignmentCreatedBy: m.AssignmentCreatedBy,
		AssignmentCreatedAt: m.AssignmentCreatedAt,
		AssignmentUpdatedAt: m.AssignmentUpdatedAt,
	}
}

func FromModels(rows []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// ConflictResponse is the body detail for 409s.
type ConflictResponse struct {
	ChildID              uuid.UUID  `json:"assignment_child_id"`
	Date                 string     `json:"assignment_date"`
	ExistingAssignmentID *uuid.UUID `json:"existing_assignment_id,omitempty"`
}

func FromConflict(e *model.ConflictError) ConflictResponse {
	out := ConflictResponse{ChildID: e.ChildID, Date: dbtime.DayKey(e.Date)}
	if e.ExistingID != uuid.Nil {
		id := e.ExistingID
		out.ExistingAssignmentID = &id
	}
	return out
}
