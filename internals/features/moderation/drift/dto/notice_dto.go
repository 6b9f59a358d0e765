// file: internals/features/moderation/drift/dto/notice_dto.go
package dto

import (
	"time"

	"childcare_backend/internals/features/moderation/drift/service"
)

type NoticeResponse struct {
	Delta    int64     `json:"delta"`
	Pending  int64     `json:"pending"`
	Baseline int64     `json:"baseline"`
	RaisedAt time.Time `json:"raised_at"`
}

type SubjectResponse struct {
	Subject        string          `json:"subject"`
	Armed          bool            `json:"armed"`
	Baseline       *int64          `json:"baseline"` // null until armed
	LastSeen       int64           `json:"last_seen"`
	Notice         *NoticeResponse `json:"notice"`
	ObservedAt     *time.Time      `json:"observed_at,omitempty"`
	AcknowledgedAt *time.Time      `json:"acknowledged_at,omitempty"`
	LastError      string          `json:"last_error,omitempty"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func FromStatus(st service.Status) SubjectResponse {
	s := st.State
	out := SubjectResponse{
		Subject:        st.Subject,
		Armed:          s.Armed,
		LastSeen:       s.LastSeen,
		ObservedAt:     timePtr(s.ObservedAt),
		AcknowledgedAt: timePtr(s.AcknowledgedAt),
	}
	if s.Armed {
		b := s.Baseline
		out.Baseline = &b
	}
	if s.Notice != nil {
		out.Notice = &NoticeResponse{
			Delta:    s.Notice.Delta,
			Pending:  s.Notice.Pending,
			Baseline: s.Notice.Baseline,
			RaisedAt: s.Notice.RaisedAt,
		}
	}
	if st.LastError != nil {
		out.LastError = st.LastError.Error()
	}
	return out
}

func FromStatuses(list []service.Status) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for _, st := range list {
		out = append(out, FromStatus(st))
	}
	return out
}
