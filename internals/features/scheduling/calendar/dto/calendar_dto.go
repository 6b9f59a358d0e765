// file: internals/features/scheduling/calendar/dto/calendar_dto.go
package dto

import (
	"time"

	adto "childcare_backend/internals/features/scheduling/assignments/dto"
	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/calendar/service"
	"childcare_backend/internals/helpers/dbtime"
)

type DayResponse struct {
	Date            string                    `json:"date"`
	Weekday         int                       `json:"weekday"` // ISO, 1=Mon
	IsToday         bool                      `json:"is_today"`
	IsInTargetMonth bool                      `json:"is_in_target_month"`
	Assignments     []adto.AssignmentResponse `json:"assignments,omitempty"`
}

type GridResponse struct {
	Month      string          `json:"month"` // YYYY-MM
	RangeStart string          `json:"range_start"`
	RangeEnd   string          `json:"range_end"`
	Weeks      [][]DayResponse `json:"weeks"`
}

// FromGrid renders the grid; byDate may be nil for the bare grid.
func FromGrid(reference time.Time, weeks []service.Week, byDate map[string][]model.AssignmentModel) GridResponse {
	start, end := service.GridRange(reference)
	out := GridResponse{
		Month:      reference.Format("2006-01"),
		RangeStart: dbtime.DayKey(start),
		RangeEnd:   dbtime.DayKey(end),
		Weeks:      make([][]DayResponse, 0, len(weeks)),
	}
	for _, w := range weeks {
		row := make([]DayResponse, 0, service.DaysPerWeek)
		for _, d := range w {
			day := DayResponse{
				Date:            dbtime.DayKey(d.Date),
				Weekday:         dbtime.ISOWeekday(d.Date),
				IsToday:         d.IsToday,
				IsInTargetMonth: d.IsInTargetMonth,
			}
			if byDate != nil {
				day.Assignments = adto.FromModels(byDate[day.Date])
			}
			row = append(row, day)
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out
}
