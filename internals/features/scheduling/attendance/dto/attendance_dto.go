// file: internals/features/scheduling/attendance/dto/attendance_dto.go
package dto

import (
	"math"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/attendance/service"
	"childcare_backend/internals/helpers/dbtime"
)

// rates go out with one decimal
func round1(v float64) float64 { return math.Round(v*10) / 10 }

type DailyResponse struct {
	Date          string      `json:"date"`
	PresentCount  int         `json:"present_count"`
	TotalChildren int         `json:"total_children"`
	Rate          float64     `json:"rate"`
	ChildIDs      []uuid.UUID `json:"child_ids"`
}

func FromSnapshot(s service.Snapshot) DailyResponse {
	ids := s.ChildIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return DailyResponse{
		Date:          dbtime.DayKey(s.Date),
		PresentCount:  s.PresentCount,
		TotalChildren: s.TotalChildren,
		Rate:          round1(s.Rate),
		ChildIDs:      ids,
	}
}

type DayRateResponse struct {
	Date      string  `json:"date"`
	Present   int     `json:"present"`
	Rate      float64 `json:"rate"`
	IsWeekday bool    `json:"is_weekday"`
}

type WeeklyResponse struct {
	Today         string            `json:"today"`
	WindowStart   string            `json:"window_start"`
	TotalChildren int               `json:"total_children"`
	Average       int               `json:"weekly_average"`
	Days          []DayRateResponse `json:"days"`
}

func FromWeekly(r service.WeeklyReport) WeeklyResponse {
	days := make([]DayRateResponse, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, DayRateResponse{
			Date:      dbtime.DayKey(d.Date),
			Present:   d.Present,
			Rate:      round1(d.Rate),
			IsWeekday: d.IsWeekday,
		})
	}
	return WeeklyResponse{
		Today:         dbtime.DayKey(r.Today),
		WindowStart:   dbtime.DayKey(r.WindowStart),
		TotalChildren: r.TotalChildren,
		Average:       r.Average,
		Days:          days,
	}
}

type SummaryResponse struct {
	Today            string  `json:"today"`
	TotalChildren    int     `json:"total_children"`
	ActiveCaregivers int     `json:"active_caregivers"`
	PresentToday     int     `json:"present_today"`
	TodayRate        float64 `json:"today_rate"`
	WeeklyAverage    int     `json:"weekly_average"`
}

func FromSummary(s service.Summary) SummaryResponse {
	return SummaryResponse{
		Today:            dbtime.DayKey(s.Today),
		TotalChildren:    s.TotalChildren,
		ActiveCaregivers: s.ActiveCaregivers,
		PresentToday:     s.PresentToday,
		TodayRate:        round1(s.TodayRate),
		WeeklyAverage:    s.WeeklyAverage,
	}
}

type MonthDayResponse struct {
	Date            string `json:"date"`
	IsToday         bool   `json:"is_today"`
	IsInTargetMonth bool   `json:"is_in_target_month"`
	Present         int    `json:"present"`
}

type MonthResponse struct {
	Month string               `json:"month"` // YYYY-MM
	Weeks [][]MonthDayResponse `json:"weeks"`
}

func FromMonth(reference time.Time, weeks [][]service.MonthDay) MonthResponse {
	out := MonthResponse{Month: reference.Format("2006-01"), Weeks: make([][]MonthDayResponse, 0, len(weeks))}
	for _, w := range weeks {
		row := make([]MonthDayResponse, 0, len(w))
		for _, d := range w {
			row = append(row, MonthDayResponse{
				Date:            dbtime.DayKey(d.Date),
				IsToday:         d.IsToday,
				IsInTargetMonth: d.IsInTargetMonth,
				Present:         d.Present,
			})
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out
}
