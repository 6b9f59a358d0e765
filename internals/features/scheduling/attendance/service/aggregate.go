// file: internals/features/scheduling/attendance/service/aggregate.go
package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/helpers/dbtime"
)

const WindowDays = 7

// PresentOn returns the distinct children booked on date, in first-seen order.
func PresentOn(date time.Time, assignments []model.AssignmentModel) []uuid.UUID {
	key := dbtime.DayKey(date)
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, a := range assignments {
		if a.DayKey() != key {
			continue
		}
		if _, ok := seen[a.AssignmentChildID]; ok {
			continue
		}
		seen[a.AssignmentChildID] = struct{}{}
		out = append(out, a.AssignmentChildID)
	}
	return out
}

// GroupByDate buckets assignments by "YYYY-MM-DD".
func GroupByDate(assignments []model.AssignmentModel) map[string][]model.AssignmentModel {
	out := make(map[string][]model.AssignmentModel)
	for _, a := range assignments {
		k := a.DayKey()
		out[k] = append(out[k], a)
	}
	return out
}

// Rate is present/total*100; 0 when there are no children.
func Rate(present, totalChildren int) float64 {
	if totalChildren <= 0 {
		return 0
	}
	return float64(present) / float64(totalChildren) * 100
}

type DayRate struct {
	Date      time.Time
	Present   int
	Rate      float64
	IsWeekday bool
}

// WeeklyBreakdown lists the 7 days ending at today, oldest first.
func WeeklyBreakdown(today time.Time, totalChildren int, byDate map[string][]model.AssignmentModel) []DayRate {
	end := dbtime.DateOf(today)
	start := dbtime.AddDays(end, -(WindowDays - 1))

	out := make([]DayRate, 0, WindowDays)
	for d := start; !d.After(end); d = dbtime.AddDays(d, 1) {
		present := len(PresentOn(d, byDate[dbtime.DayKey(d)]))
		out = append(out, DayRate{
			Date:      d,
			Present:   present,
			Rate:      Rate(present, totalChildren),
			IsWeekday: dbtime.IsWeekday(d),
		})
	}
	return out
}

// WeeklyAverage is the mean Mon–Fri attendance rate over the trailing 7 days,
// rounded to the nearest integer. No children or no weekdays gives 0.
func WeeklyAverage(today time.Time, totalChildren int, byDate map[string][]model.AssignmentModel) int {
	if totalChildren <= 0 {
		return 0
	}
	var (
		sum  float64
		days int
	)
	for _, d := range WeeklyBreakdown(today, totalChildren, byDate) {
		if !d.IsWeekday {
			continue
		}
		sum += d.Rate
		days++
	}
	if days == 0 {
		return 0
	}
	return int(math.Round(sum / float64(days)))
}
