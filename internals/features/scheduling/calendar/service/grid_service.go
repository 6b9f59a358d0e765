// file: internals/features/scheduling/calendar/service/grid_service.go
package service

import (
	"time"

	"childcare_backend/internals/helpers/dbtime"
)

const DaysPerWeek = 7

// CalendarDay is derived per request and never stored.
type CalendarDay struct {
	Date            time.Time
	IsToday         bool
	IsInTargetMonth bool
}

// Week is one Monday..Sunday row of the grid.
type Week [DaysPerWeek]CalendarDay

// GridRange returns the padded bounds of the month grid containing reference:
// the Monday on/before the 1st and the Sunday on/after the last day.
func GridRange(reference time.Time) (start, end time.Time) {
	ref := dbtime.DateOf(reference)
	start = dbtime.ToMonday(dbtime.FirstOfMonth(ref))
	end = dbtime.ToSunday(dbtime.LastOfMonth(ref))
	return start, end
}

// BuildMonthGrid returns the week-aligned grid for reference's month.
// today is compared at day granularity; pass a zero time to disable the flag.
func BuildMonthGrid(reference, today time.Time) []Week {
	ref := dbtime.DateOf(reference)
	start, end := GridRange(ref)

	var (
		weeks []Week
		cur   Week
		i     int
	)
	for d := start; !d.After(end); d = dbtime.AddDays(d, 1) {
		cur[i] = CalendarDay{
			Date:            d,
			IsToday:         !today.IsZero() && dbtime.SameDay(d, today.In(d.Location())),
			IsInTargetMonth: dbtime.SameMonth(d, ref),
		}
		i++
		if i == DaysPerWeek {
			weeks = append(weeks, cur)
			cur = Week{}
			i = 0
		}
	}
	return weeks
}
