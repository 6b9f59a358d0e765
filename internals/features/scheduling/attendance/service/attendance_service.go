// file: internals/features/scheduling/attendance/service/attendance_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/assignments/repository"
	asvc "childcare_backend/internals/features/scheduling/assignments/service"
	calendar "childcare_backend/internals/features/scheduling/calendar/service"
	"childcare_backend/internals/helpers/dbtime"
)

// DirectoryCounter gives the denominators for attendance rates.
type DirectoryCounter interface {
	ActiveChildIDs(ctx context.Context) ([]uuid.UUID, error)
	CountActiveNannies(ctx context.Context) (int64, error)
}

// AttendanceService recomputes everything per call; nothing is cached.
type AttendanceService struct {
	Ledger    asvc.RangeLister
	Directory DirectoryCounter
}

func NewAttendanceService(ledger asvc.RangeLister, dir DirectoryCounter) *AttendanceService {
	return &AttendanceService{Ledger: ledger, Directory: dir}
}

type Snapshot struct {
	Date          time.Time
	ChildIDs      []uuid.UUID
	PresentCount  int
	TotalChildren int
	Rate          float64
}

type WeeklyReport struct {
	Today         time.Time
	WindowStart   time.Time
	TotalChildren int
	Average       int
	Days          []DayRate
}

type Summary struct {
	Today            time.Time
	TotalChildren    int
	ActiveCaregivers int
	PresentToday     int
	TodayRate        float64
	WeeklyAverage    int
}

type MonthDay struct {
	calendar.CalendarDay
	Present int
}

type childSet map[uuid.UUID]struct{}

// activeChildren is the population rates are measured against.
func (s *AttendanceService) activeChildren(ctx context.Context) (childSet, error) {
	ids, err := s.Directory.ActiveChildIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active children: %w", err)
	}
	set := make(childSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// load drops bookings of children outside active so present never exceeds the total.
func (s *AttendanceService) load(ctx context.Context, from, to time.Time, active childSet) (map[string][]model.AssignmentModel, error) {
	rows, err := s.Ledger.List(ctx, &from, &to, repository.Filter{})
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	kept := make([]model.AssignmentModel, 0, len(rows))
	for _, r := range rows {
		if _, ok := active[r.AssignmentChildID]; ok {
			kept = append(kept, r)
		}
	}
	return GroupByDate(kept), nil
}

func (s *AttendanceService) Daily(ctx context.Context, date time.Time) (Snapshot, error) {
	day := dbtime.DateOf(date)
	active, err := s.activeChildren(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	total := len(active)
	byDate, err := s.load(ctx, day, day, active)
	if err != nil {
		return Snapshot{}, err
	}
	ids := PresentOn(day, byDate[dbtime.DayKey(day)])
	return Snapshot{
		Date:          day,
		ChildIDs:      ids,
		PresentCount:  len(ids),
		TotalChildren: total,
		Rate:          Rate(len(ids), total),
	}, nil
}

func (s *AttendanceService) Weekly(ctx context.Context, today time.Time) (WeeklyReport, error) {
	end := dbtime.DateOf(today)
	start := dbtime.AddDays(end, -(WindowDays - 1))
	active, err := s.activeChildren(ctx)
	if err != nil {
		return WeeklyReport{}, err
	}
	total := len(active)
	byDate, err := s.load(ctx, start, end, active)
	if err != nil {
		return WeeklyReport{}, err
	}
	return WeeklyReport{
		Today:         end,
		WindowStart:   start,
		TotalChildren: total,
		Average:       WeeklyAverage(end, total, byDate),
		Days:          WeeklyBreakdown(end, total, byDate),
	}, nil
}

// Summary feeds the dashboard tiles.
func (s *AttendanceService) Summary(ctx context.Context, today time.Time) (Summary, error) {
	report, err := s.Weekly(ctx, today)
	if err != nil {
		return Summary{}, err
	}
	active, err := s.Directory.CountActiveNannies(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("count active nannies: %w", err)
	}
	last := report.Days[len(report.Days)-1]
	return Summary{
		Today:            report.Today,
		TotalChildren:    report.TotalChildren,
		ActiveCaregivers: int(active),
		PresentToday:     last.Present,
		TodayRate:        last.Rate,
		WeeklyAverage:    report.Average,
	}, nil
}

// Month returns the grid for reference's month with a present count per day.
func (s *AttendanceService) Month(ctx context.Context, reference, today time.Time) ([][]MonthDay, error) {
	start, end := calendar.GridRange(reference)
	active, err := s.activeChildren(ctx)
	if err != nil {
		return nil, err
	}
	byDate, err := s.load(ctx, start, end, active)
	if err != nil {
		return nil, err
	}
	weeks := calendar.BuildMonthGrid(reference, today)
	out := make([][]MonthDay, 0, len(weeks))
	for _, w := range weeks {
		row := make([]MonthDay, 0, calendar.DaysPerWeek)
		for _, d := range w {
			row = append(row, MonthDay{
				CalendarDay: d,
				Present:     len(PresentOn(d.Date, byDate[dbtime.DayKey(d.Date)])),
			})
		}
		out = append(out, row)
	}
	return out, nil
}
