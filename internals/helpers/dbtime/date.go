// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateIn takes the Y/M/D of t as-is (in t's own location) and returns midnight in loc.
// Storage drivers often hand back DATE columns as UTC midnight; this keeps the calendar day.
func DateIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DateOf strips the time-of-day, keeping t's location.
func DateOf(t time.Time) time.Time {
	return DateIn(t, t.Location())
}

// ParseDate parses "YYYY-MM-DD" as local midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// DayKey is the canonical map key for a calendar day.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ISOWeekday maps time.Weekday (0=Sunday) to 1..7 (Mon..Sun).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// IsWeekday reports Mon–Fri.
func IsWeekday(t time.Time) bool {
	return ISOWeekday(t) <= 5
}

// ToMonday moves back to the Monday of the same week (no-op on Mondays).
func ToMonday(t time.Time) time.Time {
	shift := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return time.Date(t.Year(), t.Month(), t.Day()-shift, 0, 0, 0, 0, t.Location())
}

// ToSunday moves forward to the Sunday of the same week (no-op on Sundays).
func ToSunday(t time.Time) time.Time {
	shift := (7 - int(t.Weekday())) % 7
	return time.Date(t.Year(), t.Month(), t.Day()+shift, 0, 0, 0, 0, t.Location())
}

// AddDays uses calendar arithmetic so DST transitions never skip or repeat a day.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func LastOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
