package dbtime

import (
	"testing"
	"time"
)

func TestISOWeekday(t *testing.T) {
	// 2026-10-18 is a Sunday, 2026-10-19 a Monday.
	sun := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	if got := ISOWeekday(sun); got != 7 {
		t.Fatalf("sunday: got %d want 7", got)
	}
	if got := ISOWeekday(AddDays(sun, 1)); got != 1 {
		t.Fatalf("monday: got %d want 1", got)
	}
	if IsWeekday(sun) {
		t.Fatalf("sunday reported as weekday")
	}
}

func TestToMondayAndSunday(t *testing.T) {
	wed := time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC)
	mon := ToMonday(wed)
	if mon.Weekday() != time.Monday || mon.Day() != 30 || mon.Month() != time.March {
		t.Fatalf("ToMonday: got %s", mon)
	}
	if got := ToMonday(mon); !got.Equal(mon) {
		t.Fatalf("ToMonday on monday moved to %s", got)
	}
	sun := ToSunday(wed)
	if sun.Weekday() != time.Sunday || sun.Day() != 5 {
		t.Fatalf("ToSunday: got %s", sun)
	}
	if got := ToSunday(sun); !got.Equal(sun) {
		t.Fatalf("ToSunday on sunday moved to %s", got)
	}
}

func TestDateInKeepsCalendarDay(t *testing.T) {
	jkt := time.FixedZone("WIB", 7*60*60)
	stored := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	got := DateIn(stored, jkt)
	if DayKey(got) != "2026-10-18" {
		t.Fatalf("DateIn changed day: %s", got)
	}
	if got.Location() != jkt {
		t.Fatalf("DateIn location: %v", got.Location())
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-02-28 ", time.UTC)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !SameDay(d, time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", d)
	}
	if _, err := ParseDate("28/02/2026", time.UTC); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestMonthBounds(t *testing.T) {
	ref := time.Date(2028, 2, 14, 0, 0, 0, 0, time.UTC)
	if FirstOfMonth(ref).Day() != 1 {
		t.Fatalf("first of month")
	}
	if LastOfMonth(ref).Day() != 29 {
		t.Fatalf("leap february: got %d", LastOfMonth(ref).Day())
	}
}
