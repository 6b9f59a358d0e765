package service

import (
	"testing"
	"time"
)

func TestBuildMonthGridCompleteness(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	for year := 2024; year <= 2027; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := time.Date(year, month, 15, 13, 45, 0, 0, loc)
			weeks := BuildMonthGrid(ref, time.Time{})
			if len(weeks) < 4 || len(weeks) > 6 {
				t.Fatalf("%s: unexpected week count %d", ref.Format("2006-01"), len(weeks))
			}

			first := weeks[0][0].Date
			last := weeks[len(weeks)-1][DaysPerWeek-1].Date
			if first.Weekday() != time.Monday {
				t.Fatalf("%s: first day is %s", ref.Format("2006-01"), first.Weekday())
			}
			if last.Weekday() != time.Sunday {
				t.Fatalf("%s: last day is %s", ref.Format("2006-01"), last.Weekday())
			}

			var sawFirst, sawLast bool
			lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
			prev := time.Time{}
			for _, w := range weeks {
				for _, d := range w {
					if !prev.IsZero() && d.Date.Sub(prev) > 25*time.Hour {
						t.Fatalf("%s: gap between %s and %s", ref.Format("2006-01"), prev, d.Date)
					}
					prev = d.Date
					if d.IsInTargetMonth && d.Date.Day() == 1 {
						sawFirst = true
					}
					if d.IsInTargetMonth && d.Date.Day() == lastDay {
						sawLast = true
					}
					if d.IsInTargetMonth != (d.Date.Month() == month) {
						t.Fatalf("%s: wrong IsInTargetMonth for %s", ref.Format("2006-01"), d.Date)
					}
				}
			}
			if !sawFirst || !sawLast {
				t.Fatalf("%s: month not fully covered (first=%v last=%v)", ref.Format("2006-01"), sawFirst, sawLast)
			}
		}
	}
}

func TestBuildMonthGridIdempotent(t *testing.T) {
	ref := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	a := BuildMonthGrid(ref, time.Time{})
	b := BuildMonthGrid(ref, time.Time{})
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		for j := range a[i] {
			if !a[i][j].Date.Equal(b[i][j].Date) || a[i][j] != b[i][j] {
				t.Fatalf("grids differ at %d/%d", i, j)
			}
		}
	}
}

func TestBuildMonthGridWednesdayToFriday(t *testing.T) {
	// July 2026 starts on a Wednesday and ends on a Friday.
	ref := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	if ref.AddDate(0, 0, -9).Weekday() != time.Wednesday {
		t.Fatalf("fixture: 2026-07-01 is not a Wednesday")
	}
	weeks := BuildMonthGrid(ref, time.Time{})
	if len(weeks) != 5 && len(weeks) != 6 {
		t.Fatalf("want 5 or 6 rows, got %d", len(weeks))
	}
	if d := weeks[0][2]; d.Date.Day() != 1 || !d.IsInTargetMonth {
		t.Fatalf("1st should be at row 0 column 2, got %s", d.Date)
	}
	lastRow := weeks[len(weeks)-1]
	if d := lastRow[4]; d.Date.Day() != 31 || !d.IsInTargetMonth || d.Date.Weekday() != time.Friday {
		t.Fatalf("31st should be at last row column 4, got %s", d.Date)
	}
	if lastRow[5].IsInTargetMonth || lastRow[6].IsInTargetMonth {
		t.Fatalf("trailing padding marked as target month")
	}
}

func TestBuildMonthGridNoBackwardPaddingOnMonday(t *testing.T) {
	// June 2026 starts on a Monday.
	weeks := BuildMonthGrid(time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), time.Time{})
	if d := weeks[0][0]; d.Date.Day() != 1 || !d.IsInTargetMonth {
		t.Fatalf("expected June 1st at row 0 column 0, got %s", d.Date)
	}
}

func TestBuildMonthGridMarksToday(t *testing.T) {
	ref := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 10, 18, 17, 5, 0, 0, time.UTC)
	count := 0
	for _, w := range BuildMonthGrid(ref, today) {
		for _, d := range w {
			if d.IsToday {
				count++
				if d.Date.Day() != 18 {
					t.Fatalf("wrong day marked today: %s", d.Date)
				}
			}
		}
	}
	if count != 1 {
		t.Fatalf("want exactly one today, got %d", count)
	}
}

func TestGridRange(t *testing.T) {
	start, end := GridRange(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
	if start.Format("2006-01-02") != "2026-09-28" || end.Format("2006-01-02") != "2026-11-01" {
		t.Fatalf("unexpected range %s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}
