package reports

import (
	"testing"
	"time"

	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
)

func TestWindowWeek(t *testing.T) {
	// Friday 2026-04-10 15:00 in New York.
	now := time.Date(2026, 4, 10, 19, 0, 0, 0, time.UTC)

	start, end, err := Window(PeriodWeek, "", "", "America/New_York", now)
	if err != nil {
		t.Fatal(err)
	}

	if end.Sub(start) != 7*24*time.Hour {
		t.Fatalf("window length %v, want 7 days", end.Sub(start))
	}

	// End is local midnight after the current day: 2026-04-11 00:00 EDT.
	wantEnd := time.Date(2026, 4, 11, 4, 0, 0, 0, time.UTC)
	if !end.Equal(wantEnd) {
		t.Fatalf("end=%v, want %v", end, wantEnd)
	}
}

func TestWindowMonthAndYear(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	start, _, err := Window(PeriodMonth, "", "", "UTC", now)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("month start=%v", start)
	}

	start, _, err = Window(PeriodYear, "", "", "UTC", now)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("year start=%v", start)
	}
}

func TestWindowCustomInclusive(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	start, end, err := Window(PeriodCustom, "2026-04-01", "2026-04-07", "UTC", now)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start=%v", start)
	}
	// Inclusive end date: the exclusive bound is the next day.
	if !end.Equal(time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end=%v", end)
	}
}

func TestWindowRejectsBadInput(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		period string
		start  string
		end    string
	}{
		{"unknown period", "decade", "", ""},
		{"custom missing dates", PeriodCustom, "", ""},
		{"custom end before start", PeriodCustom, "2026-04-07", "2026-04-01"},
		{"custom bad format", PeriodCustom, "04/01/2026", "2026-04-07"},
	}

	for _, tt := range cases {
		if _, _, err := Window(tt.period, tt.start, tt.end, "UTC", now); !httperr.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tt.name, err)
		}
	}
}

func TestPreviousWindow(t *testing.T) {
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)

	prevStart, prevEnd := PreviousWindow(start, end)
	if !prevEnd.Equal(start) {
		t.Fatal("previous window must end where the current one starts")
	}
	if prevEnd.Sub(prevStart) != end.Sub(start) {
		t.Fatal("previous window must have equal length")
	}
}
