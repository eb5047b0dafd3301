package timezone

import (
	"testing"
	"time"

	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
)

func TestToUTCInstantRoundTrip(t *testing.T) {
	cases := []struct {
		date  string
		clock string
		zone  string
	}{
		{"2026-01-15", "09:00", "America/New_York"},
		{"2026-07-15", "09:00", "America/New_York"},
		{"2026-03-08", "01:30", "America/New_York"}, // just before the gap
		{"2026-03-08", "03:00", "America/New_York"}, // just after the gap
		{"2026-06-01", "23:45", "America/Sao_Paulo"},
		{"2026-11-01", "12:00", "Europe/Berlin"},
		{"2026-02-28", "00:00", "UTC"},
		{"2026-05-10", "18:30", "Asia/Tokyo"},
	}

	for _, tt := range cases {
		instant, err := ToUTCInstant(tt.date, tt.clock, tt.zone)
		if err != nil {
			t.Fatalf("ToUTCInstant(%s %s %s): %v", tt.date, tt.clock, tt.zone, err)
		}
		if instant.Location() != time.UTC {
			t.Fatalf("ToUTCInstant(%s %s %s): not UTC", tt.date, tt.clock, tt.zone)
		}

		date, clock, err := ToLocalParts(instant, tt.zone)
		if err != nil {
			t.Fatalf("ToLocalParts(%s): %v", tt.zone, err)
		}
		if date != tt.date || clock != tt.clock {
			t.Fatalf("round trip %s %s %s: got %s %s", tt.date, tt.clock, tt.zone, date, clock)
		}
	}
}

func TestToUTCInstantDSTGap(t *testing.T) {
	// US spring-forward 2026: clocks jump 02:00 -> 03:00 on March 8.
	_, err := ToUTCInstant("2026-03-08", "02:30", "America/New_York")
	if err == nil {
		t.Fatal("expected error for nonexistent local time")
	}
	if !httperr.IsInvalidLocalTime(err) {
		t.Fatalf("expected InvalidLocalTimeError, got %v", err)
	}
}

func TestToUTCInstantRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		clock string
		zone  string
	}{
		{"unknown zone", "2026-01-15", "09:00", "Mars/Olympus"},
		{"empty zone", "2026-01-15", "09:00", ""},
		{"garbage date", "not-a-date", "09:00", "UTC"},
		{"garbage clock", "2026-01-15", "9am", "UTC"},
	}

	for _, tt := range cases {
		if _, err := ToUTCInstant(tt.date, tt.clock, tt.zone); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestToLocalParts(t *testing.T) {
	instant := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)

	date, clock, err := ToLocalParts(instant, "America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	if date != "2026-01-15" || clock != "09:00" {
		t.Fatalf("got %s %s, want 2026-01-15 09:00", date, clock)
	}
}

func TestFormat(t *testing.T) {
	instant := time.Date(2026, 1, 15, 14, 5, 0, 0, time.UTC)

	cases := []struct {
		style string
		want  string
	}{
		{StyleDate, "Jan 15, 2026"},
		{StyleTime, "9:05 AM"},
		{StyleDateTime, "Jan 15, 2026 9:05 AM"},
	}

	for _, tt := range cases {
		if got := Format(instant, "America/New_York", tt.style); got != tt.want {
			t.Fatalf("Format(%s)=%q, want %q", tt.style, got, tt.want)
		}
	}
}
