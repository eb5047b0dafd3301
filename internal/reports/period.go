package reports

import (
	"time"

	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/timezone"
)

const (
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodYear   = "year"
	PeriodCustom = "custom"
)

func ValidPeriod(p string) bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodCustom:
		return true
	}
	return false
}

// Window computes the UTC half-open interval [start, end) for a period,
// anchored on "now" in the company zone. Predefined periods run through
// the end of the current local day; custom dates are inclusive on both
// ends, so the exclusive end is the day after endDate.
func Window(period, customStart, customEnd, zone string, now time.Time) (time.Time, time.Time, error) {
	loc := timezone.Location(zone)
	local := now.In(loc)
	dayEnd := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)

	switch period {
	case PeriodWeek:
		return dayEnd.AddDate(0, 0, -7).UTC(), dayEnd.UTC(), nil
	case PeriodMonth:
		start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return start.UTC(), dayEnd.UTC(), nil
	case PeriodYear:
		start := time.Date(local.Year(), 1, 1, 0, 0, 0, 0, loc)
		return start.UTC(), dayEnd.UTC(), nil
	case PeriodCustom:
		start, err := time.ParseInLocation("2006-01-02", customStart, loc)
		if err != nil {
			return time.Time{}, time.Time{}, httperr.ErrValidation("start_date", "expected YYYY-MM-DD")
		}
		end, err := time.ParseInLocation("2006-01-02", customEnd, loc)
		if err != nil {
			return time.Time{}, time.Time{}, httperr.ErrValidation("end_date", "expected YYYY-MM-DD")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, httperr.ErrValidation("end_date", "must not be before start_date")
		}
		return start.UTC(), end.AddDate(0, 0, 1).UTC(), nil
	default:
		return time.Time{}, time.Time{}, httperr.ErrValidation("period", "expected week, month, year or custom")
	}
}

// PreviousWindow is the immediately preceding window of equal length.
func PreviousWindow(start, end time.Time) (time.Time, time.Time) {
	d := end.Sub(start)
	return start.Add(-d), start
}
