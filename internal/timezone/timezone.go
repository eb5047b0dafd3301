package timezone

import (
	"fmt"
	"time"

	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
)

const DefaultTimezone = "UTC"

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ToLocalParts splits a UTC instant into the wall-clock date and time it
// reads as in the given zone.
func ToLocalParts(instant time.Time, tz string) (date string, clock string, err error) {
	if !IsValid(tz) {
		return "", "", httperr.ErrValidation("zone", fmt.Sprintf("unknown timezone %q", tz))
	}

	local := instant.In(Location(tz))
	return local.Format(dateLayout), local.Format(clockLayout), nil
}

// ToUTCInstant interprets a local (date, time) pair in the given zone and
// returns the UTC instant. A local time that falls in a DST spring-forward
// gap does not exist and is rejected, never silently shifted.
func ToUTCInstant(date string, clock string, tz string) (time.Time, error) {
	if !IsValid(tz) {
		return time.Time{}, httperr.ErrValidation("zone", fmt.Sprintf("unknown timezone %q", tz))
	}

	loc := Location(tz)

	parsed, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("datetime", "invalid date or time")
	}

	// ParseInLocation normalizes times inside a DST gap onto a real
	// instant, so a changed wall clock after the round trip means the
	// input never existed in this zone.
	if parsed.Format(dateTimeLayout) != date+" "+clock {
		return time.Time{}, httperr.InvalidLocalTimeError{Date: date, Clock: clock, Zone: tz}
	}

	return parsed.UTC(), nil
}

// Format styles, fixed to one convention so output is testable.
const (
	StyleDate     = "date"
	StyleTime     = "time"
	StyleDateTime = "datetime"
)

func Format(instant time.Time, tz string, style string) string {
	local := instant.In(Location(tz))

	switch style {
	case StyleDate:
		return local.Format("Jan 2, 2006")
	case StyleTime:
		return local.Format("3:04 PM")
	default:
		return local.Format("Jan 2, 2006 3:04 PM")
	}
}
