package httperr

import (
	"errors"
	"fmt"
)

// ValidationError rejects a payload before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ErrValidation(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// InvalidLocalTimeError marks a local date/time that does not exist in the
// given zone (DST spring-forward gap).
type InvalidLocalTimeError struct {
	Date  string
	Clock string
	Zone  string
}

func (e InvalidLocalTimeError) Error() string {
	return fmt.Sprintf("local time %s %s does not exist in %s", e.Date, e.Clock, e.Zone)
}

// RemoteError carries the booking service's message when a request fails,
// or a generic fallback when none was provided.
type RemoteError struct {
	Message string
}

func (e RemoteError) Error() string {
	if e.Message == "" {
		return "request to booking service failed"
	}
	return e.Message
}

func ErrRemote(message string) error {
	return RemoteError{Message: message}
}

// ErrReportUnavailable: one of the report windows failed to load, so no
// report is produced. Callers may keep showing a stale cached report.
var ErrReportUnavailable = errors.New("report unavailable")

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsInvalidLocalTime(err error) bool {
	var ie InvalidLocalTimeError
	return errors.As(err, &ie)
}

func IsRemote(err error) bool {
	var re RemoteError
	return errors.As(err, &re)
}
