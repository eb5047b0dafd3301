package booking

import "github.com/elvinmirzazada/salona-dashboard/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusScheduled, StatusConfirmed,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanMarkNoShow: only a confirmed booking becomes a no-show.
func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkCompleted: only a confirmed booking completes.
func CanMarkCompleted(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition covers the generic admin override: any current status may
// move to any valid target.
func CanTransition(current, next Status) error {
	if !IsValid(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}
