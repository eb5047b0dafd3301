package calendar

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/elvinmirzazada/salona-dashboard/internal/bookingapi"
	domain "github.com/elvinmirzazada/salona-dashboard/internal/domain/booking"
	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

// ======================================================
// SERVICE PORT
// ======================================================

// Service is the slice of the booking service the reconciler needs.
type Service interface {
	ListBookings(ctx context.Context, start, end *time.Time) ([]models.Booking, error)
	CreateBooking(ctx context.Context, payload bookingapi.BookingPayload) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, payload bookingapi.BookingPayload) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status string) (*models.Booking, error)
	MarkNoShow(ctx context.Context, id string) (*models.Booking, error)
	MarkCompleted(ctx context.Context, id string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	ListTimeOffs(ctx context.Context) ([]models.TimeOff, error)
	CreateTimeOff(ctx context.Context, payload bookingapi.TimeOffPayload) (*models.TimeOff, error)
	UpdateTimeOff(ctx context.Context, id string, payload bookingapi.TimeOffPayload) (*models.TimeOff, error)
	DeleteTimeOff(ctx context.Context, id string) error
}

// ======================================================
// RECONCILER
// ======================================================

// Reconciler keeps the visible calendar set consistent with the booking
// service across navigation and mutations. Reads are cheap snapshots;
// every state change goes through the mutex.
//
// Staleness rule: each LoadRange bumps a generation token. A response
// carrying an old token is discarded, so a slow fetch can never overwrite
// the data of a newer navigation.
type Reconciler struct {
	api Service
	log *zap.Logger

	mu         sync.Mutex
	generation uint64

	rangeStart time.Time
	rangeEnd   time.Time
	hasRange   bool

	inFlight      bool
	inFlightStart time.Time
	inFlightEnd   time.Time

	bookings []models.Booking
	timeOffs []models.TimeOff
	filter   StatusFilter
	events   []models.CalendarEvent
}

func NewReconciler(api Service, log *zap.Logger) *Reconciler {
	return &Reconciler{
		api: api,
		log: log,
	}
}

// Events returns a copy of the current visible set.
func (r *Reconciler) Events() []models.CalendarEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.CalendarEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Reconciler) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFlight
}

// SetFilter swaps the active status filter and re-projects the current
// raw records.
func (r *Reconciler) SetFilter(filter StatusFilter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.filter = filter
	r.reproject()
}

// reproject rebuilds the event set from the raw records. Callers hold the
// lock.
func (r *Reconciler) reproject() {
	r.events = Project(r.bookings, r.timeOffs, r.filter)
}

// ======================================================
// LOAD
// ======================================================

// LoadRange replaces the visible set with the bookings and time-offs
// overlapping [start, end). A duplicate call for the range already being
// fetched is suppressed; a superseded call's response is discarded.
func (r *Reconciler) LoadRange(ctx context.Context, start, end time.Time) error {
	if !start.Before(end) {
		return httperr.ErrValidation("range", "start must be before end")
	}

	r.mu.Lock()
	if r.inFlight && r.inFlightStart.Equal(start) && r.inFlightEnd.Equal(end) {
		r.mu.Unlock()
		return nil
	}
	r.generation++
	token := r.generation
	r.inFlight = true
	r.inFlightStart = start
	r.inFlightEnd = end
	r.mu.Unlock()

	bookings, timeOffs, err := r.fetchRange(ctx, start, end)

	r.mu.Lock()
	defer r.mu.Unlock()

	if token != r.generation {
		// A newer navigation superseded this fetch.
		r.log.Debug("discarding stale range load",
			zap.Uint64("token", token),
			zap.Uint64("generation", r.generation),
		)
		return nil
	}
	r.inFlight = false

	if err != nil {
		return err
	}

	r.rangeStart = start
	r.rangeEnd = end
	r.hasRange = true
	r.bookings = bookings
	r.timeOffs = timeOffs
	r.reproject()
	return nil
}

func (r *Reconciler) fetchRange(ctx context.Context, start, end time.Time) ([]models.Booking, []models.TimeOff, error) {
	bookings, err := r.api.ListBookings(ctx, &start, &end)
	if err != nil {
		return nil, nil, err
	}

	all, err := r.api.ListTimeOffs(ctx)
	if err != nil {
		return nil, nil, err
	}

	// The time-off listing is unscoped; keep only entries overlapping
	// the requested range.
	timeOffs := make([]models.TimeOff, 0, len(all))
	for _, to := range all {
		if to.StartDate.Before(end) && to.EndDate.After(start) {
			timeOffs = append(timeOffs, to)
		}
	}

	return bookings, timeOffs, nil
}

// Reload repeats the last successful LoadRange.
func (r *Reconciler) Reload(ctx context.Context) error {
	r.mu.Lock()
	if !r.hasRange {
		r.mu.Unlock()
		return nil
	}
	start, end := r.rangeStart, r.rangeEnd
	r.mu.Unlock()

	return r.LoadRange(ctx, start, end)
}

// ======================================================
// BOOKINGS
// ======================================================

func validateBookingPayload(p bookingapi.BookingPayload) error {
	start, err := time.Parse(time.RFC3339, p.StartAt)
	if err != nil {
		return httperr.ErrValidation("start_at", "must be an ISO-8601 UTC instant")
	}
	end, err := time.Parse(time.RFC3339, p.EndAt)
	if err != nil {
		return httperr.ErrValidation("end_at", "must be an ISO-8601 UTC instant")
	}
	if !start.Before(end) {
		return httperr.ErrValidation("end_at", "must be after start_at")
	}
	if len(p.Services) == 0 {
		return httperr.ErrValidation("booking_services", "at least one service line is required")
	}
	return nil
}

// CreateBooking creates the booking remotely and appends the returned
// record to the visible set without a full reload.
func (r *Reconciler) CreateBooking(ctx context.Context, payload bookingapi.BookingPayload) (*models.Booking, error) {
	if err := validateBookingPayload(payload); err != nil {
		return nil, err
	}

	created, err := r.api.CreateBooking(ctx, payload)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, httperr.ErrRemote("booking service returned no record")
	}

	r.mu.Lock()
	r.upsertBooking(*created)
	r.reproject()
	r.mu.Unlock()

	return created, nil
}

// UpdateBooking edits remotely, then reloads the current range: an edit
// can move the booking into or out of the visible window, so a local
// patch is not enough.
func (r *Reconciler) UpdateBooking(ctx context.Context, id string, payload bookingapi.BookingPayload) (*models.Booking, error) {
	if err := validateBookingPayload(payload); err != nil {
		return nil, err
	}

	updated, err := r.api.UpdateBooking(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	if err := r.Reload(ctx); err != nil {
		r.log.Warn("range reload after booking update failed", zap.String("id", id), zap.Error(err))
	}

	return updated, nil
}

// ChangeStatus is the generic admin override: any status may be set. The
// local record is patched in place, no reload.
func (r *Reconciler) ChangeStatus(ctx context.Context, id string, status string) error {
	if err := domain.CanTransition(r.statusOf(id), domain.Status(status)); err != nil {
		return err
	}

	if _, err := r.api.UpdateBookingStatus(ctx, id, status); err != nil {
		return err
	}

	r.patchStatus(id, status)
	return nil
}

// MarkNoShow: confirmed bookings only.
func (r *Reconciler) MarkNoShow(ctx context.Context, id string) error {
	if err := domain.CanMarkNoShow(r.statusOf(id)); err != nil {
		return err
	}

	if _, err := r.api.MarkNoShow(ctx, id); err != nil {
		return err
	}

	r.patchStatus(id, string(domain.StatusNoShow))
	return nil
}

// MarkCompleted: confirmed bookings only.
func (r *Reconciler) MarkCompleted(ctx context.Context, id string) error {
	if err := domain.CanMarkCompleted(r.statusOf(id)); err != nil {
		return err
	}

	if _, err := r.api.MarkCompleted(ctx, id); err != nil {
		return err
	}

	r.patchStatus(id, string(domain.StatusCompleted))
	return nil
}

func (r *Reconciler) DeleteBooking(ctx context.Context, id string) error {
	if err := r.api.DeleteBooking(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			break
		}
	}
	r.reproject()
	return nil
}

func (r *Reconciler) statusOf(id string) domain.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return domain.Status(r.bookings[i].Status)
		}
	}
	// Unknown locally (e.g. acting on a record outside the loaded
	// range); let the remote service be the judge.
	return domain.StatusConfirmed
}

func (r *Reconciler) patchStatus(id string, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			break
		}
	}
	r.reproject()
}

// upsertBooking keeps booking ids unique in the raw set. Callers hold the
// lock.
func (r *Reconciler) upsertBooking(b models.Booking) {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = b
			return
		}
	}
	r.bookings = append(r.bookings, b)
}

// ======================================================
// TIME OFFS
// ======================================================

func validateTimeOffPayload(p bookingapi.TimeOffPayload) error {
	start, err := time.Parse(time.RFC3339, p.StartDate)
	if err != nil {
		return httperr.ErrValidation("start_date", "must be an ISO-8601 UTC instant")
	}
	end, err := time.Parse(time.RFC3339, p.EndDate)
	if err != nil {
		return httperr.ErrValidation("end_date", "must be an ISO-8601 UTC instant")
	}
	if !start.Before(end) {
		return httperr.ErrValidation("end_date", "must be after start_date")
	}
	if p.UserID == "" {
		return httperr.ErrValidation("user_id", "staff member is required")
	}
	return nil
}

func (r *Reconciler) CreateTimeOff(ctx context.Context, payload bookingapi.TimeOffPayload) (*models.TimeOff, error) {
	if err := validateTimeOffPayload(payload); err != nil {
		return nil, err
	}

	created, err := r.api.CreateTimeOff(ctx, payload)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, httperr.ErrRemote("booking service returned no record")
	}

	r.mu.Lock()
	r.timeOffs = append(r.timeOffs, *created)
	r.reproject()
	r.mu.Unlock()

	return created, nil
}

func (r *Reconciler) UpdateTimeOff(ctx context.Context, id string, payload bookingapi.TimeOffPayload) (*models.TimeOff, error) {
	if err := validateTimeOffPayload(payload); err != nil {
		return nil, err
	}

	updated, err := r.api.UpdateTimeOff(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	if err := r.Reload(ctx); err != nil {
		r.log.Warn("range reload after time-off update failed", zap.String("id", id), zap.Error(err))
	}

	return updated, nil
}

func (r *Reconciler) DeleteTimeOff(ctx context.Context, id string) error {
	if err := r.api.DeleteTimeOff(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.timeOffs {
		if r.timeOffs[i].ID == id {
			r.timeOffs = append(r.timeOffs[:i], r.timeOffs[i+1:]...)
			break
		}
	}
	r.reproject()
	return nil
}
