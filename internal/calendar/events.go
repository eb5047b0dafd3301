package calendar

import (
	"time"

	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

// FilterTimeOff is the sentinel a status filter uses to admit time-offs.
const FilterTimeOff = "timeoff"

// StatusFilter is a set of booking statuses (plus the "timeoff" sentinel).
// An empty filter admits everything.
type StatusFilter map[string]bool

func NewStatusFilter(values ...string) StatusFilter {
	f := make(StatusFilter, len(values))
	for _, v := range values {
		f[v] = true
	}
	return f
}

func (f StatusFilter) admits(value string) bool {
	return len(f) == 0 || f[value]
}

func isoUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Project merges bookings and time-offs into one renderable event set.
// Output order is bookings then time-offs, each in input order; consumers
// needing chronological order sort on their own.
func Project(bookings []models.Booking, timeOffs []models.TimeOff, filter StatusFilter) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(bookings)+len(timeOffs))

	for i := range bookings {
		b := &bookings[i]
		if !filter.admits(b.Status) {
			continue
		}

		title := b.Customer.FullName()
		if title == "" {
			title = "Unknown Customer"
		}

		colors := ColorsFor(b.Status)
		events = append(events, models.CalendarEvent{
			ID:              "booking-" + b.ID,
			Title:           title,
			Start:           isoUTC(b.StartAt),
			End:             isoUTC(b.EndAt),
			BackgroundColor: colors.Background,
			BorderColor:     colors.Border,
			TextColor:       colors.Text,
			Type:            models.EventTypeBooking,
			Original:        b,
		})
	}

	for i := range timeOffs {
		to := &timeOffs[i]
		if !filter.admits(FilterTimeOff) {
			continue
		}

		title := "Time Off"
		if name := to.User.FullName(); name != "" {
			title = "Time Off - " + name
		}

		events = append(events, models.CalendarEvent{
			ID:              "timeoff-" + to.ID,
			Title:           title,
			Start:           isoUTC(to.StartDate),
			End:             isoUTC(to.EndDate),
			BackgroundColor: timeOffColors.Background,
			BorderColor:     timeOffColors.Border,
			TextColor:       timeOffColors.Text,
			Type:            models.EventTypeTimeOff,
			Original:        to,
		})
	}

	return events
}
