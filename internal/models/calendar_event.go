package models

const (
	EventTypeBooking = "booking"
	EventTypeTimeOff = "timeoff"
)

// CalendarEvent is the renderable projection of a booking or time-off.
// Derived, never persisted; Original points back to the source record and
// must be treated as read-only.
type CalendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// UTC ISO-8601 strings, passed through as received. Timezone
	// rendering is the presentation layer's job.
	Start string `json:"start"`
	End   string `json:"end"`

	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	TextColor       string `json:"textColor"`

	Type string `json:"type"`

	Original any `json:"-"`
}
