package calendar

import domain "github.com/elvinmirzazada/salona-dashboard/internal/domain/booking"

type EventColors struct {
	Background string
	Border     string
	Text       string
}

// Fixed status palette. Scheduled shares the pending amber; anything
// unrecognized falls back to indigo.
var statusColors = map[domain.Status]EventColors{
	domain.StatusPending:   {Background: "#F59E0B", Border: "#D97706", Text: "#FFFFFF"},
	domain.StatusScheduled: {Background: "#F59E0B", Border: "#D97706", Text: "#FFFFFF"},
	domain.StatusConfirmed: {Background: "#10B981", Border: "#059669", Text: "#FFFFFF"},
	domain.StatusCompleted: {Background: "#3B82F6", Border: "#2563EB", Text: "#FFFFFF"},
	domain.StatusCancelled: {Background: "#EF4444", Border: "#DC2626", Text: "#FFFFFF"},
	domain.StatusNoShow:    {Background: "#8B5CF6", Border: "#7C3AED", Text: "#FFFFFF"},
}

var defaultColors = EventColors{Background: "#6366F1", Border: "#4F46E5", Text: "#FFFFFF"}

// Time-offs always render neutral gray, independent of any status filter.
var timeOffColors = EventColors{Background: "#9CA3AF", Border: "#6B7280", Text: "#FFFFFF"}

func ColorsFor(status string) EventColors {
	if c, ok := statusColors[domain.Status(status)]; ok {
		return c
	}
	return defaultColors
}
