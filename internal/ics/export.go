package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

const prodID = "-//salona//dashboard//EN"

// Export serializes calendar events into an iCalendar feed so the visible
// range can be subscribed to from external calendar apps. Events whose
// instants fail to parse are skipped rather than failing the whole feed.
func Export(events []models.CalendarEvent) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, ev := range events {
		start, err := time.Parse(time.RFC3339, ev.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, ev.End)
		if err != nil {
			continue
		}

		ve := cal.AddEvent(ev.ID)
		ve.SetSummary(ev.Title)
		ve.SetStartAt(start.UTC())
		ve.SetEndAt(end.UTC())
		ve.SetProperty(ical.ComponentPropertyCategories, ev.Type)
		ve.SetDtStampTime(time.Now().UTC())
	}

	return cal.Serialize()
}
