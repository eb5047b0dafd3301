package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elvinmirzazada/salona-dashboard/internal/calendar"
	"github.com/elvinmirzazada/salona-dashboard/internal/company"
	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/httpresp"
	"github.com/elvinmirzazada/salona-dashboard/internal/ics"
	"github.com/elvinmirzazada/salona-dashboard/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	rec      *calendar.Reconciler
	settings *company.Settings
}

func NewCalendarHandler(rec *calendar.Reconciler, settings *company.Settings) *CalendarHandler {
	return &CalendarHandler{rec: rec, settings: settings}
}

// ======================================================
// LIST (navigation)
// ======================================================

// List loads the requested local date range and returns the visible
// event set. start/end are inclusive local dates in the company zone.
func (h *CalendarHandler) List(c *gin.Context) {
	startDate := c.Query("start")
	endDate := c.Query("end")
	if startDate == "" || endDate == "" {
		httperr.BadRequest(c, "missing_range", "start and end dates are required.")
		return
	}

	zone := h.settings.Zone()

	start, err := timezone.ToUTCInstant(startDate, "00:00", zone)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	end, err := timezone.ToUTCInstant(endDate, "00:00", zone)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	end = end.AddDate(0, 0, 1)

	if err := h.rec.LoadRange(c.Request.Context(), start, end); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, h.rec.Events())
}

// ======================================================
// FILTER
// ======================================================

type filterRequest struct {
	Statuses []string `json:"statuses"`
}

// Filter sets the active status filter (booking statuses plus the
// "timeoff" sentinel) and returns the re-projected set.
func (h *CalendarHandler) Filter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid filter payload.")
		return
	}

	h.rec.SetFilter(calendar.NewStatusFilter(req.Statuses...))
	httpresp.List(c, h.rec.Events())
}

// ======================================================
// ICS FEED
// ======================================================

func (h *CalendarHandler) Feed(c *gin.Context) {
	feed := ics.Export(h.rec.Events())
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
