package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elvinmirzazada/salona-dashboard/internal/audit"
	"github.com/elvinmirzazada/salona-dashboard/internal/bookingapi"
	"github.com/elvinmirzazada/salona-dashboard/internal/calendar"
	"github.com/elvinmirzazada/salona-dashboard/internal/company"
	"github.com/elvinmirzazada/salona-dashboard/internal/dto"
	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/httpresp"
	"github.com/elvinmirzazada/salona-dashboard/internal/timezone"
)

const timeISO = time.RFC3339

type TimeOffHandler struct {
	rec      *calendar.Reconciler
	settings *company.Settings
	audit    *audit.Dispatcher
}

func NewTimeOffHandler(rec *calendar.Reconciler, settings *company.Settings, auditd *audit.Dispatcher) *TimeOffHandler {
	return &TimeOffHandler{rec: rec, settings: settings, audit: auditd}
}

func (h *TimeOffHandler) toPayload(req dto.TimeOffRequest) (bookingapi.TimeOffPayload, error) {
	zone := h.settings.Zone()

	start, err := timezone.ToUTCInstant(req.StartDate, req.StartTime, zone)
	if err != nil {
		return bookingapi.TimeOffPayload{}, err
	}
	end, err := timezone.ToUTCInstant(req.EndDate, req.EndTime, zone)
	if err != nil {
		return bookingapi.TimeOffPayload{}, err
	}

	return bookingapi.TimeOffPayload{
		StartDate: start.Format(timeISO),
		EndDate:   end.Format(timeISO),
		UserID:    req.UserID,
		Reason:    req.Reason,
	}, nil
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	var req dto.TimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time-off payload.")
		return
	}

	payload, err := h.toPayload(req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	created, err := h.rec.CreateTimeOff(c.Request.Context(), payload)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "timeoff_created", Entity: "timeoff", EntityID: created.ID})
	httpresp.Created(c, created)
}

func (h *TimeOffHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.TimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time-off payload.")
		return
	}

	payload, err := h.toPayload(req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	updated, err := h.rec.UpdateTimeOff(c.Request.Context(), id, payload)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "timeoff_updated", Entity: "timeoff", EntityID: id})
	httpresp.OK(c, updated)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.rec.DeleteTimeOff(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "timeoff_deleted", Entity: "timeoff", EntityID: id})
	httpresp.List(c, h.rec.Events())
}
