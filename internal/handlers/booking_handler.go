package handlers

import (
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

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	rec      *calendar.Reconciler
	settings *company.Settings
	audit    *audit.Dispatcher
}

func NewBookingHandler(rec *calendar.Reconciler, settings *company.Settings, auditd *audit.Dispatcher) *BookingHandler {
	return &BookingHandler{rec: rec, settings: settings, audit: auditd}
}

// toPayload converts the local form fields into the wire payload. The DST
// gap check happens here, before anything reaches the booking service.
func (h *BookingHandler) toPayload(req dto.BookingRequest) (bookingapi.BookingPayload, error) {
	zone := h.settings.Zone()

	start, err := timezone.ToUTCInstant(req.Date, req.StartTime, zone)
	if err != nil {
		return bookingapi.BookingPayload{}, err
	}
	end, err := timezone.ToUTCInstant(req.Date, req.EndTime, zone)
	if err != nil {
		return bookingapi.BookingPayload{}, err
	}

	services := make([]bookingapi.ServiceLinePayload, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, bookingapi.ServiceLinePayload{
			ServiceID: s.ServiceID,
			StaffID:   s.StaffID,
			Price:     s.Price,
		})
	}

	return bookingapi.BookingPayload{
		StartAt:    start.Format(timeISO),
		EndAt:      end.Format(timeISO),
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Notes:      req.Notes,
		Services:   services,
	}, nil
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	payload, err := h.toPayload(req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	created, err := h.rec.CreateBooking(c.Request.Context(), payload)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	payload, err := h.toPayload(req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	updated, err := h.rec.UpdateBooking(c.Request.Context(), id, payload)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

// ======================================================
// STATUS
// ======================================================

// UpdateStatus is the admin override: any valid status can be set.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	if err := h.rec.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: id,
		Metadata: gin.H{"status": req.Status},
	})

	httpresp.List(c, h.rec.Events())
}

func (h *BookingHandler) NoShow(c *gin.Context) {
	id := c.Param("id")
	if err := h.rec.MarkNoShow(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "booking_no_show", Entity: "booking", EntityID: id})
	httpresp.List(c, h.rec.Events())
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	if err := h.rec.MarkCompleted(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "booking_completed", Entity: "booking", EntityID: id})
	httpresp.List(c, h.rec.Events())
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.rec.DeleteBooking(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "booking_deleted", Entity: "booking", EntityID: id})
	httpresp.List(c, h.rec.Events())
}
