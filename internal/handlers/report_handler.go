package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elvinmirzazada/salona-dashboard/internal/dto"
	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/httpresp"
	"github.com/elvinmirzazada/salona-dashboard/internal/reports"
)

type ReportHandler struct {
	svc *reports.Service
}

func NewReportHandler(svc *reports.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Get serves the report for ?period=week|month|year|custom. Custom
// periods also take start_date/end_date. A stale report is flagged,
// never silently passed off as fresh.
func (h *ReportHandler) Get(c *gin.Context) {
	period := c.DefaultQuery("period", reports.PeriodWeek)

	report, stale, err := h.svc.Get(
		c.Request.Context(),
		period,
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.ReportResponse{Report: report, IsStale: stale})
}

// Refresh drops the cached entry and recomputes on the spot.
func (h *ReportHandler) Refresh(c *gin.Context) {
	period := c.DefaultQuery("period", reports.PeriodWeek)

	report, err := h.svc.Refresh(
		c.Request.Context(),
		period,
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.ReportResponse{Report: report})
}

// Clear empties the report cache (logout, company switch).
func (h *ReportHandler) Clear(c *gin.Context) {
	h.svc.Clear()
	httpresp.OK(c, gin.H{"cleared": true})
}
