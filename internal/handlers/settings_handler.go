package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elvinmirzazada/salona-dashboard/internal/bookingapi"
	"github.com/elvinmirzazada/salona-dashboard/internal/company"
	"github.com/elvinmirzazada/salona-dashboard/internal/dto"
	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/httpresp"
	"github.com/elvinmirzazada/salona-dashboard/internal/reports"
)

type SettingsHandler struct {
	settings *company.Settings
	reports  *reports.Service
	api      *bookingapi.Client
}

func NewSettingsHandler(settings *company.Settings, reports *reports.Service, api *bookingapi.Client) *SettingsHandler {
	return &SettingsHandler{settings: settings, reports: reports, api: api}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{"timezone": h.settings.Zone()})
}

// UpdateTimezone swaps the active company zone. Cached reports were
// bucketed in the old zone, so the cache goes with it.
func (h *SettingsHandler) UpdateTimezone(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	if err := h.settings.SetZone(req.Timezone); err != nil {
		httperr.FromError(c, err)
		return
	}

	h.reports.Clear()
	httpresp.OK(c, gin.H{"timezone": h.settings.Zone()})
}

// Customers passes the customer directory through, for name resolution in
// booking forms only.
func (h *SettingsHandler) Customers(c *gin.Context) {
	customers, err := h.api.ListCustomers(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, customers)
}
