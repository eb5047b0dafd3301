package dto

import "github.com/elvinmirzazada/salona-dashboard/internal/models"

type ReportResponse struct {
	Report  models.ReportData `json:"report"`
	IsStale bool              `json:"is_stale"`
}

type SettingsRequest struct {
	Timezone string `json:"timezone" binding:"required"`
}
