package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/elvinmirzazada/salona-dashboard/internal/audit"
	"github.com/elvinmirzazada/salona-dashboard/internal/bookingapi"
	"github.com/elvinmirzazada/salona-dashboard/internal/calendar"
	"github.com/elvinmirzazada/salona-dashboard/internal/company"
	"github.com/elvinmirzazada/salona-dashboard/internal/handlers"
	"github.com/elvinmirzazada/salona-dashboard/internal/middleware"
	"github.com/elvinmirzazada/salona-dashboard/internal/reports"
)

type Deps struct {
	API        *bookingapi.Client
	Reconciler *calendar.Reconciler
	Reports    *reports.Service
	Settings   *company.Settings
	Logger     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(deps.Logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	calendarHandler := handlers.NewCalendarHandler(deps.Reconciler, deps.Settings)
	bookingHandler := handlers.NewBookingHandler(deps.Reconciler, deps.Settings, auditDispatcher)
	timeOffHandler := handlers.NewTimeOffHandler(deps.Reconciler, deps.Settings, auditDispatcher)
	reportHandler := handlers.NewReportHandler(deps.Reports)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings, deps.Reports, deps.API)

	api := r.Group("/api/v1")

	// ======================================================
	// CALENDAR
	// ======================================================
	cal := api.Group("/calendar")
	cal.GET("/events", calendarHandler.List)
	cal.POST("/filter", calendarHandler.Filter)
	cal.GET("/feed.ics", calendarHandler.Feed)

	// ======================================================
	// BOOKINGS
	// ======================================================
	bookings := api.Group("/bookings")
	bookings.POST("", bookingHandler.Create)
	bookings.PUT("/:id", bookingHandler.Update)
	bookings.PATCH("/:id/status", bookingHandler.UpdateStatus)
	bookings.POST("/:id/no-show", bookingHandler.NoShow)
	bookings.POST("/:id/complete", bookingHandler.Complete)
	bookings.DELETE("/:id", bookingHandler.Delete)

	// ======================================================
	// TIME OFFS
	// ======================================================
	timeOffs := api.Group("/time-offs")
	timeOffs.POST("", timeOffHandler.Create)
	timeOffs.PUT("/:id", timeOffHandler.Update)
	timeOffs.DELETE("/:id", timeOffHandler.Delete)

	// ======================================================
	// REPORTS
	// ======================================================
	reportsGroup := api.Group("/reports")
	reportsGroup.GET("", reportHandler.Get)
	reportsGroup.POST("/refresh", reportHandler.Refresh)
	reportsGroup.POST("/clear", reportHandler.Clear)

	// ======================================================
	// SETTINGS
	// ======================================================
	settings := api.Group("/settings")
	settings.GET("", settingsHandler.Get)
	settings.PUT("/timezone", settingsHandler.UpdateTimezone)

	api.GET("/customers", settingsHandler.Customers)
}
