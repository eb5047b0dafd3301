package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/elvinmirzazada/salona-dashboard/internal/bookingapi"
	"github.com/elvinmirzazada/salona-dashboard/internal/calendar"
	"github.com/elvinmirzazada/salona-dashboard/internal/company"
	"github.com/elvinmirzazada/salona-dashboard/internal/config"
	"github.com/elvinmirzazada/salona-dashboard/internal/logging"
	"github.com/elvinmirzazada/salona-dashboard/internal/reports"
	"github.com/elvinmirzazada/salona-dashboard/internal/routes"
)

func main() {

	cfg := config.Load()

	logging.Init(cfg.IsProduction())
	logger := logging.L()
	defer logger.Sync()

	api := bookingapi.New(cfg.BookingAPIBaseURL, cfg.BookingAPITimeout, logger)
	settings := company.NewSettings(cfg.CompanyTimezone)
	reconciler := calendar.NewReconciler(api, logger)

	store, janitor := newReportStore(cfg, logger)
	reportSvc := reports.NewService(api, store, settings, logger)

	if janitor != nil {
		janitor.Start()
		defer janitor.Stop()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		API:        api,
		Reconciler: reconciler,
		Reports:    reportSvc,
		Settings:   settings,
		Logger:     logger,
	})

	logger.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("booking_api", cfg.BookingAPIBaseURL),
		zap.String("timezone", settings.Zone()),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newReportStore picks the cache backend. The memory store gets a cron
// janitor so expired custom-range keys don't pile up between lookups.
func newReportStore(cfg *config.Config, logger *zap.Logger) (reports.Store, *cron.Cron) {
	if cfg.CacheBackend == "redis" {
		store, err := reports.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
		if err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		return store, nil
	}

	store := reports.NewMemoryStore()
	c := cron.New()
	if _, err := c.AddFunc("@every 1m", func() {
		if n := store.PurgeExpired(); n > 0 {
			logger.Debug("purged expired report entries", zap.Int("count", n))
		}
	}); err != nil {
		log.Fatalf("failed to schedule cache janitor: %v", err)
	}
	return store, c
}
