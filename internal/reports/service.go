package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/elvinmirzazada/salona-dashboard/internal/company"
	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

// BookingLister is the slice of the booking service the report layer needs.
type BookingLister interface {
	ListBookings(ctx context.Context, start, end *time.Time) ([]models.Booking, error)
}

// flight is one in-progress computation shared by concurrent callers.
type flight struct {
	done chan struct{}
	data models.ReportData
	err  error
}

// Service answers report requests through the cache, computing on miss.
// Concurrent misses for the same key share a single upstream fetch.
type Service struct {
	api      BookingLister
	store    Store
	settings *company.Settings
	log      *zap.Logger

	mu       sync.Mutex
	inflight map[string]*flight
	// Most recent successful report per key, regardless of TTL. Served
	// with a staleness flag when a recompute fails outright.
	lastGood map[string]models.ReportData

	now func() time.Time
}

func NewService(api BookingLister, store Store, settings *company.Settings, log *zap.Logger) *Service {
	return &Service{
		api:      api,
		store:    store,
		settings: settings,
		log:      log,
		inflight: map[string]*flight{},
		lastGood: map[string]models.ReportData{},
		now:      time.Now,
	}
}

// Get returns the report for a period. Custom ranges always recompute:
// their cache entry is dropped before the lookup so a stale custom report
// can never be served. When the recompute fails and an older report for
// the same key exists, that report is returned with stale=true instead of
// blanking the dashboard.
func (s *Service) Get(ctx context.Context, period, customStart, customEnd string) (data models.ReportData, stale bool, err error) {
	if !ValidPeriod(period) {
		return models.ReportData{}, false, httperr.ErrValidation("period", "expected week, month, year or custom")
	}

	key := CacheKey(period, customStart, customEnd)
	if period == PeriodCustom {
		s.store.Invalidate(key)
	}

	if data, ok := s.store.Get(key); ok {
		return data, false, nil
	}

	data, err = s.compute(ctx, key, period, customStart, customEnd)
	if err != nil {
		s.mu.Lock()
		old, ok := s.lastGood[key]
		s.mu.Unlock()
		if ok {
			return old, true, nil
		}
		return models.ReportData{}, false, err
	}
	return data, false, nil
}

// Refresh drops the cached entry and recomputes.
func (s *Service) Refresh(ctx context.Context, period, customStart, customEnd string) (models.ReportData, error) {
	if !ValidPeriod(period) {
		return models.ReportData{}, httperr.ErrValidation("period", "expected week, month, year or custom")
	}

	key := CacheKey(period, customStart, customEnd)
	s.store.Invalidate(key)
	return s.compute(ctx, key, period, customStart, customEnd)
}

// Clear empties the whole cache (logout, company switch).
func (s *Service) Clear() {
	s.store.Clear()
}

func (s *Service) compute(ctx context.Context, key, period, customStart, customEnd string) (models.ReportData, error) {
	s.mu.Lock()
	if f, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-f.done:
			return f.data, f.err
		case <-ctx.Done():
			return models.ReportData{}, ctx.Err()
		}
	}
	f := &flight{done: make(chan struct{})}
	s.inflight[key] = f
	s.mu.Unlock()

	f.data, f.err = s.build(ctx, period, customStart, customEnd)
	if f.err == nil {
		s.store.Set(key, f.data)
	}

	s.mu.Lock()
	if f.err == nil {
		s.lastGood[key] = f.data
	}
	delete(s.inflight, key)
	s.mu.Unlock()
	close(f.done)

	return f.data, f.err
}

// build fetches both windows and aggregates. Either window failing means
// no report at all; the caller may keep showing stale cached data.
func (s *Service) build(ctx context.Context, period, customStart, customEnd string) (models.ReportData, error) {
	zone := s.settings.Zone()

	start, end, err := Window(period, customStart, customEnd, zone, s.now())
	if err != nil {
		return models.ReportData{}, err
	}
	prevStart, prevEnd := PreviousWindow(start, end)

	current, err := s.api.ListBookings(ctx, &start, &end)
	if err != nil {
		s.log.Warn("report window fetch failed", zap.String("period", period), zap.Error(err))
		return models.ReportData{}, fmt.Errorf("%w: %v", httperr.ErrReportUnavailable, err)
	}

	previous, err := s.api.ListBookings(ctx, &prevStart, &prevEnd)
	if err != nil {
		s.log.Warn("previous window fetch failed", zap.String("period", period), zap.Error(err))
		return models.ReportData{}, fmt.Errorf("%w: %v", httperr.ErrReportUnavailable, err)
	}

	return Aggregate(current, previous, start, end, period, zone), nil
}
