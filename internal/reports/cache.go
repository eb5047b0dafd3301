package reports

import (
	"sync"
	"time"

	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

// Cached reports stay fresh for five minutes; expired entries are evicted
// lazily on lookup.
const CacheTTL = 5 * time.Minute

// CacheKey derives the cache key: the period alone for predefined periods,
// period plus both dates for custom ranges.
func CacheKey(period, customStart, customEnd string) string {
	if period == PeriodCustom {
		return period + "|" + customStart + "|" + customEnd
	}
	return period
}

type Store interface {
	Get(key string) (models.ReportData, bool)
	Set(key string, data models.ReportData)
	Invalidate(key string)
	Clear()
}

// ======================================================
// MEMORY STORE
// ======================================================

type memoryEntry struct {
	data     models.ReportData
	storedAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(key string) (models.ReportData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return models.ReportData{}, false
	}
	if s.now().Sub(e.storedAt) > CacheTTL {
		delete(s.entries, key)
		return models.ReportData{}, false
	}
	return e.data, true
}

func (s *MemoryStore) Set(key string, data models.ReportData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{data: data, storedAt: s.now()}
}

func (s *MemoryStore) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]memoryEntry{}
}

// PurgeExpired drops expired entries eagerly. Lookup-time eviction stays
// authoritative; this only keeps the map from holding dead custom-range
// keys between lookups.
func (s *MemoryStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key, e := range s.entries {
		if s.now().Sub(e.storedAt) > CacheTTL {
			delete(s.entries, key)
			n++
		}
	}
	return n
}
