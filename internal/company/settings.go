package company

import (
	"sync"

	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/timezone"
)

// Settings owns the active company timezone. Set once at session start,
// updated when company settings change, and read through Zone() by every
// layer that converts times. Nothing caches the zone internally.
type Settings struct {
	mu   sync.RWMutex
	zone string
}

func NewSettings(zone string) *Settings {
	if !timezone.IsValid(zone) {
		zone = timezone.DefaultTimezone
	}
	return &Settings{zone: zone}
}

func (s *Settings) Zone() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zone
}

func (s *Settings) SetZone(zone string) error {
	if !timezone.IsValid(zone) {
		return httperr.ErrValidation("timezone", "unknown IANA timezone identifier")
	}

	s.mu.Lock()
	s.zone = zone
	s.mu.Unlock()
	return nil
}
