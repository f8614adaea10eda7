package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/taskbar-weather/internal/weather"
)

// Snapshot represents the latest completed fetch outcome.
type Snapshot struct {
	Reading             weather.Reading
	HasReading          bool
	LastUpdated         time.Time
	LastSuccess         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the service has failed repeatedly in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates from fetch units. Updates land in
// completion order; there is no sequence guard.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a fetch outcome. When err is non-nil the previous reading
// is kept but the error is recorded for visibility.
func (s *Store) Update(reading *weather.Reading, err error) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastUpdated = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return s.copyLocked()
	}

	if reading != nil {
		s.snapshot.Reading = *reading
		s.snapshot.HasReading = true
	}
	s.snapshot.LastSuccess = now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return s.copyLocked()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() Snapshot {
	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
