package state

import (
	"sync"

	"github.com/noah-isme/study-planner/internal/models"
)

// TimetableStore holds the single latest timetable for the process.
//
// Every network call that may replace the timetable first takes a generation
// token with Begin. Install only accepts a timetable whose token is at least
// as new as the last installed one, so a slow early response cannot
// overwrite the result of a later request that already landed.
type TimetableStore struct {
	mu        sync.Mutex
	latest    models.Timetable
	present   bool
	issued    uint64
	installed uint64
}

// NewTimetableStore returns an empty store.
func NewTimetableStore() *TimetableStore {
	return &TimetableStore{}
}

// Begin issues the next generation token. Call it before starting the
// network operation whose result may be installed.
func (s *TimetableStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Install replaces the latest timetable when the token is current. It
// reports false for stale responses, which callers discard.
func (s *TimetableStore) Install(token uint64, tt models.Timetable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token < s.installed {
		return false
	}
	s.installed = token
	s.latest = tt
	s.present = true
	return true
}

// Snapshot returns the latest timetable and whether one exists. The map is
// copied so renderers can iterate without holding the lock; slot slices are
// shared and treated as read-only by every consumer.
func (s *TimetableStore) Snapshot() (models.Timetable, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return nil, false
	}
	copied := make(models.Timetable, len(s.latest))
	for date, slots := range s.latest {
		copied[date] = slots
	}
	return copied, true
}
