package services

import (
	"sync"
	"time"

	"filmroom/internal/ports"
)

// TimerScheduler implements ports.CloseScheduler with time.AfterFunc.
// Tasks are keyed by moment ID; scheduling for an ID that already has a
// pending task replaces it. A fired task re-checks its registration
// under the lock before running, so Cancel guarantees the callback will
// not start once it returns.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

var _ ports.CloseScheduler = (*TimerScheduler)(nil)

// NewTimerScheduler creates an empty scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[string]*time.Timer)}
}

// Schedule registers fn to run after the given delay, keyed by momentID.
func (s *TimerScheduler) Schedule(momentID string, after time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[momentID]; ok {
		existing.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(after, func() {
		s.mu.Lock()
		current, ok := s.timers[momentID]
		if !ok || current != t {
			// Cancelled or replaced between firing and acquiring the lock.
			s.mu.Unlock()
			return
		}
		delete(s.timers, momentID)
		s.mu.Unlock()
		fn()
	})
	s.timers[momentID] = t
}

// Cancel removes the pending task for momentID, if any.
func (s *TimerScheduler) Cancel(momentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[momentID]; ok {
		t.Stop()
		delete(s.timers, momentID)
	}
}

// Stop cancels all pending tasks.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
