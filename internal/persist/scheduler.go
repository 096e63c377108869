package persist

import (
	"sync"
	"time"
)

// Scheduler owns the auto-save debounce window. Scheduling again before the
// window elapses replaces the pending task, so a burst of edits collapses to
// one save. The interface exists so tests drive the window deterministically
// instead of sleeping.
type Scheduler interface {
	// Schedule runs fn after d, replacing any pending task.
	Schedule(d time.Duration, fn func())
	// Flush runs the pending task now, if any.
	Flush()
	// Stop discards the pending task.
	Stop()
}

// TimerScheduler is the wall-clock Scheduler used by the shipped editor.
type TimerScheduler struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

func NewTimerScheduler() *TimerScheduler { return &TimerScheduler{} }

func (s *TimerScheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = fn
	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		run := s.pending
		s.pending = nil
		s.timer = nil
		s.mu.Unlock()
		if run != nil {
			run()
		}
	})
}

func (s *TimerScheduler) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	run := s.pending
	s.pending = nil
	s.mu.Unlock()
	if run != nil {
		run()
	}
}

func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}

// ManualScheduler queues the pending task until Fire or Flush is called.
// Test-only; keeps debounce behavior independent of wall-clock timing.
type ManualScheduler struct {
	pending   func()
	Scheduled int
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) {
	s.pending = fn
	s.Scheduled++
}

// Fire simulates the quiet window elapsing.
func (s *ManualScheduler) Fire() {
	run := s.pending
	s.pending = nil
	if run != nil {
		run()
	}
}

func (s *ManualScheduler) Flush() { s.Fire() }

func (s *ManualScheduler) Stop() { s.pending = nil }

// Pending reports whether a task is waiting on the quiet window.
func (s *ManualScheduler) Pending() bool { return s.pending != nil }
