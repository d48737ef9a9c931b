// Package anim provides the frame scheduling and spring physics primitives
// shared by the animated components.
package anim

import (
	"sync"
	"time"
)

// Handle identifies one scheduled frame callback.
type Handle uint64

// Scheduler schedules a single frame callback to run before the next
// repaint. Owners keep at most one callback pending at a time; rescheduling
// happens from inside the callback. Substituting a ManualScheduler makes
// animation loops fully deterministic in tests.
type Scheduler interface {
	Schedule(fn func(now time.Time)) Handle
	Cancel(handle Handle)
}

// TimerScheduler drives frames from real timers at a fixed interval.
type TimerScheduler struct {
	interval time.Duration

	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// NewTimerScheduler creates a scheduler firing every interval. Intervals
// of zero or below fall back to roughly 30 frames per second.
func NewTimerScheduler(interval time.Duration) *TimerScheduler {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &TimerScheduler{
		interval: interval,
		timers:   make(map[Handle]*time.Timer),
	}
}

// Schedule arms a timer for the next frame.
func (s *TimerScheduler) Schedule(fn func(now time.Time)) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	handle := s.next
	s.timers[handle] = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		delete(s.timers, handle)
		s.mu.Unlock()
		fn(time.Now())
	})
	return handle
}

// Cancel stops a pending frame. Cancelling an already-fired or unknown
// handle is a no-op.
func (s *TimerScheduler) Cancel(handle Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[handle]; ok {
		timer.Stop()
		delete(s.timers, handle)
	}
}

// Stop cancels every pending frame.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for handle, timer := range s.timers {
		timer.Stop()
		delete(s.timers, handle)
	}
}

// ManualScheduler queues callbacks and fires them only when told to,
// giving tests full control over frame timing.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	next    Handle
	pending map[Handle]func(time.Time)
}

// NewManualScheduler creates a manual scheduler starting at the given time.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{
		now:     start,
		pending: make(map[Handle]func(time.Time)),
	}
}

// Schedule queues a callback until the next Advance.
func (s *ManualScheduler) Schedule(fn func(now time.Time)) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.pending[s.next] = fn
	return s.next
}

// Cancel drops a queued callback.
func (s *ManualScheduler) Cancel(handle Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, handle)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves the clock forward and fires everything that was queued
// before the call. Callbacks rescheduling themselves land in the next
// Advance, mirroring how a real frame loop reschedules between repaints.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	now := s.now
	batch := s.pending
	s.pending = make(map[Handle]func(time.Time))
	s.mu.Unlock()

	for _, fn := range batch {
		fn(now)
	}
}
