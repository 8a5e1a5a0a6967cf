package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that freezes while paused
// Game time = base elapsed - total paused time, anchored at the base start
type PausableClock struct {
	mu sync.RWMutex

	base      TimeProvider
	baseStart time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a clock over base, nil uses the monotonic wall clock
func NewPausableClock(base TimeProvider) *PausableClock {
	if base == nil {
		base = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		base:      base,
		baseStart: base.Now(),
	}
}

// Now returns current game time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	ref := pc.base.Now()
	if pc.paused {
		ref = pc.pauseStart
	}
	return pc.baseStart.Add(ref.Sub(pc.baseStart) - pc.totalPaused)
}

// RealTime returns the base clock time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.base.Now()
}

// Pause stops game time advancement, repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.base.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.base.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.totalPaused
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStart)
	}
	return total
}
