package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/gesture"
	"github.com/lixenwraith/flicknfire/status"
	"github.com/lixenwraith/flicknfire/vmath"
)

// System is a unit of per-frame game logic
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World is the single owner of all mutable game state
// Every mutation happens while updateMutex is held, which serializes frame callbacks and timers
type World struct {
	Store     *Store
	Economy   *Economy
	Scheduler *Scheduler
	Events    *event.EventQueue
	Status    *status.Registry
	Rand      *rand.Rand
	Settings  Settings
	Arena     vmath.Bounds

	// Readings holds the interpreted hands of the frame being processed
	Readings []gesture.Reading

	clock TimeProvider
	now   time.Time
	frame int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world in its initial state
func NewWorld(settings Settings, clock TimeProvider) *World {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	econ := NewEconomy()
	w := &World{
		Store:     NewStore(),
		Economy:   &econ,
		Scheduler: NewScheduler(),
		Events:    event.NewEventQueue(),
		Status:    status.NewRegistry(),
		Rand:      rand.New(rand.NewSource(settings.Seed)),
		Settings:  settings,
		Arena:     vmath.Rect(settings.ArenaWidth, settings.ArenaHeight),
		clock:     clock,
	}
	w.now = clock.Now()
	return w
}

// AddSystem adds a system and keeps systems sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// UpdateLocked runs all systems, caller holds the world lock
func (w *World) UpdateLocked() {
	for _, s := range w.systems {
		s.Update()
	}
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

func (w *World) Lock()   { w.updateMutex.Lock() }
func (w *World) Unlock() { w.updateMutex.Unlock() }

// Sync samples the clock, the sampled time is what systems see as now until the next Sync
func (w *World) Sync() time.Time {
	w.now = w.clock.Now()
	return w.now
}

// Now returns the time sampled by the last Sync
func (w *World) Now() time.Time {
	return w.now
}

// Clock returns the world time source
func (w *World) Clock() TimeProvider {
	return w.clock
}

// AdvanceFrame increments the frame counter, called once per pose frame
func (w *World) AdvanceFrame() int64 {
	w.frame++
	return w.frame
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.frame
}

// PushEvent emits a game event stamped with the current frame and time
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     w.frame,
		Timestamp: w.now,
	})
}

// Active reports whether gameplay may mutate the field
func (w *World) Active() bool {
	return !w.Economy.GameOver
}

// ResetState restores the initial game state and invalidates all scheduled work
// The frame counter and entity IDs continue so stale references never match
func (w *World) ResetState() {
	w.Scheduler.CancelAll()
	w.Store.Reset()
	*w.Economy = NewEconomy()
	w.Readings = nil
	_ = w.Events.Consume()
}
