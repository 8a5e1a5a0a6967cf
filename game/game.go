// Package game is the control surface of the engine: pose frames and timer ticks in, notifications out
package game

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/gesture"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/store"
	"github.com/lixenwraith/flicknfire/system"
)

// Listener receives notifications after each resolution cycle, outside the world lock
// Implementations must not block; slow consumers should hand off to their own goroutine
type Listener interface {
	OnEvent(ev event.GameEvent)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev event.GameEvent)

func (f ListenerFunc) OnEvent(ev event.GameEvent) { f(ev) }

// Options configure a Game
type Options struct {
	Settings engine.Settings
	Clock    engine.TimeProvider // Defaults to the monotonic clock
	Scores   store.ScoreStore    // Defaults to an in-memory store
	ScoreKey string              // Defaults to parameter.BestScoreKey
	Logger   zerolog.Logger
}

// Game owns the world and serializes every mutation through its lock
type Game struct {
	world       *engine.World
	clock       *engine.PausableClock
	router      *event.Router
	interpreter *gesture.Interpreter

	boss    *system.BossSystem
	economy *system.EconomySystem

	scores   store.ScoreStore
	scoreKey string
	best     int // Guarded by the world lock

	listenerMu sync.RWMutex
	listeners  []Listener

	log zerolog.Logger

	statFrames  *atomic.Int64
	statTicks   *atomic.Int64
	statEvents  *atomic.Int64
	statDropped *atomic.Int64
	dropped     uint64 // Queue overflow count already settled, guarded by the world lock
	statBest    *atomic.Int64
}

// New builds a game in its initial state and loads the persisted best score
// A failing score store is logged and treated as empty
func New(ctx context.Context, opts Options) *Game {
	base := opts.Clock
	if base == nil {
		base = engine.NewMonotonicTimeProvider()
	}
	if opts.Settings.ArenaWidth <= 0 || opts.Settings.ArenaHeight <= 0 {
		opts.Settings = engine.DefaultSettings()
	}
	if opts.Scores == nil {
		opts.Scores = store.NewMemory()
	}
	if opts.ScoreKey == "" {
		opts.ScoreKey = parameter.BestScoreKey
	}

	clock := engine.NewPausableClock(base)
	world := engine.NewWorld(opts.Settings, clock)

	g := &Game{
		world:       world,
		clock:       clock,
		router:      event.NewRouter(),
		interpreter: gesture.NewInterpreter(opts.Settings.ArenaWidth, opts.Settings.ArenaHeight, opts.Settings.Mirror),
		scores:      opts.Scores,
		scoreKey:    opts.ScoreKey,
		log:         opts.Logger.With().Str("component", "game").Logger(),
	}

	g.statFrames = world.Status.Ints.Get("game.frames")
	g.statTicks = world.Status.Ints.Get("game.ticks")
	g.statEvents = world.Status.Ints.Get("game.events")
	g.statDropped = world.Status.Ints.Get("game.events_dropped")
	g.statBest = world.Status.Ints.Get("game.best")

	g.boss = system.NewBossSystem(world).(*system.BossSystem)
	g.economy = system.NewEconomySystem(world).(*system.EconomySystem)
	systems := []engine.System{
		g.boss,
		system.NewSpawnSystem(world),
		system.NewPhysicsSystem(world),
		system.NewCollisionSystem(world),
		system.NewFireSystem(world),
		g.economy,
	}
	for _, s := range systems {
		world.AddSystem(s)
		if h, ok := s.(event.Handler); ok {
			g.router.Register(h)
		}
	}
	// Registered last so systems settle before lifecycle bookkeeping
	g.router.Register(&keeper{game: g})

	best, err := g.scores.Get(ctx, g.scoreKey)
	if err != nil {
		g.log.Error().Err(err).Str("key", g.scoreKey).Msg("best score load failed")
	}
	g.best = best
	g.statBest.Store(int64(best))

	return g
}

// Subscribe registers a notification consumer
func (g *Game) Subscribe(l Listener) {
	g.listenerMu.Lock()
	defer g.listenerMu.Unlock()
	g.listeners = append(g.listeners, l)
}

// Frame processes one pose frame: due timers, boss trigger, spawn, physics, collision, fire
// Ignored while paused or in game over
func (g *Game) Frame(f gesture.Frame) {
	var emitted []event.GameEvent

	g.world.RunSafe(func() {
		if g.clock.IsPaused() || !g.world.Active() {
			return
		}
		now := g.world.Sync()
		g.world.AdvanceFrame()
		g.statFrames.Add(1)

		g.world.Scheduler.RunDue(now)
		emitted = g.dispatchLocked(emitted)

		if g.world.Active() {
			g.world.Readings = g.interpreter.InterpretFrame(f)
			g.world.UpdateLocked()
			g.world.Readings = nil
		}
		emitted = g.dispatchLocked(emitted)
	})

	g.publish(emitted)
}

// Tick runs due timers only, driven by the clock driver between frames
func (g *Game) Tick() {
	var emitted []event.GameEvent

	g.world.RunSafe(func() {
		if g.clock.IsPaused() || !g.world.Active() {
			return
		}
		now := g.world.Sync()
		g.statTicks.Add(1)

		g.world.Scheduler.RunDue(now)
		emitted = g.dispatchLocked(emitted)
	})

	g.publish(emitted)
}

// Restart resets every piece of game state except the best score and cancels all scheduled work
func (g *Game) Restart() {
	var emitted []event.GameEvent

	g.world.RunSafe(func() {
		g.world.Sync()
		g.world.ResetState()
		g.world.PushEvent(event.EventGameReset, nil)
		emitted = g.dispatchLocked(emitted)
	})

	g.log.Info().Int("best", g.BestScore()).Msg("game restarted")
	g.publish(emitted)
}

// Purchase buys the next level of an upgrade track, false when it was a no-op
func (g *Game) Purchase(kind component.UpgradeKind) bool {
	var (
		emitted []event.GameEvent
		ok      bool
	)

	g.world.RunSafe(func() {
		g.world.Sync()
		ok = g.economy.Purchase(kind)
		emitted = g.dispatchLocked(emitted)
	})

	g.publish(emitted)
	return ok
}

// Pause freezes game time, frames and ticks are ignored until Resume
func (g *Game) Pause() {
	g.setPaused(true)
}

// Resume continues a paused game, pending timers keep their remaining time
func (g *Game) Resume() {
	g.setPaused(false)
}

func (g *Game) setPaused(paused bool) {
	var emitted []event.GameEvent

	g.world.RunSafe(func() {
		if g.clock.IsPaused() == paused {
			return
		}
		if paused {
			g.clock.Pause()
			g.world.PushEvent(event.EventPaused, nil)
		} else {
			g.clock.Resume()
			g.world.PushEvent(event.EventResumed, nil)
		}
		emitted = g.dispatchLocked(emitted)
	})

	g.publish(emitted)
}

// Paused reports whether game time is frozen
func (g *Game) Paused() bool {
	return g.clock.IsPaused()
}

// dispatchLocked routes queued events to systems until the queue settles or the round limit is hit
// Caller holds the world lock
// A queue overflow settles lifecycle transitions from state, since their notifications may be gone
func (g *Game) dispatchLocked(out []event.GameEvent) []event.GameEvent {
	start := len(out)
	out = g.drainLocked(out)

	if dropped := g.world.Events.Dropped(); dropped > g.dropped {
		g.log.Error().Uint64("lost", dropped-g.dropped).Msg("event queue overflow, settling state directly")
		g.dropped = dropped
		g.settleLocked()
		out = g.drainLocked(out)
	}

	if n := g.world.Events.Len(); n > 0 {
		g.log.Warn().Int("pending", n).Msg("event cycle limit reached")
	}
	g.statEvents.Add(int64(len(out) - start))
	g.statDropped.Store(int64(g.world.Events.Dropped()))
	return out
}

func (g *Game) drainLocked(out []event.GameEvent) []event.GameEvent {
	for round := 0; round < parameter.EventCycleLimit; round++ {
		evs := g.world.Events.Consume()
		if len(evs) == 0 {
			break
		}
		for _, ev := range evs {
			g.router.Dispatch(ev)
		}
		out = append(out, evs...)
	}
	return out
}

// settleLocked applies what game over and a boss kill would have triggered
func (g *Game) settleLocked() {
	if !g.world.Active() {
		g.world.Scheduler.CancelAll()
	}
	if g.boss.Settle() {
		g.log.Warn().Bool("game_over", !g.world.Active()).Msg("boss encounter settled without notification")
	}
}

// publish fans events out to listeners and persists a new best score
func (g *Game) publish(emitted []event.GameEvent) {
	if len(emitted) == 0 {
		return
	}

	g.listenerMu.RLock()
	listeners := g.listeners
	g.listenerMu.RUnlock()

	best := -1
	for _, ev := range emitted {
		if ev.Type == event.EventBestScore {
			if p, ok := ev.Payload.(*event.ScorePayload); ok {
				best = p.Score
			}
		}
		for _, l := range listeners {
			l.OnEvent(ev)
		}
	}

	if best >= 0 {
		ctx, cancel := context.WithTimeout(context.Background(), parameter.StoreWriteTimeout)
		defer cancel()
		if err := g.scores.Set(ctx, g.scoreKey, best); err != nil {
			g.log.Error().Err(err).Int("score", best).Msg("best score save failed")
		}
	}
}
