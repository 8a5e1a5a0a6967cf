package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
)

// harness wires the full system set around a manual clock, mirroring the game resolution cycle
type harness struct {
	t      *testing.T
	world  *engine.World
	clock  *engine.MockTimeProvider
	router *event.Router

	physics   *PhysicsSystem
	collision *CollisionSystem
	fire      *FireSystem
	economy   *EconomySystem
	boss      *BossSystem
	spawn     *SpawnSystem

	seen []event.GameEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	world := engine.NewWorld(engine.DefaultSettings(), clock)

	h := &harness{
		t:      t,
		world:  world,
		clock:  clock,
		router: event.NewRouter(),
	}

	h.boss = NewBossSystem(world).(*BossSystem)
	h.physics = NewPhysicsSystem(world).(*PhysicsSystem)
	h.collision = NewCollisionSystem(world).(*CollisionSystem)
	h.fire = NewFireSystem(world).(*FireSystem)
	h.spawn = NewSpawnSystem(world).(*SpawnSystem)
	h.economy = NewEconomySystem(world).(*EconomySystem)

	for _, s := range []engine.System{h.boss, h.physics, h.collision, h.fire, h.spawn, h.economy} {
		world.AddSystem(s)
		h.router.Register(s.(event.Handler))
	}
	return h
}

// dispatch drains the queue through the router until it settles
func (h *harness) dispatch() {
	for round := 0; round < parameter.EventCycleLimit; round++ {
		evs := h.world.Events.Consume()
		if len(evs) == 0 {
			return
		}
		for _, ev := range evs {
			h.router.Dispatch(ev)
			h.seen = append(h.seen, ev)
		}
	}
}

// frame runs one full resolution cycle at the current clock time
func (h *harness) frame() {
	h.world.Sync()
	h.world.AdvanceFrame()
	h.world.Scheduler.RunDue(h.world.Now())
	h.dispatch()
	if h.world.Active() {
		h.world.UpdateLocked()
	}
	h.dispatch()
}

// tick runs timers only, as the clock driver does between frames
func (h *harness) tick() {
	h.world.Sync()
	h.world.Scheduler.RunDue(h.world.Now())
	h.dispatch()
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, ev := range h.seen {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (h *harness) reset() {
	h.world.ResetState()
	h.world.PushEvent(event.EventGameReset, nil)
	h.dispatch()
}
