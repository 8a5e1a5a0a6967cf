package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

// SpawnSystem creates and expires targets, bonus targets and ordinary hazards
// Timers: a timeout sweep, a hazard roll, and the one-shot respawn delay after a hit
type SpawnSystem struct {
	world *engine.World

	sweep   engine.Handle
	roll    engine.Handle
	respawn engine.Handle

	statTargets *atomic.Int64
	statExpired *atomic.Int64
	statBonuses *atomic.Int64
	statHazards *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world: world,
	}

	s.statTargets = world.Status.Ints.Get("spawn.targets")
	s.statExpired = world.Status.Ints.Get("spawn.expired")
	s.statBonuses = world.Status.Ints.Get("spawn.bonuses")
	s.statHazards = world.Status.Ints.Get("spawn.hazards")

	s.Init()
	return s
}

// Init restarts the periodic timers, any previous handles are assumed cancelled by the reset
func (s *SpawnSystem) Init() {
	w := s.world
	now := w.Now()

	w.Scheduler.Cancel(s.sweep)
	w.Scheduler.Cancel(s.roll)
	w.Scheduler.Cancel(s.respawn)

	s.sweep = w.Scheduler.Every(now, parameter.TimeoutSweepInterval, engine.TaskSweep, s.sweepTimeouts)
	s.roll = w.Scheduler.Every(now, parameter.HazardRollInterval, engine.TaskHazardRoll, s.rollHazard)
	s.respawn = engine.Handle{}

	s.statTargets.Store(0)
	s.statExpired.Store(0)
	s.statBonuses.Store(0)
	s.statHazards.Store(0)
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetHit,
		event.EventBonusRequest,
		event.EventBossVictory,
		event.EventGameOver,
		event.EventGameReset,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	w := s.world
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		s.SpawnTargetIfNone()

	case event.EventTargetHit:
		w.Scheduler.Cancel(s.respawn)
		s.respawn = w.Scheduler.After(w.Now(), parameter.TargetRespawnDelay, engine.TaskRespawn, func(time.Time) {
			s.SpawnTargetIfNone()
		})

	case event.EventBonusRequest:
		s.SpawnBonus()

	case event.EventBossVictory:
		s.SpawnTargetIfNone()

	case event.EventGameOver:
		w.Scheduler.Cancel(s.respawn)
		w.Scheduler.CancelKind(engine.TaskBurst)
		w.Scheduler.CancelKind(engine.TaskLoot)
	}
}

// Update keeps a target on the field when nothing is pending for it
func (s *SpawnSystem) Update() {
	if s.world.Scheduler.Pending(s.respawn) {
		return
	}
	s.SpawnTargetIfNone()
}

// SpawnTargetIfNone creates the primary target unless one is live, a boss is up or the game is over
func (s *SpawnSystem) SpawnTargetIfNone() bool {
	w := s.world
	if !w.Active() || w.Store.Boss() != nil || w.Store.Target() != nil {
		return false
	}

	t := component.Target{
		ID:        w.Store.NewID(),
		Pos:       s.randomPoint(parameter.TargetSpawnInset),
		Radius:    parameter.TargetRadius,
		CreatedAt: w.Now(),
		Coin:      component.CoinKind(w.Rand.Intn(int(component.CoinCount))),
	}
	if !w.Store.SetTarget(t) {
		return false
	}
	s.statTargets.Add(1)

	w.PushEvent(event.EventTargetSpawned, &event.TargetPayload{
		ID:    t.ID,
		Pos:   t.Pos,
		Coin:  t.Coin,
		Value: t.Coin.Value(),
	})
	return true
}

// SpawnBonus creates a bonus target with the next escalating value
func (s *SpawnSystem) SpawnBonus() bool {
	w := s.world
	if !w.Active() || w.Store.Boss() != nil {
		return false
	}

	bo := component.BonusTarget{
		ID:        w.Store.NewID(),
		Pos:       s.randomPoint(parameter.TargetSpawnInset),
		Radius:    parameter.TargetRadius,
		CreatedAt: w.Now(),
		Value:     w.Economy.NextBonusValue(),
	}
	w.Store.AddBonus(bo)
	s.statBonuses.Add(1)

	w.PushEvent(event.EventBonusSpawned, &event.BonusPayload{ID: bo.ID, Pos: bo.Pos, Value: bo.Value})
	return true
}

// sweepTimeouts expires the target and bonus targets that outlived their timeout
func (s *SpawnSystem) sweepTimeouts(now time.Time) {
	w := s.world
	if !w.Active() {
		return
	}

	if t := w.Store.Target(); t != nil && now.Sub(t.CreatedAt) > parameter.TargetTimeout {
		expired, _ := w.Store.ClearTarget()
		s.statExpired.Add(1)
		w.PushEvent(event.EventTargetExpired, &event.TargetPayload{
			ID:   expired.ID,
			Pos:  expired.Pos,
			Coin: expired.Coin,
		})
		s.SpawnTargetIfNone()
	}

	bonuses := w.Store.Bonuses
	kept := bonuses[:0]
	for _, bo := range bonuses {
		if now.Sub(bo.CreatedAt) > parameter.BonusTimeout {
			w.PushEvent(event.EventBonusExpired, &event.BonusPayload{ID: bo.ID, Pos: bo.Pos, Value: bo.Value})
			continue
		}
		kept = append(kept, bo)
	}
	clear(bonuses[len(kept):])
	w.Store.Bonuses = kept
}

// rollHazard spawns an ordinary hazard with low probability while the field has none
func (s *SpawnSystem) rollHazard(now time.Time) {
	w := s.world
	score := w.Economy.Score
	if !w.Active() || score < parameter.HazardMinScore || len(w.Store.Hazards) > 0 || w.Store.Boss() != nil {
		return
	}
	if w.Rand.Float64() >= parameter.HazardSpawnChance {
		return
	}

	h := component.Hazard{
		ID:        w.Store.NewID(),
		Pos:       s.randomPoint(parameter.HazardSpawnInset),
		Radius:    parameter.HazardRadius,
		CreatedAt: now,
	}
	if score >= parameter.HazardMotionScore {
		steps := (score - parameter.HazardMotionScore) / parameter.HazardSpeedInterval
		speed := parameter.HazardSpeedBase + float64(steps)*parameter.HazardSpeedStep
		h.Vel = vmath.FromAngle(w.Rand.Float64()*2*math.Pi, speed)
	}
	w.Store.AddHazard(h)
	s.statHazards.Add(1)

	w.PushEvent(event.EventHazardSpawned, &event.HazardPayload{ID: h.ID, Pos: h.Pos})
}

func (s *SpawnSystem) randomPoint(inset float64) vmath.Vec2 {
	area := s.world.Arena.Inset(inset)
	return vmath.Vec2{
		X: area.MinX + s.world.Rand.Float64()*(area.MaxX-area.MinX),
		Y: area.MinY + s.world.Rand.Float64()*(area.MaxY-area.MinY),
	}
}
