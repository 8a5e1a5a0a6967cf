package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

// BossPhase is the encounter state
type BossPhase uint8

const (
	BossInactive BossPhase = iota
	BossActive
	BossVictory
	BossDefeat
)

func (p BossPhase) String() string {
	switch p {
	case BossInactive:
		return "inactive"
	case BossActive:
		return "active"
	case BossVictory:
		return "victory"
	case BossDefeat:
		return "defeat"
	}
	return "unknown"
}

// BossSystem runs the encounter state machine
// Inactive -> Active on score threshold, Active -> Victory on kill, Active -> Defeat on game over
// Victory and Defeat settle back to Inactive within the same resolution cycle
type BossSystem struct {
	world *engine.World

	phase  BossPhase
	minion engine.Handle

	statActive   *atomic.Bool
	statHP       *atomic.Int64
	statMinions  *atomic.Int64
	statVictory  *atomic.Int64
	statDefeated *atomic.Int64
}

func NewBossSystem(world *engine.World) engine.System {
	s := &BossSystem{
		world: world,
	}

	s.statActive = world.Status.Bools.Get("boss.active")
	s.statHP = world.Status.Ints.Get("boss.hp")
	s.statMinions = world.Status.Ints.Get("boss.minions")
	s.statVictory = world.Status.Ints.Get("boss.victories")
	s.statDefeated = world.Status.Ints.Get("boss.defeats")

	s.Init()
	return s
}

func (s *BossSystem) Init() {
	s.phase = BossInactive
	s.minion = engine.Handle{}
	s.statActive.Store(false)
	s.statHP.Store(0)
	s.statMinions.Store(0)
	s.statVictory.Store(0)
	s.statDefeated.Store(0)
}

func (s *BossSystem) Name() string {
	return "boss"
}

func (s *BossSystem) Priority() int {
	return parameter.PriorityBoss
}

func (s *BossSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBossKilled,
		event.EventGameOver,
		event.EventGameReset,
	}
}

func (s *BossSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventBossKilled:
		if payload, ok := ev.Payload.(*event.BossPayload); ok {
			s.victory(payload.ID)
		}
	case event.EventGameOver:
		s.defeat()
	}
}

// Phase returns the current encounter state
func (s *BossSystem) Phase() BossPhase {
	return s.phase
}

// Settle resolves a live boss whose kill or game over notification never arrived
// Returns true when a transition ran
func (s *BossSystem) Settle() bool {
	b := s.world.Store.Boss()
	switch {
	case b == nil:
		return false
	case !s.world.Active():
		s.defeat()
	case b.HP <= 0:
		s.victory(b.ID)
	default:
		return false
	}
	return true
}

func (s *BossSystem) Update() {
	if s.Settle() {
		return
	}
	if b := s.world.Store.Boss(); b != nil {
		s.statHP.Store(int64(b.HP))
		return
	}
	if !s.world.Active() {
		return
	}

	econ := s.world.Economy
	if econ.Score >= parameter.BossScoreInterval*(econ.BossesDefeated+1) {
		s.start()
	}
}

// start clears the field, spawns the boss and begins minion spawning
func (s *BossSystem) start() {
	w := s.world
	now := w.Now()

	w.Store.ClearField()
	w.Scheduler.CancelKind(engine.TaskRespawn)

	boss := component.Boss{
		ID:     w.Store.NewID(),
		Pos:    vmath.Vec2{X: w.Arena.MaxX / 2, Y: parameter.BossSpawnY},
		Radius: parameter.BossRadius,
		HP:     parameter.BossHP,
		MaxHP:  parameter.BossHP,
		VelX:   parameter.BossSpeed,
		Loot:   component.LootKind(w.Rand.Intn(int(component.LootCount))),
	}
	if !w.Store.SetBoss(boss) {
		return
	}

	s.phase = BossActive
	s.minion = w.Scheduler.Every(now, parameter.MinionInterval, engine.TaskMinion, s.spawnMinion)
	s.statActive.Store(true)
	s.statHP.Store(int64(boss.HP))

	w.PushEvent(event.EventBossSpawned, bossPayload(&boss))
}

// spawnMinion places a moving hazard away from the boss while fewer than the cap are live
func (s *BossSystem) spawnMinion(now time.Time) {
	w := s.world
	b := w.Store.Boss()
	if b == nil || !w.Active() || len(w.Store.Hazards) >= parameter.MinionMaxLive {
		return
	}

	area := w.Arena.Inset(parameter.HazardSpawnInset)
	clearance := b.Radius * parameter.MinionBossClearance
	for attempt := 0; attempt < parameter.MinionPlacementAttempts; attempt++ {
		pos := vmath.Vec2{
			X: area.MinX + w.Rand.Float64()*(area.MaxX-area.MinX),
			Y: area.MinY + w.Rand.Float64()*(area.MaxY-area.MinY),
		}
		if pos.Distance(b.Pos) < clearance {
			continue
		}

		h := component.Hazard{
			ID:        w.Store.NewID(),
			Pos:       pos,
			Radius:    parameter.MinionRadius,
			CreatedAt: now,
			Vel: vmath.Vec2{
				X: (w.Rand.Float64() - 0.5) * parameter.MinionSpeedSpread,
				Y: (w.Rand.Float64() - 0.5) * parameter.MinionSpeedSpread,
			},
			Minion: true,
		}
		w.Store.AddHazard(h)
		s.statMinions.Add(1)
		w.PushEvent(event.EventHazardSpawned, &event.HazardPayload{ID: h.ID, Pos: h.Pos, Minion: true})
		return
	}
}

// victory rewards the kill, schedules the loot grant and returns to normal play
func (s *BossSystem) victory(id component.EntityID) {
	w := s.world
	if !w.Store.BossAlive(id) {
		return
	}
	s.phase = BossVictory

	w.Scheduler.Cancel(s.minion)
	s.minion = engine.Handle{}

	boss, _ := w.Store.ClearBoss()
	w.Store.Hazards = w.Store.Hazards[:0]

	econ := w.Economy
	econ.AddMoney(parameter.BossVictoryMoney)
	econ.AddScore(parameter.BossVictoryScore)
	econ.BossesDefeated++

	loot := boss.Loot
	w.Scheduler.After(w.Now(), parameter.LootGrantDelay, engine.TaskLoot, func(time.Time) {
		s.grantLoot(loot)
	})

	s.statVictory.Add(1)
	s.statActive.Store(false)
	s.statHP.Store(0)

	w.PushEvent(event.EventBossVictory, bossPayload(&boss))
	w.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: econ.Score, Money: econ.Money})

	s.phase = BossInactive
}

// defeat ends a live encounter without loot when the game is lost
func (s *BossSystem) defeat() {
	w := s.world
	boss, ok := w.Store.ClearBoss()
	if !ok {
		return
	}
	s.phase = BossDefeat

	w.Scheduler.Cancel(s.minion)
	s.minion = engine.Handle{}
	w.Store.Hazards = w.Store.Hazards[:0]

	s.statDefeated.Add(1)
	s.statActive.Store(false)
	s.statHP.Store(0)

	w.PushEvent(event.EventBossDefeat, bossPayload(&boss))

	s.phase = BossInactive
}

func (s *BossSystem) grantLoot(kind component.LootKind) {
	w := s.world
	econ := w.Economy
	lives := econ.Lives

	payload := GrantLoot(econ, kind)
	if payload.Leveled {
		w.PushEvent(event.EventUpgradePurchased, &event.UpgradePayload{
			Kind:  payload.Upgrade,
			Level: econ.Level(payload.Upgrade),
		})
	}
	w.PushEvent(event.EventLootGranted, &payload)
	w.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: econ.Score, Money: econ.Money})
	if econ.Lives != lives {
		w.PushEvent(event.EventLivesChanged, &event.LivesPayload{Lives: econ.Lives})
	}
}

func bossPayload(b *component.Boss) *event.BossPayload {
	return &event.BossPayload{
		ID:    b.ID,
		Pos:   b.Pos,
		HP:    b.HP,
		MaxHP: b.MaxHP,
		Loot:  b.Loot,
	}
}
