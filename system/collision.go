package system

import (
	"sync/atomic"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

// CollisionSystem resolves projectile hits after physics has moved everything
// Each projectile is tested against boss, target, bonuses, then hazards; the first overlap consumes it
type CollisionSystem struct {
	world *engine.World

	statTargetHits *atomic.Int64
	statBonusHits  *atomic.Int64
	statBossHits   *atomic.Int64
	statExplosions *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		world: world,
	}

	s.statTargetHits = world.Status.Ints.Get("collision.target_hits")
	s.statBonusHits = world.Status.Ints.Get("collision.bonus_hits")
	s.statBossHits = world.Status.Ints.Get("collision.boss_hits")
	s.statExplosions = world.Status.Ints.Get("collision.explosions")

	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.statTargetHits.Store(0)
	s.statBonusHits.Store(0)
	s.statBossHits.Store(0)
	s.statExplosions.Store(0)
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *CollisionSystem) Update() {
	projectiles := s.world.Store.Projectiles
	kept := projectiles[:0]

	for i, p := range projectiles {
		// Game over mid-pass freezes the remaining shots
		if !s.world.Active() {
			kept = append(kept, projectiles[i:]...)
			break
		}
		if s.resolve(&p) {
			continue
		}
		kept = append(kept, p)
	}

	clear(projectiles[len(kept):])
	s.world.Store.Projectiles = kept
}

// resolve applies the first hit of p and reports whether p was consumed
// Every candidate is read from the store at test time so entities removed earlier in the cycle are never hit
func (s *CollisionSystem) resolve(p *component.Projectile) bool {
	store := s.world.Store

	if b := store.Boss(); b != nil && b.HP > 0 && vmath.CirclesOverlap(p.Pos, p.Radius, b.Pos, b.Radius) {
		s.hitBoss(b)
		return true
	}

	if t := store.Target(); t != nil && vmath.CirclesOverlap(p.Pos, p.Radius, t.Pos, t.Radius) {
		s.hitTarget()
		return true
	}

	for i := range store.Bonuses {
		bo := &store.Bonuses[i]
		if vmath.CirclesOverlap(p.Pos, p.Radius, bo.Pos, bo.Radius) {
			s.hitBonus(bo.ID)
			return true
		}
	}

	for i := range store.Hazards {
		h := &store.Hazards[i]
		if vmath.CirclesOverlap(p.Pos, p.Radius, h.Pos, h.Radius) {
			s.hitHazard(h.ID)
			return true
		}
	}

	return false
}

func (s *CollisionSystem) hitBoss(b *component.Boss) {
	b.HP--
	b.LastHit = s.world.Now()
	s.statBossHits.Add(1)

	payload := &event.BossPayload{
		ID:    b.ID,
		Pos:   b.Pos,
		HP:    b.HP,
		MaxHP: b.MaxHP,
		Loot:  b.Loot,
	}
	s.world.PushEvent(event.EventBossDamaged, payload)
	if b.HP <= 0 {
		s.world.PushEvent(event.EventBossKilled, payload)
	}
}

func (s *CollisionSystem) hitTarget() {
	t, ok := s.world.Store.ClearTarget()
	if !ok {
		return
	}

	econ := s.world.Economy
	value := t.Coin.Value()
	econ.AddMoney(value)
	econ.AddScore(1)
	s.statTargetHits.Add(1)

	s.world.PushEvent(event.EventTargetHit, &event.TargetPayload{
		ID:    t.ID,
		Pos:   t.Pos,
		Coin:  t.Coin,
		Value: value,
	})
	s.world.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: econ.Score, Money: econ.Money})
}

func (s *CollisionSystem) hitBonus(id component.EntityID) {
	bo := s.world.Store.FindBonus(id)
	if bo == nil {
		return
	}
	payload := &event.BonusPayload{ID: bo.ID, Pos: bo.Pos, Value: bo.Value}
	s.world.Store.RemoveBonus(id)

	econ := s.world.Economy
	econ.AddMoney(payload.Value)
	s.statBonusHits.Add(1)

	s.world.PushEvent(event.EventBonusHit, payload)
	s.world.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: econ.Score, Money: econ.Money})
}

func (s *CollisionSystem) hitHazard(id component.EntityID) {
	h := s.world.Store.FindHazard(id)
	if h == nil {
		return
	}
	payload := &event.HazardPayload{ID: h.ID, Pos: h.Pos, Minion: h.Minion}
	s.world.Store.RemoveHazard(id)

	econ := s.world.Economy
	lastLife := econ.LoseLife()
	s.statExplosions.Add(1)

	s.world.PushEvent(event.EventHazardExploded, payload)
	s.world.PushEvent(event.EventLivesChanged, &event.LivesPayload{Lives: econ.Lives})
	if lastLife {
		s.world.PushEvent(event.EventGameOver, &event.ScorePayload{Score: econ.Score, Money: econ.Money})
	}
}
