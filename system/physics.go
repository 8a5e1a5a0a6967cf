package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

// PhysicsSystem advances every moving entity by one frame step
// Velocities are in pixels per frame, matching the pose feed cadence
type PhysicsSystem struct {
	world *engine.World

	statProjectiles *atomic.Int64
	statHazards     *atomic.Int64
	statPruned      *atomic.Int64
}

func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{
		world: world,
	}

	s.statProjectiles = world.Status.Ints.Get("physics.projectiles")
	s.statHazards = world.Status.Ints.Get("physics.hazards")
	s.statPruned = world.Status.Ints.Get("physics.pruned")

	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {
	s.statProjectiles.Store(0)
	s.statHazards.Store(0)
	s.statPruned.Store(0)
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *PhysicsSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *PhysicsSystem) Update() {
	if !s.world.Active() {
		return
	}

	s.moveTarget()
	s.moveHazards()
	s.moveBoss()
	s.moveProjectiles()

	s.statProjectiles.Store(int64(len(s.world.Store.Projectiles)))
	s.statHazards.Store(int64(len(s.world.Store.Hazards)))
}

// moveTarget starts target motion once the score threshold is reached and bounces it inside the margin
func (s *PhysicsSystem) moveTarget() {
	t := s.world.Store.Target()
	if t == nil {
		return
	}

	score := s.world.Economy.Score
	if score < parameter.TargetMotionScore {
		return
	}
	if !t.Moving {
		speed := parameter.TargetSpeedBase + float64(score-parameter.TargetMotionScore)*parameter.TargetSpeedPerScore
		t.Vel = vmath.FromAngle(s.world.Rand.Float64()*2*math.Pi, speed)
		t.Moving = true
	}

	t.Pos = t.Pos.Add(t.Vel)
	vmath.Reflect(t.Pos, &t.Vel, s.world.Arena.Inset(parameter.TargetBounceMargin))
}

// moveHazards bounces moving hazards within their radius and ages out old ones
func (s *PhysicsSystem) moveHazards() {
	now := s.world.Now()
	hazards := s.world.Store.Hazards
	kept := hazards[:0]

	for _, h := range hazards {
		if h.Moving() {
			h.Pos = h.Pos.Add(h.Vel)
			vmath.Reflect(h.Pos, &h.Vel, s.world.Arena.Inset(h.Radius))
		}

		if now.Sub(h.CreatedAt) > parameter.HazardMaxAge {
			s.world.PushEvent(event.EventHazardExpired, &event.HazardPayload{
				ID:     h.ID,
				Pos:    h.Pos,
				Minion: h.Minion,
			})
			continue
		}
		kept = append(kept, h)
	}

	clear(hazards[len(kept):])
	s.world.Store.Hazards = kept
}

// moveBoss oscillates the boss horizontally between its radius-bound edges
func (s *PhysicsSystem) moveBoss() {
	b := s.world.Store.Boss()
	if b == nil || b.HP <= 0 {
		return
	}

	b.Pos.X += b.VelX
	if b.Pos.X < b.Radius || b.Pos.X > s.world.Arena.MaxX-b.Radius {
		b.VelX = -b.VelX
	}
}

// moveProjectiles integrates shots and prunes those that escaped or exhausted their bounces
func (s *PhysicsSystem) moveProjectiles() {
	bounce := s.world.Economy.BulletsBounce
	escape := s.world.Arena.Inset(-parameter.ProjectileEscapeMargin)

	projectiles := s.world.Store.Projectiles
	kept := projectiles[:0]

	for _, p := range projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		if !p.Pos.IsFinite() {
			s.statPruned.Add(1)
			continue
		}

		if bounce {
			p.Bounces += vmath.ReflectInclusive(p.Pos, &p.Vel, s.world.Arena)
			if p.Bounces > parameter.ProjectileMaxBounces {
				s.statPruned.Add(1)
				continue
			}
		} else if !escape.Contains(p.Pos) {
			s.statPruned.Add(1)
			continue
		}
		kept = append(kept, p)
	}

	clear(projectiles[len(kept):])
	s.world.Store.Projectiles = kept
}
