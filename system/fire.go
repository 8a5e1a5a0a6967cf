package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/gesture"
	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

// FireSystem turns firing poses into staggered projectile bursts
// Each hand has its own cooldown; a burst shares one origin and velocity fixed at trigger time
type FireSystem struct {
	world *engine.World

	lastFire [gesture.HandCount]time.Time

	statTriggers    *atomic.Int64
	statProjectiles *atomic.Int64
}

func NewFireSystem(world *engine.World) engine.System {
	s := &FireSystem{
		world: world,
	}

	s.statTriggers = world.Status.Ints.Get("fire.triggers")
	s.statProjectiles = world.Status.Ints.Get("fire.projectiles")

	s.Init()
	return s
}

func (s *FireSystem) Init() {
	s.lastFire = [gesture.HandCount]time.Time{}
	s.statTriggers.Store(0)
	s.statProjectiles.Store(0)
}

func (s *FireSystem) Name() string {
	return "fire"
}

func (s *FireSystem) Priority() int {
	return parameter.PriorityFire
}

func (s *FireSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *FireSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *FireSystem) Update() {
	if !s.world.Active() {
		return
	}
	now := s.world.Now()
	for _, r := range s.world.Readings {
		if r.Firing {
			s.Trigger(r.Hand, r.Origin, r.Aim, now)
		}
	}
}

// Trigger fires a burst from hand unless the hand is cooling down, reports whether it fired
func (s *FireSystem) Trigger(hand gesture.Handedness, origin, aim vmath.Vec2, now time.Time) bool {
	if hand >= gesture.HandCount || !s.world.Active() {
		return false
	}

	last := s.lastFire[hand]
	if !last.IsZero() && now.Sub(last) < s.world.Settings.FireCooldown {
		return false
	}
	s.lastFire[hand] = now

	econ := s.world.Economy
	vel := aim.Scale(econ.BulletSpeed)
	burst := econ.BurstCount()

	s.spawn(origin, vel)
	for j := 1; j < burst; j++ {
		s.world.Scheduler.After(now, time.Duration(j)*parameter.BurstStagger, engine.TaskBurst, func(time.Time) {
			if s.world.Active() {
				s.spawn(origin, vel)
			}
		})
	}

	s.statTriggers.Add(1)
	s.world.PushEvent(event.EventFireCue, &event.FireCuePayload{
		Hand:   hand,
		Origin: origin,
		Burst:  burst,
	})
	return true
}

func (s *FireSystem) spawn(origin, vel vmath.Vec2) {
	p := component.Projectile{
		ID:     s.world.Store.NewID(),
		Pos:    origin,
		Vel:    vel,
		Radius: parameter.ProjectileRadius,
	}
	s.world.Store.AddProjectile(p)
	s.statProjectiles.Add(1)

	s.world.PushEvent(event.EventProjectileSpawned, &event.ProjectilePayload{
		ID:     p.ID,
		Origin: origin,
		Vel:    vel,
	})
}
