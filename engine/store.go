package engine

import (
	"slices"

	"github.com/lixenwraith/flicknfire/component"
)

// Store owns the mutable entity collections
// Holds at most one Target and at most one Boss
type Store struct {
	target      *component.Target
	boss        *component.Boss
	Bonuses     []component.BonusTarget
	Hazards     []component.Hazard
	Projectiles []component.Projectile

	nextID component.EntityID
}

func NewStore() *Store {
	return &Store{}
}

// NewID reserves an entity ID, IDs keep increasing across resets
func (s *Store) NewID() component.EntityID {
	s.nextID++
	return s.nextID
}

// --- Target ---

// Target returns the live target or nil
func (s *Store) Target() *component.Target {
	return s.target
}

// SetTarget installs t as the live target, refused while one exists
func (s *Store) SetTarget(t component.Target) bool {
	if s.target != nil {
		return false
	}
	s.target = &t
	return true
}

// ClearTarget removes the live target and returns it
func (s *Store) ClearTarget() (component.Target, bool) {
	if s.target == nil {
		return component.Target{}, false
	}
	t := *s.target
	s.target = nil
	return t, true
}

// TargetAlive reports whether id is the live target
func (s *Store) TargetAlive(id component.EntityID) bool {
	return s.target != nil && s.target.ID == id
}

// --- Boss ---

// Boss returns the live boss or nil
func (s *Store) Boss() *component.Boss {
	return s.boss
}

// SetBoss installs b as the live boss, refused while one exists
func (s *Store) SetBoss(b component.Boss) bool {
	if s.boss != nil {
		return false
	}
	s.boss = &b
	return true
}

// ClearBoss removes the live boss and returns it
func (s *Store) ClearBoss() (component.Boss, bool) {
	if s.boss == nil {
		return component.Boss{}, false
	}
	b := *s.boss
	s.boss = nil
	return b, true
}

// BossAlive reports whether id is the live boss
func (s *Store) BossAlive(id component.EntityID) bool {
	return s.boss != nil && s.boss.ID == id
}

// --- Bonus targets ---

func (s *Store) AddBonus(b component.BonusTarget) {
	s.Bonuses = append(s.Bonuses, b)
}

// FindBonus returns the live bonus with id or nil
func (s *Store) FindBonus(id component.EntityID) *component.BonusTarget {
	for i := range s.Bonuses {
		if s.Bonuses[i].ID == id {
			return &s.Bonuses[i]
		}
	}
	return nil
}

// RemoveBonus deletes the bonus with id, false if already gone
func (s *Store) RemoveBonus(id component.EntityID) bool {
	n := len(s.Bonuses)
	s.Bonuses = slices.DeleteFunc(s.Bonuses, func(b component.BonusTarget) bool { return b.ID == id })
	return len(s.Bonuses) != n
}

// --- Hazards ---

func (s *Store) AddHazard(h component.Hazard) {
	s.Hazards = append(s.Hazards, h)
}

// FindHazard returns the live hazard with id or nil
func (s *Store) FindHazard(id component.EntityID) *component.Hazard {
	for i := range s.Hazards {
		if s.Hazards[i].ID == id {
			return &s.Hazards[i]
		}
	}
	return nil
}

// RemoveHazard deletes the hazard with id, false if already gone
func (s *Store) RemoveHazard(id component.EntityID) bool {
	n := len(s.Hazards)
	s.Hazards = slices.DeleteFunc(s.Hazards, func(h component.Hazard) bool { return h.ID == id })
	return len(s.Hazards) != n
}

// --- Projectiles ---

func (s *Store) AddProjectile(p component.Projectile) {
	s.Projectiles = append(s.Projectiles, p)
}

// FindProjectile returns the live projectile with id or nil
func (s *Store) FindProjectile(id component.EntityID) *component.Projectile {
	for i := range s.Projectiles {
		if s.Projectiles[i].ID == id {
			return &s.Projectiles[i]
		}
	}
	return nil
}

// RemoveProjectile deletes the projectile with id, false if already gone
func (s *Store) RemoveProjectile(id component.EntityID) bool {
	n := len(s.Projectiles)
	s.Projectiles = slices.DeleteFunc(s.Projectiles, func(p component.Projectile) bool { return p.ID == id })
	return len(s.Projectiles) != n
}

// --- Bulk ---

// ClearField drops target, bonuses and hazards, as a boss entrance does
func (s *Store) ClearField() {
	s.target = nil
	s.Bonuses = s.Bonuses[:0]
	s.Hazards = s.Hazards[:0]
}

// Reset drops every entity, the ID sequence continues
func (s *Store) Reset() {
	s.ClearField()
	s.boss = nil
	s.Projectiles = s.Projectiles[:0]
}
