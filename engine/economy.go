package engine

import (
	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/parameter"
)

// Economy is the process-wide scoring, currency and upgrade state
// Money, Score and Lives never go negative; Lives stays within [0, LivesMax]
type Economy struct {
	Money int
	Score int
	Lives int

	BulletSpeedLevel int
	BurstLevel       int
	BulletsBounce    bool

	// BulletSpeed is the projectile speed the fire controller uses
	BulletSpeed float64

	// BonusValue is the value the next bonus target spawns with
	BonusValue int

	BossesDefeated int
	GameOver       bool
}

// NewEconomy returns the initial state of a fresh game
func NewEconomy() Economy {
	return Economy{
		Lives:       parameter.LivesStart,
		BulletSpeed: parameter.BulletSpeedBase,
		BonusValue:  parameter.BonusValueStart,
	}
}

// AddMoney adds n, clamping the balance at zero
func (e *Economy) AddMoney(n int) {
	e.Money = max(0, e.Money+n)
}

// AddScore adds a non-negative amount, score is monotonic within a game
func (e *Economy) AddScore(n int) {
	if n > 0 {
		e.Score += n
	}
}

// LoseLife removes one life; lastLife is true only on the transition into game over
func (e *Economy) LoseLife() (lastLife bool) {
	if e.GameOver || e.Lives <= 0 {
		return false
	}
	e.Lives--
	if e.Lives == 0 {
		e.GameOver = true
		return true
	}
	return false
}

// GainLife adds one life up to the cap, false when already capped
func (e *Economy) GainLife() bool {
	if e.Lives >= parameter.LivesMax {
		return false
	}
	e.Lives++
	return true
}

// BurstCount is the number of projectiles per trigger
func (e *Economy) BurstCount() int {
	return 1 + e.BurstLevel
}

// NextBonusValue returns the value for a new bonus target and escalates the next one
func (e *Economy) NextBonusValue() int {
	v := e.BonusValue
	e.BonusValue += parameter.BonusValueStep
	return v
}

// Level returns the current level of a track, bounce reports 0 or 1
func (e *Economy) Level(kind component.UpgradeKind) int {
	switch kind {
	case component.UpgradeBulletSpeed:
		return e.BulletSpeedLevel
	case component.UpgradeBurst:
		return e.BurstLevel
	case component.UpgradeBounce:
		if e.BulletsBounce {
			return 1
		}
	}
	return 0
}

// MaxLevel returns the cap of a track
func MaxLevel(kind component.UpgradeKind) int {
	switch kind {
	case component.UpgradeBulletSpeed:
		return parameter.BulletSpeedMaxLevel
	case component.UpgradeBurst:
		return parameter.BurstMaxLevel
	case component.UpgradeBounce:
		return 1
	}
	return 0
}

// Maxed reports whether no further level can be bought
func (e *Economy) Maxed(kind component.UpgradeKind) bool {
	return e.Level(kind) >= MaxLevel(kind)
}

// Cost returns the price of the next level of a track
func (e *Economy) Cost(kind component.UpgradeKind) int {
	switch kind {
	case component.UpgradeBulletSpeed:
		return parameter.BulletSpeedBaseCost + e.BulletSpeedLevel*parameter.BulletSpeedCostStep
	case component.UpgradeBurst:
		return parameter.BurstBaseCost + e.BurstLevel*parameter.BurstCostStep
	case component.UpgradeBounce:
		return parameter.BounceCost
	}
	return 0
}

// Buy charges and applies the next level of a track
// Insufficient funds or a maxed track leave state untouched and return false
func (e *Economy) Buy(kind component.UpgradeKind) (cost int, ok bool) {
	if kind >= component.UpgradeCount || e.Maxed(kind) {
		return 0, false
	}
	cost = e.Cost(kind)
	if e.Money < cost {
		return cost, false
	}
	e.Money -= cost
	e.applyLevel(kind)
	return cost, true
}

// GrantLevel applies the next level of a track for free, false when maxed
func (e *Economy) GrantLevel(kind component.UpgradeKind) bool {
	if kind >= component.UpgradeCount || e.Maxed(kind) {
		return false
	}
	e.applyLevel(kind)
	return true
}

func (e *Economy) applyLevel(kind component.UpgradeKind) {
	switch kind {
	case component.UpgradeBulletSpeed:
		e.BulletSpeedLevel++
		e.BulletSpeed += parameter.BulletSpeedStep
	case component.UpgradeBurst:
		e.BurstLevel++
	case component.UpgradeBounce:
		e.BulletsBounce = true
	}
}
