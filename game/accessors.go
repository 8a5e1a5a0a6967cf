package game

import (
	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/status"
	"github.com/lixenwraith/flicknfire/system"
)

func (g *Game) Score() (v int) {
	g.world.RunSafe(func() { v = g.world.Economy.Score })
	return v
}

func (g *Game) Money() (v int) {
	g.world.RunSafe(func() { v = g.world.Economy.Money })
	return v
}

func (g *Game) Lives() (v int) {
	g.world.RunSafe(func() { v = g.world.Economy.Lives })
	return v
}

func (g *Game) GameOver() (v bool) {
	g.world.RunSafe(func() { v = g.world.Economy.GameOver })
	return v
}

func (g *Game) BestScore() (v int) {
	g.world.RunSafe(func() { v = g.best })
	return v
}

func (g *Game) BossesDefeated() (v int) {
	g.world.RunSafe(func() { v = g.world.Economy.BossesDefeated })
	return v
}

// Level returns the current level of an upgrade track
func (g *Game) Level(kind component.UpgradeKind) (v int) {
	g.world.RunSafe(func() { v = g.world.Economy.Level(kind) })
	return v
}

// Cost returns the next price of an upgrade track, zero when maxed
func (g *Game) Cost(kind component.UpgradeKind) (v int) {
	g.world.RunSafe(func() {
		if !g.world.Economy.Maxed(kind) {
			v = g.world.Economy.Cost(kind)
		}
	})
	return v
}

// Upgrades returns the purchase view of every track
func (g *Game) Upgrades() (v []UpgradeInfo) {
	g.world.RunSafe(func() { v = upgradeView(g.world.Economy) })
	return v
}

// BossPhase returns the encounter state
func (g *Game) BossPhase() (v system.BossPhase) {
	g.world.RunSafe(func() { v = g.boss.Phase() })
	return v
}

// Status returns the metrics registry, safe to read without the world lock
func (g *Game) Status() *status.Registry {
	return g.world.Status
}
