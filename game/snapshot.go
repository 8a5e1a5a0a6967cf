package game

import (
	"slices"
	"time"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/engine"
)

// UpgradeInfo is the purchase view of one upgrade track
type UpgradeInfo struct {
	Kind       component.UpgradeKind `msgpack:"kind"`
	Level      int                   `msgpack:"level"`
	MaxLevel   int                   `msgpack:"max_level"`
	Cost       int                   `msgpack:"cost"`
	Maxed      bool                  `msgpack:"maxed"`
	Affordable bool                  `msgpack:"affordable"`
}

// Snapshot is a read-only deep copy of the game for renderers and remote viewers
type Snapshot struct {
	Frame    int64     `msgpack:"frame"`
	Time     time.Time `msgpack:"time"`
	Paused   bool      `msgpack:"paused"`
	GameOver bool      `msgpack:"game_over"`

	Width  float64 `msgpack:"width"`
	Height float64 `msgpack:"height"`

	Score          int `msgpack:"score"`
	Money          int `msgpack:"money"`
	Lives          int `msgpack:"lives"`
	Best           int `msgpack:"best"`
	BossesDefeated int `msgpack:"bosses_defeated"`

	Upgrades []UpgradeInfo `msgpack:"upgrades"`

	Target      *component.Target       `msgpack:"target,omitempty"`
	Boss        *component.Boss         `msgpack:"boss,omitempty"`
	Bonuses     []component.BonusTarget `msgpack:"bonuses"`
	Hazards     []component.Hazard      `msgpack:"hazards"`
	Projectiles []component.Projectile  `msgpack:"projectiles"`
}

// Snapshot copies the current state under the world lock
func (g *Game) Snapshot() Snapshot {
	var snap Snapshot
	g.world.RunSafe(func() {
		w := g.world
		econ := w.Economy

		snap = Snapshot{
			Frame:          w.FrameNumber(),
			Time:           w.Now(),
			Paused:         g.clock.IsPaused(),
			GameOver:       econ.GameOver,
			Width:          w.Arena.MaxX,
			Height:         w.Arena.MaxY,
			Score:          econ.Score,
			Money:          econ.Money,
			Lives:          econ.Lives,
			Best:           g.best,
			BossesDefeated: econ.BossesDefeated,
			Upgrades:       upgradeView(econ),
			Bonuses:        slices.Clone(w.Store.Bonuses),
			Hazards:        slices.Clone(w.Store.Hazards),
			Projectiles:    slices.Clone(w.Store.Projectiles),
		}
		if t := w.Store.Target(); t != nil {
			c := *t
			snap.Target = &c
		}
		if b := w.Store.Boss(); b != nil {
			c := *b
			snap.Boss = &c
		}
	})
	return snap
}

func upgradeView(econ *engine.Economy) []UpgradeInfo {
	out := make([]UpgradeInfo, 0, component.UpgradeCount)
	for kind := component.UpgradeKind(0); kind < component.UpgradeCount; kind++ {
		info := UpgradeInfo{
			Kind:     kind,
			Level:    econ.Level(kind),
			MaxLevel: engine.MaxLevel(kind),
			Maxed:    econ.Maxed(kind),
		}
		if !info.Maxed {
			info.Cost = econ.Cost(kind)
			info.Affordable = econ.Money >= info.Cost
		}
		out = append(out, info)
	}
	return out
}
