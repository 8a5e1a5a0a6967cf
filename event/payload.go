package event

import (
	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/gesture"
	"github.com/lixenwraith/flicknfire/vmath"
)

// FireCuePayload describes an accepted fire trigger
type FireCuePayload struct {
	Hand   gesture.Handedness `msgpack:"hand"`
	Origin vmath.Vec2         `msgpack:"origin"`
	Burst  int                `msgpack:"burst"`
}

// ProjectilePayload identifies a spawned projectile
type ProjectilePayload struct {
	ID     component.EntityID `msgpack:"id"`
	Origin vmath.Vec2         `msgpack:"origin"`
	Vel    vmath.Vec2         `msgpack:"vel"`
}

// TargetPayload describes a primary target at the moment of the event
type TargetPayload struct {
	ID    component.EntityID `msgpack:"id"`
	Pos   vmath.Vec2         `msgpack:"pos"`
	Coin  component.CoinKind `msgpack:"coin"`
	Value int                `msgpack:"value"`
}

// BonusPayload describes a bonus target
type BonusPayload struct {
	ID    component.EntityID `msgpack:"id"`
	Pos   vmath.Vec2         `msgpack:"pos"`
	Value int                `msgpack:"value"`
}

// HazardPayload describes a hazard
type HazardPayload struct {
	ID     component.EntityID `msgpack:"id"`
	Pos    vmath.Vec2         `msgpack:"pos"`
	Minion bool               `msgpack:"minion"`
}

// BossPayload describes the boss at the moment of the event
type BossPayload struct {
	ID    component.EntityID `msgpack:"id"`
	Pos   vmath.Vec2         `msgpack:"pos"`
	HP    int                `msgpack:"hp"`
	MaxHP int                `msgpack:"max_hp"`
	Loot  component.LootKind `msgpack:"loot"`
}

// LootPayload describes resolved loot
// Upgrade is set only when Kind is LootUpgrade and a level was granted
type LootPayload struct {
	Kind    component.LootKind    `msgpack:"kind"`
	Upgrade component.UpgradeKind `msgpack:"upgrade"`
	Leveled bool                  `msgpack:"leveled"`
	Money   int                   `msgpack:"money"`
	Lives   int                   `msgpack:"lives"`
}

// UpgradePayload describes a purchased level
type UpgradePayload struct {
	Kind  component.UpgradeKind `msgpack:"kind"`
	Level int                   `msgpack:"level"`
	Cost  int                   `msgpack:"cost"`
}

// ScorePayload carries the economy totals after a change
type ScorePayload struct {
	Score int `msgpack:"score"`
	Money int `msgpack:"money"`
}

// LivesPayload carries remaining lives
type LivesPayload struct {
	Lives int `msgpack:"lives"`
}
