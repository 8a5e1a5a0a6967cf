package component

import "github.com/lixenwraith/flicknfire/vmath"

// Projectile is a player shot, consumed by its first hit
type Projectile struct {
	ID      EntityID   `msgpack:"id"`
	Pos     vmath.Vec2 `msgpack:"pos"`
	Vel     vmath.Vec2 `msgpack:"vel"`
	Radius  float64    `msgpack:"r"`
	Bounces int        `msgpack:"bounces"`
}
