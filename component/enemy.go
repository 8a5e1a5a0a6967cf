package component

import (
	"time"

	"github.com/lixenwraith/flicknfire/vmath"
)

// Hazard costs a life when shot
// Zero Vel means stationary
type Hazard struct {
	ID        EntityID   `msgpack:"id"`
	Pos       vmath.Vec2 `msgpack:"pos"`
	Radius    float64    `msgpack:"r"`
	CreatedAt time.Time  `msgpack:"created_at"`
	Vel       vmath.Vec2 `msgpack:"vel"`
	Minion    bool       `msgpack:"minion"`
}

// Moving reports whether the hazard has an assigned velocity
func (h *Hazard) Moving() bool {
	return h.Vel.X != 0 || h.Vel.Y != 0
}

// Boss is the singleton encounter entity, oscillating horizontally
type Boss struct {
	ID      EntityID   `msgpack:"id"`
	Pos     vmath.Vec2 `msgpack:"pos"`
	Radius  float64    `msgpack:"r"`
	HP      int        `msgpack:"hp"`
	MaxHP   int        `msgpack:"max_hp"`
	VelX    float64    `msgpack:"vx"`
	LastHit time.Time  `msgpack:"last_hit"`
	Loot    LootKind   `msgpack:"loot"`
}
