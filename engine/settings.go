package engine

import (
	"time"

	"github.com/lixenwraith/flicknfire/parameter"
)

// Settings are the tunables a host may override at construction
type Settings struct {
	ArenaWidth   float64
	ArenaHeight  float64
	FireCooldown time.Duration
	Mirror       bool
	Seed         int64
}

// DefaultSettings returns the stock arena and timing
func DefaultSettings() Settings {
	return Settings{
		ArenaWidth:   parameter.ArenaWidth,
		ArenaHeight:  parameter.ArenaHeight,
		FireCooldown: parameter.FireCooldown,
		Mirror:       true,
		Seed:         1,
	}
}
