package component

import (
	"time"

	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

// CoinKind is the denomination of a primary target
type CoinKind uint8

const (
	CoinBronze CoinKind = iota
	CoinSilver
	CoinGold
	CoinCount
)

// Value returns the currency a coin awards
func (c CoinKind) Value() int {
	switch c {
	case CoinBronze:
		return parameter.CoinBronzeValue
	case CoinSilver:
		return parameter.CoinSilverValue
	case CoinGold:
		return parameter.CoinGoldValue
	}
	return 0
}

func (c CoinKind) String() string {
	switch c {
	case CoinBronze:
		return "bronze"
	case CoinSilver:
		return "silver"
	case CoinGold:
		return "gold"
	}
	return "unknown"
}

// Target is the single primary collectible
// Moving switches on once and keeps the velocity drawn at that moment
type Target struct {
	ID        EntityID   `msgpack:"id"`
	Pos       vmath.Vec2 `msgpack:"pos"`
	Radius    float64    `msgpack:"r"`
	CreatedAt time.Time  `msgpack:"created_at"`
	Moving    bool       `msgpack:"moving"`
	Vel       vmath.Vec2 `msgpack:"vel"`
	Coin      CoinKind   `msgpack:"coin"`
}

// BonusTarget is a time-limited collectible awarding currency only
type BonusTarget struct {
	ID        EntityID   `msgpack:"id"`
	Pos       vmath.Vec2 `msgpack:"pos"`
	Radius    float64    `msgpack:"r"`
	CreatedAt time.Time  `msgpack:"created_at"`
	Value     int        `msgpack:"value"`
}
