package component

// LootKind is the reward a boss drops on victory
type LootKind uint8

const (
	LootHeart LootKind = iota
	LootCoins
	LootUpgrade
	LootCount // Sentinel for random selection
)

func (l LootKind) String() string {
	switch l {
	case LootHeart:
		return "heart"
	case LootCoins:
		return "coins"
	case LootUpgrade:
		return "upgrade"
	}
	return "unknown"
}
