package parameter

import "time"

// LootGrantDelay separates boss victory from loot resolution
const LootGrantDelay = 100 * time.Millisecond

// Loot rewards
const (
	LootCoinsBonus    = 50
	LootUpgradeRefund = 50
)
