package parameter

import "time"

const TargetRadius = 25.0

// Coin values
const (
	CoinBronzeValue = 5
	CoinSilverValue = 10
	CoinGoldValue   = 20
)

// Target lifecycle
const (
	TargetTimeout      = 5000 * time.Millisecond
	TargetRespawnDelay = 400 * time.Millisecond
	BonusTimeout       = 10000 * time.Millisecond

	// TimeoutSweepInterval is the period of the target and bonus expiry sweep
	TimeoutSweepInterval = 300 * time.Millisecond
)

// Bonus targets
const (
	BonusValueStart = 50
	BonusValueStep  = 5

	// BonusSpawnChance is rolled after every successful upgrade purchase
	BonusSpawnChance = 0.1
)

// Target motion unlocks at a score threshold and speeds up with score
const (
	TargetMotionScore   = 3
	TargetSpeedBase     = 4.0
	TargetSpeedPerScore = 0.4
	// TargetBounceMargin keeps a moving target this far inside the arena edges
	TargetBounceMargin = 50.0
)
