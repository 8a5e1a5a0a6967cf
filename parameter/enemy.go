package parameter

import "time"

// Ordinary hazards
const (
	HazardRadius = 25.0

	// HazardMaxAge removes any hazard older than this during the frame update
	HazardMaxAge = 8000 * time.Millisecond

	HazardRollInterval = 1000 * time.Millisecond
	HazardSpawnChance  = 0.1

	// HazardMinScore gates the ordinary hazard roll
	HazardMinScore = 5

	// HazardMotionScore is the score from which new hazards move
	HazardMotionScore   = 10
	HazardSpeedBase     = 1.0
	HazardSpeedStep     = 0.5
	HazardSpeedInterval = 5
)

// Boss encounter
const (
	// BossScoreInterval triggers a boss every N points per defeated boss plus one
	BossScoreInterval = 20

	BossRadius = 70.0
	BossHP     = 50
	BossSpeed  = 2.5
	BossSpawnY = 120.0

	BossVictoryMoney = 200
	BossVictoryScore = 2

	// BossHitFlash is how long the hit timestamp counts as a recent hit for viewers
	BossHitFlash = 100 * time.Millisecond
)

// Boss minions
const (
	MinionInterval = 2000 * time.Millisecond
	MinionRadius   = 20.0
	MinionMaxLive  = 3

	// MinionSpeedSpread is the full width of the uniform velocity range per axis
	MinionSpeedSpread = 4.0

	// MinionBossClearance is the minimum spawn distance from the boss in boss radii
	MinionBossClearance = 2.0

	// MinionPlacementAttempts caps rejection sampling for minion placement
	MinionPlacementAttempts = 64
)
