package parameter

// Lives
const (
	LivesStart = 3
	LivesMax   = 5
)

// Bullet speed upgrade track
const (
	BulletSpeedMaxLevel = 3
	BulletSpeedBaseCost = 20
	BulletSpeedCostStep = 15
)

// Burst fire upgrade track
const (
	BurstMaxLevel = 10
	BurstBaseCost = 50
	BurstCostStep = 25
)

// BounceCost is the flat price of the one-time bouncing bullets upgrade
const BounceCost = 100

// BestScoreKey identifies the persisted best score
const BestScoreKey = "fnfHighScore"
