package parameter

import "time"

// Fire control
const (
	// FireCooldown is the minimum interval between bursts of one hand
	FireCooldown = 1000 * time.Millisecond

	// BurstStagger offsets each projectile of a burst in creation time
	BurstStagger = 100 * time.Millisecond

	// BulletSpeedBase is the projectile speed in pixels per frame before upgrades
	BulletSpeedBase = 35.0

	// BulletSpeedStep is added per bullet speed level
	BulletSpeedStep = 10.0

	ProjectileRadius = 7.0
)

// Projectile bounds handling
const (
	// ProjectileEscapeMargin is how far past the edge a non-bouncing projectile may travel
	ProjectileEscapeMargin = 50.0

	// ProjectileMaxBounces is the bounce count a bouncing projectile may reach; one more removes it
	ProjectileMaxBounces = 2
)
