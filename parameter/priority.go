package parameter

// System execution priorities, lower runs first within a frame
// Boss entrance clears the field before spawn keeps a target on it, and physics always precedes collision
const (
	PriorityBoss      = 10
	PrioritySpawn     = 15
	PriorityPhysics   = 20
	PriorityCollision = 30
	PriorityFire      = 40
	PriorityEconomy   = 60
)
