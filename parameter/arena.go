package parameter

// Play area defaults, matching the 1280x720 camera feed the pose pipeline delivers
const (
	ArenaWidth  = 1280.0
	ArenaHeight = 720.0
)

// Spawn insets keep freshly spawned entities away from the edges
const (
	TargetSpawnInset = 100.0
	HazardSpawnInset = 50.0
)
