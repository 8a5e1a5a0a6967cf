package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate  = 44100
	AudioBufferSize  = 100 * time.Millisecond
	AudioVolume      = 0.5
	AudioQueueLength = 64
)

// Cue durations
const (
	SparkDuration     = 30 * time.Millisecond
	CoinNoteDuration  = 60 * time.Millisecond
	CoinNoteGap       = 50 * time.Millisecond
	ExplosionDuration = 400 * time.Millisecond
	GameOverNote      = 160 * time.Millisecond
	GameOverNoteGap   = 180 * time.Millisecond
	CueAttack         = 5 * time.Millisecond
)
