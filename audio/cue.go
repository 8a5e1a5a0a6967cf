package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
)

// Cue is a short synthesized sound tied to a gameplay notification
type Cue int

const (
	CueNone Cue = iota
	CueSpark
	CueCoin
	CueBonus
	CueExplosion
	CueBossHit
	CueFanfare
	CueGameOver
	cueCount
)

var cueNames = [cueCount]string{"none", "spark", "coin", "bonus", "explosion", "boss_hit", "fanfare", "game_over"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

const cueAttack = parameter.CueAttack

// Note frequencies
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteB5 = 987.77
	noteC6 = 1046.50
	noteE6 = 1318.51
	noteA4 = 440.0
	noteF4 = 349.23
	noteD4 = 293.66
	noteA3 = 220.0
)

// CueFor maps a notification to its cue, CueNone for silent events
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventFireCue:
		return CueSpark
	case event.EventTargetHit:
		return CueCoin
	case event.EventBonusHit:
		return CueBonus
	case event.EventHazardExploded:
		return CueExplosion
	case event.EventBossDamaged:
		return CueBossHit
	case event.EventBossVictory:
		return CueFanfare
	case event.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// Synthesize builds the streamer for a cue at the given linear gain
// Coin pitch rises with the coin denomination of a target hit
func Synthesize(c Cue, ev event.GameEvent, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueSpark:
		s = NewEnvelope(NewOscillator(0, parameter.SparkDuration, WaveNoise, rate),
			parameter.SparkDuration, cueAttack, parameter.SparkDuration/2, rate)
	case CueCoin:
		base := noteB5
		if p, ok := ev.Payload.(*event.TargetPayload); ok && p.Coin == component.CoinGold {
			base = noteC6
		}
		s = beep.Seq(
			tone(base, parameter.CoinNoteDuration, WaveSquare, rate),
			silence(parameter.CoinNoteGap-parameter.CoinNoteDuration, rate),
			tone(noteE6, parameter.CoinNoteDuration, WaveSquare, rate),
		)
	case CueBonus:
		s = beep.Seq(
			tone(noteC5, parameter.CoinNoteDuration, WaveSine, rate),
			tone(noteE5, parameter.CoinNoteDuration, WaveSine, rate),
			tone(noteG5, parameter.CoinNoteDuration, WaveSine, rate),
		)
	case CueExplosion:
		noise := NewEnvelope(NewOscillator(0, parameter.ExplosionDuration, WaveNoise, rate),
			parameter.ExplosionDuration, cueAttack, parameter.ExplosionDuration*3/4, rate)
		rumble := NewEnvelope(NewOscillator(80, parameter.ExplosionDuration, WaveSine, rate),
			parameter.ExplosionDuration, cueAttack, parameter.ExplosionDuration/2, rate)
		s = beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
	case CueBossHit:
		s = tone(120, parameter.SparkDuration*3, WaveSaw, rate)
	case CueFanfare:
		s = beep.Seq(
			tone(noteC5, parameter.GameOverNote, WaveSquare, rate),
			tone(noteE5, parameter.GameOverNote, WaveSquare, rate),
			tone(noteG5, parameter.GameOverNote, WaveSquare, rate),
			tone(noteC6, parameter.GameOverNote*2, WaveSquare, rate),
		)
	case CueGameOver:
		notes := []float64{noteA4, noteF4, noteD4, noteA3}
		parts := make([]beep.Streamer, 0, len(notes)*2)
		for _, f := range notes {
			parts = append(parts,
				tone(f, parameter.GameOverNote, WaveSaw, rate),
				silence(parameter.GameOverNoteGap-parameter.GameOverNote, rate))
		}
		s = beep.Seq(parts...)
	default:
		return nil
	}
	return newVolume(s, gain)
}

func silence(d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return beep.Silence(0)
	}
	return beep.Silence(rate.N(d))
}
