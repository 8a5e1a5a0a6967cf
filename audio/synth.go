package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	step      float64 // Phase advance per sample
	phase     float64
	remaining int
	wave      WaveType
	rng       *rand.Rand
}

// NewOscillator creates a wave generator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		step:      freq / float64(rate),
		remaining: rate.N(duration),
		wave:      wave,
		rng:       rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

// sample evaluates the wave at the current phase in [-1, 1]
func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*o.phase - 1
	case WaveNoise:
		return o.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	n = min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.sample()
		samples[i] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linear gain, zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is one enveloped note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	release := d / 2
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, cueAttack, release, rate)
}
