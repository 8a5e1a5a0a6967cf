// Package audio synthesizes short cues for gameplay notifications and plays them through the speaker
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Config controls playback
type Config struct {
	Enabled bool
	Volume  float64 // Linear gain in [0,1]
}

// Player is a game listener that turns notifications into sound
// Without an output device it runs in silent mode and only counts cues
type Player struct {
	cfg Config
	log zerolog.Logger

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	sink        func(beep.Streamer) // Nil in silent mode

	silentMode atomic.Bool
	played     atomic.Int64
	skipped    atomic.Int64
}

// NewPlayer creates a player, Start opens the device
func NewPlayer(cfg Config, log zerolog.Logger) *Player {
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	p := &Player{
		cfg:   cfg,
		log:   log.With().Str("component", "audio").Logger(),
		mixer: &beep.Mixer{},
	}
	p.silentMode.Store(true)
	return p
}

// Start initializes the speaker
// A device failure switches to silent mode and is returned for logging only
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferSize)); err != nil {
		p.log.Warn().Err(err).Msg("audio device unavailable, running silent")
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)

	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	p.silentMode.Store(false)
	return nil
}

// Stop silences and detaches the mixer
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.sink = nil
	p.initialized = false
	p.silentMode.Store(true)
}

// OnEvent implements game.Listener
func (p *Player) OnEvent(ev event.GameEvent) {
	cue := CueFor(ev)
	if cue == CueNone {
		return
	}

	p.mu.Lock()
	sink := p.sink
	p.mu.Unlock()

	if sink == nil {
		p.skipped.Add(1)
		return
	}
	if s := Synthesize(cue, ev, sampleRate, p.cfg.Volume); s != nil {
		sink(s)
		p.played.Add(1)
	}
}

// Silent reports whether cues are dropped for lack of a device
func (p *Player) Silent() bool { return p.silentMode.Load() }

// Played returns the number of cues sent to the device
func (p *Player) Played() int64 { return p.played.Load() }

// Skipped returns the number of cues dropped in silent mode
func (p *Player) Skipped() int64 { return p.skipped.Load() }
