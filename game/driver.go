package game

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/flicknfire/parameter"
)

// Driver runs Game.Tick on a fixed interval so timers fire between pose frames
// Pause-aware: while paused it sleeps longer instead of spinning
type Driver struct {
	game     *Game
	interval time.Duration
	log      zerolog.Logger

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewDriver creates a driver, a non-positive interval falls back to the engine default
func NewDriver(g *Game, interval time.Duration, log zerolog.Logger) *Driver {
	if interval <= 0 {
		interval = parameter.TickInterval
	}
	return &Driver{
		game:     g,
		interval: interval,
		log:      log.With().Str("component", "driver").Logger(),
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick loop
func (d *Driver) Start() {
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		go d.loop()
	}
}

// Stop halts the tick loop and waits for it to exit
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		if d.running.CompareAndSwap(true, false) {
			close(d.stopChan)
			d.wg.Wait()
		}
	})
}

// Ticks returns the number of ticks executed
func (d *Driver) Ticks() uint64 {
	return d.tickCount.Load()
}

func (d *Driver) loop() {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Msg("tick loop crashed")
		}
	}()

	timer := time.NewTimer(d.interval)
	defer timer.Stop()

	deadline := time.Now().Add(d.interval)
	for {
		select {
		case <-d.stopChan:
			return
		case <-timer.C:
		}

		if !d.game.Paused() {
			d.game.Tick()
			d.tickCount.Add(1)
		}

		now := time.Now()
		deadline = deadline.Add(d.interval)
		// Drop missed deadlines instead of bursting to catch up
		if now.Sub(deadline) > d.interval*2 {
			deadline = now.Add(d.interval)
		}

		sleep := deadline.Sub(now)
		if d.game.Paused() {
			sleep = d.interval * 2
		}
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
