package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/game"
	"github.com/lixenwraith/flicknfire/status"
)

// Action is a control request decoded from a key press
type Action int

const (
	ActionNone Action = iota
	ActionRestart
	ActionBuySpeed
	ActionBuyBurst
	ActionBuyBounce
	ActionTogglePause
	ActionQuit
)

// KeyAction decodes a key press
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q':
		return ActionQuit
	case 'r':
		return ActionRestart
	case '1':
		return ActionBuySpeed
	case '2':
		return ActionBuyBurst
	case '3':
		return ActionBuyBounce
	case 'p', ' ':
		return ActionTogglePause
	}
	return ActionNone
}

// Controls is the part of the game a terminal session drives
type Controls interface {
	Snapshot() game.Snapshot
	Status() *status.Registry
	Restart()
	Purchase(kind component.UpgradeKind) bool
	Pause()
	Resume()
	Paused() bool
}

// Apply performs an action, false when the session should end
func Apply(g Controls, a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionRestart:
		g.Restart()
	case ActionBuySpeed:
		g.Purchase(component.UpgradeBulletSpeed)
	case ActionBuyBurst:
		g.Purchase(component.UpgradeBurst)
	case ActionBuyBounce:
		g.Purchase(component.UpgradeBounce)
	case ActionTogglePause:
		if g.Paused() {
			g.Resume()
		} else {
			g.Pause()
		}
	}
	return true
}

// Run redraws at interval and applies key presses until quit or ctx is done
// The caller owns the screen and finalizes it after Run returns
func Run(ctx context.Context, screen tcell.Screen, g Controls, interval time.Duration) {
	viewer := NewViewer(screen, g.Status())

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	viewer.Draw(g.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !Apply(g, KeyAction(ev)) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			viewer.Draw(g.Snapshot())
		}
	}
}
