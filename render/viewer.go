// Package render draws game snapshots into a terminal
package render

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/game"
	"github.com/lixenwraith/flicknfire/status"
	"github.com/lixenwraith/flicknfire/vmath"
)

// Glyphs per entity kind
const (
	GlyphTarget     = 'O'
	GlyphBonus      = '+'
	GlyphHazard     = '*'
	GlyphMinion     = 'x'
	GlyphBoss       = 'B'
	GlyphProjectile = '.'
)

// bossFlash is how long the boss glyph stays highlighted after a hit
const bossFlash = 150 * time.Millisecond

// Viewer renders snapshots scaled to the screen, last row is the status bar
type Viewer struct {
	screen tcell.Screen

	// Cached metric pointers (zero-lock reads)
	statFrames      *atomic.Int64
	statProjectiles *atomic.Int64
	statEvents      *atomic.Int64
}

// NewViewer creates a viewer on an initialized screen
func NewViewer(screen tcell.Screen, stats *status.Registry) *Viewer {
	return &Viewer{
		screen:          screen,
		statFrames:      stats.Ints.Get("game.frames"),
		statProjectiles: stats.Ints.Get("physics.projectiles"),
		statEvents:      stats.Ints.Get("game.events"),
	}
}

// Draw paints one snapshot and shows it
func (v *Viewer) Draw(snap game.Snapshot) {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= 1 {
		v.screen.Show()
		return
	}

	bg := tcell.StyleDefault.Background(RgbBackground)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			v.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for _, b := range snap.Bonuses {
		v.plot(snap, b.Pos, GlyphBonus, bg.Foreground(RgbBonus))
	}
	for _, hz := range snap.Hazards {
		if hz.Minion {
			v.plot(snap, hz.Pos, GlyphMinion, bg.Foreground(RgbMinion))
		} else {
			v.plot(snap, hz.Pos, GlyphHazard, bg.Foreground(RgbHazard))
		}
	}
	if t := snap.Target; t != nil {
		v.plot(snap, t.Pos, GlyphTarget, bg.Foreground(coinColor(t.Coin)).Bold(true))
	}
	if b := snap.Boss; b != nil {
		color := RgbBoss
		if !b.LastHit.IsZero() && snap.Time.Sub(b.LastHit) < bossFlash {
			color = RgbBossHit
		}
		v.plot(snap, b.Pos, GlyphBoss, bg.Foreground(color).Bold(true))
	}
	for _, p := range snap.Projectiles {
		v.plot(snap, p.Pos, GlyphProjectile, bg.Foreground(RgbProjectile))
	}

	v.drawStatusBar(snap, w, h-1)
	v.screen.Show()
}

// plot maps an arena position to a cell, positions outside the arena are skipped
func (v *Viewer) plot(snap game.Snapshot, pos vmath.Vec2, r rune, style tcell.Style) {
	x, y, ok := v.cellOf(snap, pos)
	if !ok {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *Viewer) cellOf(snap game.Snapshot, pos vmath.Vec2) (int, int, bool) {
	w, h := v.screen.Size()
	rows := h - 1
	if snap.Width <= 0 || snap.Height <= 0 || rows <= 0 {
		return 0, 0, false
	}
	if pos.X < 0 || pos.Y < 0 || pos.X >= snap.Width || pos.Y >= snap.Height {
		return 0, 0, false
	}
	x := int(pos.X / snap.Width * float64(w))
	y := int(pos.Y / snap.Height * float64(rows))
	return min(x, w-1), min(y, rows-1), true
}

func (v *Viewer) drawStatusBar(snap game.Snapshot, width, y int) {
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(RgbBackground))
	}

	x := 0
	seg := func(text string, bg tcell.Color) {
		x = v.text(x, y, width, text, tcell.StyleDefault.Foreground(RgbStatusText).Background(bg))
		x++
	}

	switch {
	case snap.GameOver:
		seg(" GAME OVER r:restart ", RgbGameOverBg)
	case snap.Paused:
		seg(" PAUSED ", RgbPausedBg)
	}

	seg(fmt.Sprintf(" SCORE %d BEST %d ", snap.Score, snap.Best), RgbScoreBg)
	seg(fmt.Sprintf(" $%d ", snap.Money), RgbMoneyBg)
	seg(" "+strings.Repeat("♥", snap.Lives)+" ", RgbLivesBg)
	if b := snap.Boss; b != nil {
		seg(fmt.Sprintf(" BOSS %d/%d ", b.HP, b.MaxHP), RgbBossBg)
	}

	plain := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbBackground)
	for i, u := range snap.Upgrades {
		label := fmt.Sprintf("%d:%s %d/%d", i+1, u.Kind, u.Level, u.MaxLevel)
		if u.Maxed {
			label += " max"
		} else {
			label += fmt.Sprintf(" $%d", u.Cost)
		}
		style := plain
		if u.Affordable {
			style = style.Bold(true)
		}
		x = v.text(x, y, width, label, style) + 1
	}

	v.text(x, y, width, fmt.Sprintf("f%d p%d e%d", v.statFrames.Load(), v.statProjectiles.Load(), v.statEvents.Load()), plain)
}

// text writes s from x and returns the next free column, clipped at width
func (v *Viewer) text(x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= width {
			return x
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func coinColor(c component.CoinKind) tcell.Color {
	switch c {
	case component.CoinSilver:
		return RgbCoinSilver
	case component.CoinGold:
		return RgbCoinGold
	default:
		return RgbCoinBronze
	}
}
