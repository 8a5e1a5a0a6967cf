package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/game"
	"github.com/lixenwraith/flicknfire/status"
	"github.com/lixenwraith/flicknfire/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func TestViewerPlacesEntities(t *testing.T) {
	s := newScreen(t, 64, 17)
	v := NewViewer(s, status.NewRegistry())

	now := time.Unix(100, 0)
	snap := game.Snapshot{
		Time:   now,
		Width:  1280,
		Height: 720,
		Score:  7,
		Money:  42,
		Lives:  3,
		Target: &component.Target{Pos: vmath.Vec2{X: 640, Y: 360}, Coin: component.CoinGold},
		Boss:   &component.Boss{Pos: vmath.Vec2{X: 1279, Y: 719}, HP: 12, MaxHP: 50},
		Hazards: []component.Hazard{
			{Pos: vmath.Vec2{X: 0, Y: 0}},
			{Pos: vmath.Vec2{X: 20, Y: 700}, Minion: true},
		},
		Bonuses:     []component.BonusTarget{{Pos: vmath.Vec2{X: 1270, Y: 0}}},
		Projectiles: []component.Projectile{{Pos: vmath.Vec2{X: -30, Y: 10}}},
	}
	v.Draw(snap)

	tests := []struct {
		x, y int
		want rune
	}{
		{32, 8, GlyphTarget},
		{63, 15, GlyphBoss},
		{0, 0, GlyphHazard},
		{1, 15, GlyphMinion},
		{63, 0, GlyphBonus},
	}
	for _, tt := range tests {
		if got := runeAt(s, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d): expected %q, got %q", tt.x, tt.y, tt.want, got)
		}
	}

	bar := rowText(s, 16, 64)
	for _, want := range []string{"SCORE 7", "$42", "BOSS 12/50"} {
		if !strings.Contains(bar, want) {
			t.Errorf("expected status bar to contain %q, got %q", want, bar)
		}
	}
}

func TestViewerGameOverBanner(t *testing.T) {
	s := newScreen(t, 80, 10)
	v := NewViewer(s, status.NewRegistry())
	v.Draw(game.Snapshot{Width: 1280, Height: 720, GameOver: true})

	if bar := rowText(s, 9, 80); !strings.Contains(bar, "GAME OVER") {
		t.Errorf("expected game over banner, got %q", bar)
	}
}

func TestViewerTinyScreen(t *testing.T) {
	s := newScreen(t, 4, 1)
	v := NewViewer(s, status.NewRegistry())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("draw on tiny screen panicked: %v", r)
		}
	}()
	v.Draw(game.Snapshot{Width: 1280, Height: 720, Target: &component.Target{}})
}
