package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text on status segments
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White

	RgbCoinBronze = tcell.NewRGBColor(205, 127, 50)
	RgbCoinSilver = tcell.NewRGBColor(192, 192, 192)
	RgbCoinGold   = tcell.NewRGBColor(255, 215, 0)
	RgbBonus      = tcell.NewRGBColor(50, 255, 50)
	RgbHazard     = tcell.NewRGBColor(255, 80, 80)
	RgbMinion     = tcell.NewRGBColor(180, 50, 50)
	RgbBoss       = tcell.NewRGBColor(128, 0, 128)
	RgbBossHit    = tcell.NewRGBColor(255, 255, 200) // Flash while hit is recent
	RgbProjectile = tcell.NewRGBColor(140, 190, 255)

	RgbScoreBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMoneyBg    = tcell.NewRGBColor(255, 215, 0)
	RgbLivesBg    = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbBossBg     = tcell.NewRGBColor(200, 50, 50)
	RgbGameOverBg = tcell.NewRGBColor(255, 0, 0)
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)
)
