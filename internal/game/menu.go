package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// drawCentered draws one text line horizontally centred at y.
func (g *Game) drawCentered(screen *ebiten.Image, s string, y int, col color.RGBA) {
	x := g.screenW/2 - len(s)*7/2
	text.Draw(screen, s, basicfont.Face7x13, x, y, col)
}

// panel draws the translucent dialog rectangle used by every overlay
// screen.
func (g *Game) panel(screen *ebiten.Image, w, h int) (x0, y0 int) {
	x0 = (g.screenW - w) / 2
	y0 = (g.screenH - h) / 2
	vector.FillRect(screen, float32(x0), float32(y0), float32(w), float32(h), colPanel, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(w), float32(h), 1.0, colPanelRim, false)
	return x0, y0
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	g.drawCentered(screen, "D U S K W A V E", g.screenH/2-80, colHUDText)

	entries := []string{"start", "quit"}
	for i, e := range entries {
		col := colHUDDim
		prefix := "  "
		if i == g.menuCursor {
			col = colSelect
			prefix = "> "
		}
		g.drawCentered(screen, prefix+e, g.screenH/2-20+i*20, col)
	}
	g.drawCentered(screen, "arrows move, enter select", g.screenH-30, colHUDDim)
}

func (g *Game) drawWeaponSelect(screen *ebiten.Image) {
	g.drawCentered(screen, "choose your weapon", 60, colHUDText)

	for w := WeaponType(0); w < NumWeapons; w++ {
		col := colHUDDim
		prefix := "  "
		if int(w) == g.weaponCursor {
			col = colSelect
			prefix = "> "
		}
		g.drawCentered(screen, prefix+w.String(), 100+int(w)*18, col)
	}
	g.drawCentered(screen, "esc back", g.screenH-30, colHUDDim)
}

func (g *Game) drawLevelUpPanel(screen *ebiten.Image) {
	h := 70 + len(g.upgradeOffers)*18
	x0, y0 := g.panel(screen, 360, h)

	text.Draw(screen, fmt.Sprintf("level %d!", g.player.Level), basicfont.Face7x13, x0+16, y0+24, colSelect)
	if g.pendingLevelUps > 1 {
		text.Draw(screen, fmt.Sprintf("(%d more queued)", g.pendingLevelUps-1), basicfont.Face7x13, x0+120, y0+24, colHUDDim)
	}

	for i, o := range g.upgradeOffers {
		col := colHUDText
		prefix := "  "
		if i == g.upgradeCursor {
			col = colSelect
			prefix = "> "
		}
		text.Draw(screen, prefix+o.Label(), basicfont.Face7x13, x0+16, y0+48+i*18, col)
	}
}

func (g *Game) drawPausePanel(screen *ebiten.Image) {
	x0, y0 := g.panel(screen, 240, 90)
	text.Draw(screen, "paused", basicfont.Face7x13, x0+16, y0+24, colHUDText)
	text.Draw(screen, "enter/esc resume", basicfont.Face7x13, x0+16, y0+48, colHUDDim)
	text.Draw(screen, "down abandon run", basicfont.Face7x13, x0+16, y0+66, colHUDDim)
}

func (g *Game) drawGameOverPanel(screen *ebiten.Image) {
	lines := strings.Split(strings.TrimRight(g.runReport(), "\n"), "\n")
	h := 80 + len(lines)*14
	if h > g.screenH-20 {
		h = g.screenH - 20
	}
	x0, y0 := g.panel(screen, 480, h)

	text.Draw(screen, "game over", basicfont.Face7x13, x0+16, y0+24, colHPBar)
	y := y0 + 46
	for _, l := range lines {
		if y > y0+h-30 {
			break
		}
		text.Draw(screen, l, basicfont.Face7x13, x0+16, y, colHUDText)
		y += 14
	}
	text.Draw(screen, "r copy report   enter menu", basicfont.Face7x13, x0+16, y0+h-10, colHUDDim)
}
