package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudBarW    = 180
	hudBarH    = 8
	hudMargin  = 8
	hudLineH   = 14
	potionSlot = 14 // inventory slot square size
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13

	// HP bar.
	hpFrac := float32(clamp01(g.player.HP / g.player.stats.MaxHP))
	vector.FillRect(screen, hudMargin, hudMargin, hudBarW, hudBarH, colBarBack, false)
	vector.FillRect(screen, hudMargin, hudMargin, hudBarW*hpFrac, hudBarH, colHPBar, false)

	// XP bar with level marker.
	need := g.xpToNextLevel(g.player.Level)
	xpFrac := float32(clamp01(float64(g.player.XP) / float64(need)))
	vector.FillRect(screen, hudMargin, hudMargin+hudBarH+2, hudBarW, hudBarH, colBarBack, false)
	vector.FillRect(screen, hudMargin, hudMargin+hudBarH+2, hudBarW*xpFrac, hudBarH, colXPBar, false)

	y := hudMargin + 2*hudBarH + 6 + hudLineH
	text.Draw(screen, fmt.Sprintf("lv %d  wave %d  %s", g.player.Level, g.wave, formatTime(g.gameTime)),
		face, hudMargin, y, colHUDText)
	y += hudLineH
	text.Draw(screen, fmt.Sprintf("kills %d", g.killCount), face, hudMargin, y, colHUDDim)

	if g.combo > 1 {
		y += hudLineH
		text.Draw(screen, fmt.Sprintf("combo x%d", g.combo), face, hudMargin, y, colSelect)
	}

	g.drawInventory(screen)
	g.drawBuffIcons(screen)
	g.drawMinimap(screen)
}

// drawInventory renders the five potion slots along the bottom-left.
func (g *Game) drawInventory(screen *ebiten.Image) {
	x := float32(hudMargin)
	y := float32(g.screenH - hudMargin - potionSlot)
	for i := range g.inventory {
		vector.StrokeRect(screen, x, y, potionSlot, potionSlot, 1.0, colHUDDim, false)
		if g.inventory[i].Held {
			vector.FillRect(screen, x+2, y+2, potionSlot-4, potionSlot-4, g.inventory[i].Type.color(), false)
		}
		x += potionSlot + 4
	}
}

// drawBuffIcons shows active buffs with their remaining time next to
// the inventory.
func (g *Game) drawBuffIcons(screen *ebiten.Image) {
	x := hudMargin + MaxInventory*(potionSlot+4) + 12
	y := g.screenH - hudMargin - 2
	for t := PotionType(0); t < NumPotionTypes; t++ {
		if !g.buffs[t].Active {
			continue
		}
		label := fmt.Sprintf("%s %.0fs", t, g.buffs[t].Remaining)
		text.Draw(screen, label, basicfont.Face7x13, x, y, t.color())
		x += len(label)*7 + 10
	}
}

// drawMinimap paints the world overview in the top-right corner:
// player, enemies, gems and the viewport rectangle, world-to-minimap
// scaled.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	mx := float32(g.screenW - MinimapW - MinimapMargin)
	my := float32(MinimapMargin)
	sx := float64(MinimapW) / WorldW
	sy := float64(MinimapH) / WorldH

	vector.FillRect(screen, mx, my, MinimapW, MinimapH, colMinimapBack, false)
	vector.StrokeRect(screen, mx, my, MinimapW, MinimapH, 1.0, colMinimapFrame, false)

	plot := func(p Vec2, r float32, col color.RGBA) {
		vector.FillRect(screen, mx+float32(p.X*sx)-r/2, my+float32(p.Y*sy)-r/2, r, r, col, false)
	}

	for i := range g.gems {
		if g.gems[i].Active {
			plot(g.gems[i].Pos, 1, colMinimapGem)
		}
	}
	for i := range g.enemies {
		if g.enemies[i].Active {
			plot(g.enemies[i].Pos, 2, colMinimapEnemy)
		}
	}
	plot(g.player.Pos, 3, colMinimapPlayer)

	// Viewport rectangle.
	vector.StrokeRect(screen,
		mx+float32(g.cam.X*sx), my+float32(g.cam.Y*sy),
		float32(float64(g.screenW)*sx), float32(float64(g.screenH)*sy),
		1.0, colMinimapView, false)
}

func formatTime(t float64) string {
	m := int(t) / 60
	s := int(t) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
