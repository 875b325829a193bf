package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// worldGridStep is the spacing of the faint floor grid, px.
const worldGridStep = 100

// Draw renders the current frame. Presentation only: nothing here
// mutates simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	switch g.state {
	case StateMenu:
		g.drawMenu(screen)
		return
	case StateWeaponSelect:
		g.drawWeaponSelect(screen)
		return
	}

	// LevelUp, Paused and GameOver render their panel over the frozen
	// world.
	g.drawWorld(screen)
	g.drawHUD(screen)

	switch g.state {
	case StateLevelUp:
		g.drawLevelUpPanel(screen)
	case StatePaused:
		g.drawPausePanel(screen)
	case StateGameOver:
		g.drawGameOverPanel(screen)
	}
}

// sx/sy translate a world position into screen space.
func (g *Game) sx(x float64) float32 { return float32(x - g.cam.X) }
func (g *Game) sy(y float64) float32 { return float32(y - g.cam.Y) }

// onScreen culls entities a little beyond the viewport edge.
func (g *Game) onScreen(p Vec2, r float64) bool {
	return p.X+r >= g.cam.X && p.X-r <= g.cam.X+float64(g.screenW) &&
		p.Y+r >= g.cam.Y && p.Y-r <= g.cam.Y+float64(g.screenH)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	// Floor over the world area visible in the viewport.
	fx := g.sx(0)
	fy := g.sy(0)
	vector.FillRect(screen, fx, fy, float32(WorldW), float32(WorldH), colWorldFloor, false)

	// Faint grid, only the lines crossing the viewport.
	x0 := math.Floor(g.cam.X/worldGridStep) * worldGridStep
	for x := x0; x <= g.cam.X+float64(g.screenW); x += worldGridStep {
		vector.StrokeLine(screen, g.sx(x), fy, g.sx(x), g.sy(WorldH), 1.0, colWorldGrid, false)
	}
	y0 := math.Floor(g.cam.Y/worldGridStep) * worldGridStep
	for y := y0; y <= g.cam.Y+float64(g.screenH); y += worldGridStep {
		vector.StrokeLine(screen, fx, g.sy(y), g.sx(WorldW), g.sy(y), 1.0, colWorldGrid, false)
	}
	vector.StrokeRect(screen, fx, fy, float32(WorldW), float32(WorldH), 2.0, colWorldEdge, false)

	// Ground layer: poison clouds under everything else.
	for i := range g.clouds {
		c := &g.clouds[i]
		if !c.Active || !g.onScreen(c.Pos, c.Radius) {
			continue
		}
		vector.FillCircle(screen, g.sx(c.Pos.X), g.sy(c.Pos.Y), float32(c.Radius), colPoison, false)
	}

	// Pickups.
	for i := range g.gems {
		gem := &g.gems[i]
		if !gem.Active || !g.onScreen(gem.Pos, 8) {
			continue
		}
		vector.FillCircle(screen, g.sx(gem.Pos.X), g.sy(gem.Pos.Y), float32(gem.Type.radius()), gem.Type.color(), false)
	}
	for i := range g.potionDrops {
		d := &g.potionDrops[i]
		if !d.Active || !g.onScreen(d.Pos, potionDropRadius) {
			continue
		}
		px := g.sx(d.Pos.X)
		py := g.sy(d.Pos.Y)
		vector.FillCircle(screen, px, py, potionDropRadius, d.Type.color(), false)
		vector.StrokeCircle(screen, px, py, potionDropRadius+2, 1.0, colHUDText, false)
	}

	// Enemies.
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		st := e.stats()
		if !g.onScreen(e.Pos, st.radius) {
			continue
		}
		col := st.color
		if e.HitFlash > 0 {
			col = colFlash
		} else if e.FrozenTimer > 0 {
			col = color.RGBA{R: col.R / 2, G: col.G / 2, B: 255, A: 255}
		}
		ex := g.sx(e.Pos.X)
		ey := g.sy(e.Pos.Y)
		vector.FillCircle(screen, ex, ey, float32(st.radius), col, false)
		// HP sliver for wounded enemies.
		if e.HP < e.MaxHP {
			w := float32(st.radius * 2)
			frac := float32(clamp01(e.HP / e.MaxHP))
			vector.FillRect(screen, ex-w/2, ey-float32(st.radius)-5, w, 2, colBarBack, false)
			vector.FillRect(screen, ex-w/2, ey-float32(st.radius)-5, w*frac, 2, colHPBar, false)
		}
	}

	g.drawEffects(screen)
	g.drawPlayer(screen)

	// Particles and floating text last, over everything in the world.
	for i := range g.particles {
		p := &g.particles[i]
		if !p.Active || !g.onScreen(p.Pos, p.Size) {
			continue
		}
		col := p.Color
		col.A = uint8(float64(col.A) * clamp01(p.Life/p.MaxLife))
		vector.FillCircle(screen, g.sx(p.Pos.X), g.sy(p.Pos.Y), float32(p.Size), col, false)
	}
	for i := range g.popups {
		p := &g.popups[i]
		if !p.Active || !g.onScreen(p.Pos, 40) {
			continue
		}
		text.Draw(screen, p.Text, basicfont.Face7x13,
			int(g.sx(p.Pos.X))-len(p.Text)*3, int(g.sy(p.Pos.Y)), p.Color)
	}
}

func (g *Game) drawEffects(screen *ebiten.Image) {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active || !g.onScreen(b.Pos, bulletRadius) {
			continue
		}
		vector.FillCircle(screen, g.sx(b.Pos.X), g.sy(b.Pos.Y), bulletRadius, colBullet, false)
	}

	for i := range g.seekers {
		s := &g.seekers[i]
		if !s.Active || !g.onScreen(s.Pos, 6) {
			continue
		}
		vector.FillCircle(screen, g.sx(s.Pos.X), g.sy(s.Pos.Y), 6, colSeeker, false)
	}

	for i := range g.boomerangs {
		b := &g.boomerangs[i]
		if !b.Active || !g.onScreen(b.Pos, boomerangRadius) {
			continue
		}
		vector.StrokeCircle(screen, g.sx(b.Pos.X), g.sy(b.Pos.Y), boomerangRadius, 2.0, colBoomerang, false)
	}

	// Expanding wave rims.
	for i := range g.waves {
		w := &g.waves[i]
		if !w.Active {
			continue
		}
		rim := w.waveRadius()
		if rim < 1 || !g.onScreen(w.Center, rim) {
			continue
		}
		vector.StrokeCircle(screen, g.sx(w.Center.X), g.sy(w.Center.Y), float32(rim), 3.0, colWave, false)
	}

	// Lightning strikes: fading bolt column plus impact ring.
	for i := range g.strikes {
		s := &g.strikes[i]
		if !s.Active || !g.onScreen(s.Pos, s.Radius) {
			continue
		}
		fade := clamp01(s.Life / lightningStrikeTime)
		col := colLightning
		col.A = uint8(255 * fade)
		px := g.sx(s.Pos.X)
		py := g.sy(s.Pos.Y)
		vector.StrokeLine(screen, px, py-60, px, py, 2.5, col, false)
		vector.StrokeCircle(screen, px, py, float32(s.Radius*(1.2-0.2*fade)), 1.5, col, false)
	}

	// Chain bolts: segment from last hit toward the pending target.
	for i := range g.bolts {
		b := &g.bolts[i]
		if !b.Active || b.Target < 0 || !g.enemies[b.Target].Active {
			continue
		}
		tp := g.enemies[b.Target].Pos
		vector.StrokeLine(screen, g.sx(b.From.X), g.sy(b.From.Y), g.sx(tp.X), g.sy(tp.Y), 1.5, colLightning, false)
	}

	// Orbit orbs.
	for i := range g.orbs {
		o := &g.orbs[i]
		if !o.Active {
			continue
		}
		pos := g.orbPos(o)
		if !g.onScreen(pos, o.Size) {
			continue
		}
		vector.FillCircle(screen, g.sx(pos.X), g.sy(pos.Y), float32(o.Size), colOrb, false)
		if o.ShieldHits > 0 {
			vector.StrokeCircle(screen, g.sx(pos.X), g.sy(pos.Y), float32(o.Size+3), 1.0, colHUDText, false)
		}
	}

	// Melee arc: rays along the swing sector, fading with life.
	if g.melee.Life > 0 {
		m := &g.melee
		fade := clamp01(m.Life / meleeSwingTime)
		col := colMelee
		col.A = uint8(float64(col.A) * fade)
		px := g.sx(g.player.Pos.X)
		py := g.sy(g.player.Pos.Y)
		steps := 8
		for s := 0; s <= steps; s++ {
			a := m.Angle - m.Arc/2 + m.Arc*float64(s)/float64(steps)
			vector.StrokeLine(screen, px, py,
				px+float32(math.Cos(a)*m.Range), py+float32(math.Sin(a)*m.Range), 1.5, col, false)
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := &g.player
	px := g.sx(p.Pos.X)
	py := g.sy(p.Pos.Y)

	col := colPlayer
	if p.HurtFlash > 0 {
		col = colPlayerHurt
	}
	// Blink while invincible.
	if p.InvincibilityTimer > 0 && int(p.InvincibilityTimer*20)%2 == 0 {
		col.A = 120
	}
	vector.FillCircle(screen, px, py, playerRadius, col, false)

	// Facing tick.
	vector.StrokeLine(screen, px, py,
		px+float32(math.Cos(p.Facing)*playerRadius*1.5),
		py+float32(math.Sin(p.Facing)*playerRadius*1.5), 2.0, col, false)

	// Shield buff ring.
	if g.buffActive(PotionShield) {
		vector.StrokeCircle(screen, px, py, playerRadius+5, 2.0, PotionShield.color(), false)
	}
	// Magnet buff ring, faint, at the boosted range.
	if g.buffActive(PotionMagnet) {
		r := float32(p.stats.MagnetRange * buffMagnetMult)
		c := PotionMagnet.color()
		c.A = 60
		vector.StrokeCircle(screen, px, py, r, 1.0, c, false)
	}
}
