package game

import "image/color"

// Particle is a short-lived cosmetic dot. Particles never affect the
// simulation; saturation silently drops the extras.
type Particle struct {
	Active  bool
	Pos     Vec2
	Vel     Vec2
	Life    float64
	MaxLife float64
	Size    float64
	Color   color.RGBA
}

func (g *Game) spawnParticle(pos, vel Vec2, life, size float64, col color.RGBA) {
	for i := range g.particles {
		if g.particles[i].Active {
			continue
		}
		g.particles[i] = Particle{
			Active:  true,
			Pos:     pos,
			Vel:     vel,
			Life:    life,
			MaxLife: life,
			Size:    size,
			Color:   col,
		}
		return
	}
}

// spawnHitParticles is a small spray away from the hit point.
func (g *Game) spawnHitParticles(pos Vec2, col color.RGBA) {
	for i := 0; i < 3; i++ {
		vel := vecFromAngle(g.rng.Angle()).Scale(g.rng.Range(30, 90))
		g.spawnParticle(pos, vel, g.rng.Range(0.15, 0.35), 2, col)
	}
}

// spawnDeathParticles is a bigger burst for a kill.
func (g *Game) spawnDeathParticles(pos Vec2, col color.RGBA) {
	for i := 0; i < 8; i++ {
		vel := vecFromAngle(g.rng.Angle()).Scale(g.rng.Range(40, 140))
		g.spawnParticle(pos, vel, g.rng.Range(0.3, 0.6), 3, col)
	}
}

func (g *Game) updateParticles(dt float64) {
	for i := range g.particles {
		p := &g.particles[i]
		if !p.Active {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(1 - 3*dt) // drag
	}
}

// TextPopup is floating combat text: damage numbers, pickups, blocks.
type TextPopup struct {
	Active bool
	Pos    Vec2
	Text   string
	Life   float64
	Color  color.RGBA
}

const (
	popupLife      = 0.8
	popupRiseSpeed = 30.0 // px/s upward drift
)

func (g *Game) spawnPopup(pos Vec2, text string, col color.RGBA) {
	for i := range g.popups {
		if g.popups[i].Active {
			continue
		}
		g.popups[i] = TextPopup{Active: true, Pos: pos, Text: text, Life: popupLife, Color: col}
		return
	}
}

func (g *Game) updatePopups(dt float64) {
	for i := range g.popups {
		p := &g.popups[i]
		if !p.Active {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			continue
		}
		p.Pos.Y -= popupRiseSpeed * dt
	}
}
