package game

import "math"

// MeleeSwing is the single self-overwriting melee effect slot: a
// short-lived arc anchored to the player.
type MeleeSwing struct {
	Active    bool
	Angle     float64 // arc centre direction
	Arc       float64 // full arc width, radians
	Range     float64
	Damage    float64
	Life      float64
	Knockback float64
}

// fireMelee swings at the nearest enemy, or straight ahead when the
// field is empty — melee always fires.
func (g *Game) fireMelee() bool {
	slot := &g.weapons[WeaponMelee]

	// Spin branch: firing starts (or refreshes) a continuous sweep
	// instead of a discrete swing.
	if slot.Branch == meleeBranchSpin {
		if !slot.Spinning {
			slot.Spinning = true
			slot.SpinAngle = g.player.Facing
		}
		slot.SpinTime = meleeSpinTime + 0.2*float64(slot.BranchTier)
		return true
	}

	aim := g.player.Facing
	if t := g.nearestEnemy(g.player.Pos, 0); t >= 0 {
		aim = g.enemies[t].Pos.Sub(g.player.Pos).Angle()
	}

	arc := meleeBaseArc
	dmg := g.effDamage(WeaponMelee)
	kb := 0.0
	switch slot.Branch {
	case meleeBranchWide:
		arc *= 1.8 + 0.1*float64(slot.BranchTier)
	case meleeBranchPower:
		dmg *= 1.8 + 0.15*float64(slot.BranchTier)
		kb = meleeKnockback
	}

	g.melee = MeleeSwing{
		Active:    true,
		Angle:     aim,
		Arc:       arc,
		Range:     meleeBaseRange * g.player.stats.AreaMult,
		Damage:    dmg,
		Life:      meleeSwingTime,
		Knockback: kb,
	}
	g.resolveMeleeHits()
	return true
}

// resolveMeleeHits damages every enemy inside the swing's range whose
// bearing from the player falls inside the arc. A discrete swing hits
// once, at spawn.
func (g *Game) resolveMeleeHits() {
	m := &g.melee
	for e := range g.enemies {
		en := &g.enemies[e]
		if !en.Active {
			continue
		}
		if dist(g.player.Pos, en.Pos) > m.Range+en.stats().radius {
			continue
		}
		bearing := en.Pos.Sub(g.player.Pos).Angle()
		if math.Abs(angleDiff(m.Angle, bearing)) > m.Arc/2 {
			continue
		}
		g.damageEnemy(e, m.Damage, WeaponMelee)
		if m.Knockback > 0 {
			g.knockbackEnemy(e, g.player.Pos, m.Knockback)
		}
	}
}

// updateMeleeSwing ages the visual arc.
func (g *Game) updateMeleeSwing(dt float64) {
	if !g.melee.Active {
		return
	}
	g.melee.Life -= dt
	if g.melee.Life <= 0 {
		g.melee.Active = false
	}
}

// updateMeleeSpin advances the Spin branch sweep: a narrow arc rotating
// around the player, damaging on a short re-hit interval via the arc's
// own refresh. The sweep winds down when its time expires.
func (g *Game) updateMeleeSpin(dt float64) {
	slot := &g.weapons[WeaponMelee]
	slot.SpinTime -= dt
	if slot.SpinTime <= 0 {
		slot.Spinning = false
		g.melee.Active = false
		return
	}
	slot.SpinAngle = normalizeAngle(slot.SpinAngle + meleeSpinRate*dt)

	g.melee = MeleeSwing{
		Active: true,
		Angle:  slot.SpinAngle,
		Arc:    meleeBaseArc * 0.6,
		Range:  meleeBaseRange * g.player.stats.AreaMult,
		Damage: g.effDamage(WeaponMelee) * dt * meleeSpinRate / (2 * math.Pi),
		Life:   meleeSwingTime,
	}
	g.resolveMeleeHits()
}
