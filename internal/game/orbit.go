package game

import "math"

// OrbitOrb circles the player at a fixed radius. Orbs are maintained
// continuously rather than fired: the weapon's update keeps the wanted
// count alive and advances every angle.
type OrbitOrb struct {
	Active     bool
	Angle      float64
	Radius     float64 // orbit distance from the player
	Size       float64 // orb collision radius
	ShieldHits int     // Shield branch: contacts this orb can still absorb
	Recharge   float64 // seconds until a spent shield charge returns
}

// shieldRechargeTime is how long a spent shield charge takes to return.
const shieldRechargeTime = 4.0

// orbitParams derives the branch-adjusted orb set parameters.
func (g *Game) orbitParams() (count int, size, speed, dmgMul float64) {
	slot := &g.weapons[WeaponOrbit]
	count = orbitBaseCount + g.player.stats.BonusProjectiles
	size = orbitOrbRadius
	speed = orbitSpeed
	dmgMul = 1
	switch slot.Branch {
	case orbitBranchShield:
		// Fewer, defensive orbs.
		if count > 2 {
			count = 2
		}
	case orbitBranchSwarm:
		count += 2 + slot.BranchTier
		size *= 0.6
		speed *= 1.6
		dmgMul = 0.5
	case orbitBranchHeavy:
		count = int(math.Max(1, float64(count-1)))
		size *= 1.8
		speed *= 0.6
		dmgMul = 2.2
	}
	if count > MaxOrbitOrbs {
		count = MaxOrbitOrbs
	}
	return count, size, speed, dmgMul
}

// updateOrbit reconciles the orb set with the wanted count, advances
// every orb, and applies touch damage gated by the per-enemy orb
// cooldown.
func (g *Game) updateOrbit(dt float64) {
	slot := &g.weapons[WeaponOrbit]
	count, size, speed, dmgMul := g.orbitParams()

	active := 0
	for i := range g.orbs {
		if g.orbs[i].Active {
			active++
		}
	}

	// Grow or shrink toward the wanted count, then respace all angles
	// evenly so the set stays a ring after any change.
	if active != count {
		for i := range g.orbs {
			g.orbs[i].Active = i < count
		}
		for i := 0; i < count; i++ {
			g.orbs[i].Angle = 2 * math.Pi * float64(i) / float64(count)
			if slot.Branch == orbitBranchShield && g.orbs[i].ShieldHits == 0 {
				g.orbs[i].ShieldHits = 1 + slot.BranchTier
			}
		}
	}

	radius := orbitRadius * g.player.stats.AreaMult
	for i := range g.orbs {
		o := &g.orbs[i]
		if !o.Active {
			continue
		}
		o.Angle = normalizeAngle(o.Angle + speed*dt)
		o.Radius = radius
		o.Size = size

		if slot.Branch == orbitBranchShield && o.ShieldHits < 1+slot.BranchTier {
			o.Recharge -= dt
			if o.Recharge <= 0 {
				o.ShieldHits++
				o.Recharge = shieldRechargeTime
			}
		}

		pos := g.orbPos(o)
		for e := range g.enemies {
			en := &g.enemies[e]
			if !en.Active || en.OrbHitCooldown > 0 {
				continue
			}
			if circlesOverlap(pos, o.Size, en.Pos, en.stats().radius) {
				en.OrbHitCooldown = orbitHitCooldown
				g.damageEnemy(e, g.effDamage(WeaponOrbit)*dmgMul, WeaponOrbit)
			}
		}
	}
}

// orbPos is the orb's world position this frame.
func (g *Game) orbPos(o *OrbitOrb) Vec2 {
	return g.player.Pos.Add(vecFromAngle(o.Angle).Scale(o.Radius))
}

// tryShieldBlock consumes one shield charge, if any orb has one, to
// absorb an enemy contact entirely. Only the Shield branch stocks
// charges.
func (g *Game) tryShieldBlock() bool {
	if g.weapons[WeaponOrbit].Branch != orbitBranchShield {
		return false
	}
	for i := range g.orbs {
		o := &g.orbs[i]
		if o.Active && o.ShieldHits > 0 {
			o.ShieldHits--
			g.spawnPopup(g.player.Pos, "blocked", colOrb)
			return true
		}
	}
	return false
}
