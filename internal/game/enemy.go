package game

import "image/color"

// EnemyType selects the stat row for an enemy.
type EnemyType int

const (
	EnemyWalker EnemyType = iota
	EnemyFast
	EnemyTank

	NumEnemyTypes
)

func (t EnemyType) String() string {
	switch t {
	case EnemyWalker:
		return "walker"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	}
	return "?"
}

// enemyStats is the per-type constant row. XP gem size is derived from
// the type: walker → small, fast → medium, tank → large.
type enemyStats struct {
	baseHP  float64
	speed   float64 // px/s
	damage  float64 // contact damage per hit
	radius  float64
	gemType GemType
	color   color.RGBA
}

var enemyTable = [NumEnemyTypes]enemyStats{
	EnemyWalker: {baseHP: 12, speed: 45, damage: 8, radius: 10, gemType: GemSmall},
	EnemyFast:   {baseHP: 7, speed: 90, damage: 5, radius: 8, gemType: GemMedium},
	EnemyTank:   {baseHP: 40, speed: 28, damage: 16, radius: 15, gemType: GemLarge},
}

func init() {
	enemyTable[EnemyWalker].color = colWalker
	enemyTable[EnemyFast].color = colFast
	enemyTable[EnemyTank].color = colTank
}

// Enemy is one pooled enemy. Effects refer to enemies by pool index and
// must re-check Active before use.
type Enemy struct {
	Active bool
	Type   EnemyType
	Pos    Vec2
	Vel    Vec2
	HP     float64
	MaxHP  float64

	HitFlash float64 // seconds of white flash remaining

	// Status effects. Factors are speed multipliers in [0,1] applied
	// while their timer runs; both at once multiply.
	SlowFactor   float64
	SlowTimer    float64
	FrozenFactor float64
	FrozenTimer  float64

	// Knockback impulse, decaying velocity added on top of steering.
	Knockback Vec2

	// Per-orb hit cooldowns are tracked on the enemy so an orbiting orb
	// cannot over-hit a target it is grinding against.
	OrbHitCooldown float64
}

func (e *Enemy) stats() *enemyStats {
	return &enemyTable[e.Type]
}

// effectiveSpeed applies slow and freeze to the type's base speed.
func (e *Enemy) effectiveSpeed() float64 {
	s := e.stats().speed
	if e.SlowTimer > 0 {
		s *= 1 - e.SlowFactor
	}
	if e.FrozenTimer > 0 {
		s *= 1 - e.FrozenFactor
	}
	return s
}

// applySlow installs (or refreshes) a slow. The stronger factor wins.
func (e *Enemy) applySlow(factor, duration float64) {
	if e.SlowTimer <= 0 || factor >= e.SlowFactor {
		e.SlowFactor = factor
		e.SlowTimer = duration
	}
}

func (e *Enemy) applyFreeze(factor, duration float64) {
	if e.FrozenTimer <= 0 || factor >= e.FrozenFactor {
		e.FrozenFactor = factor
		e.FrozenTimer = duration
	}
}

// updateEnemies steers every active enemy toward the player, advances
// status timers, and resolves enemy-vs-player contact damage.
func (g *Game) updateEnemies(dt float64) {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}

		if e.HitFlash > 0 {
			e.HitFlash -= dt
		}
		if e.SlowTimer > 0 {
			e.SlowTimer -= dt
		}
		if e.FrozenTimer > 0 {
			e.FrozenTimer -= dt
		}
		if e.OrbHitCooldown > 0 {
			e.OrbHitCooldown -= dt
		}

		// Steer straight at the player.
		dir := g.player.Pos.Sub(e.Pos).Normalized()
		e.Vel = dir.Scale(e.effectiveSpeed())

		// Knockback decays quickly.
		e.Pos = e.Pos.Add(e.Vel.Add(e.Knockback).Scale(dt))
		e.Knockback = e.Knockback.Scale(1 - clamp01(6*dt))

		// Enemies that drift outside the world are culled, not clamped
		// (knockback can push them through the edge).
		if e.Pos.X < -50 || e.Pos.X > WorldW+50 || e.Pos.Y < -50 || e.Pos.Y > WorldH+50 {
			e.Active = false
			continue
		}

		// Contact damage.
		if circlesOverlap(e.Pos, e.stats().radius, g.player.Pos, playerRadius) {
			g.playerTakeDamage(e.stats().damage, i)
		}
	}

	g.separateEnemies()
}

// separateEnemies resolves enemy-vs-enemy overlap so a swarm converging
// on the player spreads into a ring instead of stacking on one point.
// Each overlapping pair is pushed apart by enemySeparation of the
// overlap per tick, split evenly.
func (g *Game) separateEnemies() {
	for i := range g.enemies {
		a := &g.enemies[i]
		if !a.Active {
			continue
		}
		for j := i + 1; j < len(g.enemies); j++ {
			b := &g.enemies[j]
			if !b.Active {
				continue
			}
			minDist := a.stats().radius + b.stats().radius
			delta := b.Pos.Sub(a.Pos)
			d := delta.Len()
			if d >= minDist {
				continue
			}
			if d < 1e-6 {
				// Coincident centers have no push direction; nudge apart
				// on a fixed axis.
				a.Pos.X -= 0.5
				b.Pos.X += 0.5
				continue
			}
			push := (minDist - d) * enemySeparation / 2
			dir := delta.Scale(1 / d)
			a.Pos = a.Pos.Sub(dir.Scale(push))
			b.Pos = b.Pos.Add(dir.Scale(push))
		}
	}
}

// damageEnemy applies damage from a weapon, handles lifesteal, death,
// and loot. Returns true when the enemy died from this hit.
func (g *Game) damageEnemy(idx int, amount float64, weapon WeaponType) bool {
	e := &g.enemies[idx]
	if !e.Active {
		return false
	}
	e.HP -= amount
	e.HitFlash = enemyHitFlashTime
	if weapon >= 0 {
		g.damageByWeapon[weapon] += amount
	}
	g.spawnHitParticles(e.Pos, e.stats().color)

	// Lifesteal heals on damage dealt, capped at max HP.
	if ls := g.player.stats.Lifesteal; ls > 0 {
		g.player.HP = clampF(g.player.HP+amount*ls/100, 0, g.player.stats.MaxHP)
	}

	if e.HP > 0 {
		return false
	}

	e.Active = false
	g.killCount++
	g.killsByType[e.Type]++
	g.spawnDeathParticles(e.Pos, e.stats().color)
	g.spawnGem(e.Pos, e.stats().gemType)
	if g.rng.Chance(g.tuning.PotionDropChance) {
		g.spawnPotionDrop(e.Pos, PotionType(g.rng.Intn(int(NumPotionTypes))))
	}
	g.log("kill", e.Type.String(), float64(g.killCount))
	return true
}

// knockbackEnemy pushes an enemy away from a source point.
func (g *Game) knockbackEnemy(idx int, from Vec2, impulse float64) {
	e := &g.enemies[idx]
	if !e.Active {
		return
	}
	dir := e.Pos.Sub(from).Normalized()
	e.Knockback = e.Knockback.Add(dir.Scale(impulse))
}

// nearestEnemy returns the index of the closest active enemy within
// maxRange of pos, or -1. maxRange <= 0 means unlimited.
func (g *Game) nearestEnemy(pos Vec2, maxRange float64) int {
	best := -1
	bestD := maxRange * maxRange
	if maxRange <= 0 {
		bestD = WorldW*WorldW + WorldH*WorldH
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		d := distSq(pos, e.Pos)
		if d <= bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// activeEnemyCount is used by the HUD and by pool-invariant tests.
func (g *Game) activeEnemyCount() int {
	n := 0
	for i := range g.enemies {
		if g.enemies[i].Active {
			n++
		}
	}
	return n
}
