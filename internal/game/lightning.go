package game

// Strike is a short-lived lightning impact: area damage applied once at
// spawn, then a fading visual.
type Strike struct {
	Active bool
	Pos    Vec2
	Radius float64
	Life   float64
}

// fireLightning picks the highest-weighted enemies in range — nearest
// with a low-HP bias — and strikes each. Needs at least one target.
func (g *Game) fireLightning() bool {
	slot := &g.weapons[WeaponLightning]

	count := g.projectileCount()
	dmgMul := 1.0
	switch slot.Branch {
	case lightningBranchStorm:
		count += 2 + slot.BranchTier/2
	case lightningBranchSmite:
		count = 1
		dmgMul = smiteDamageMult + 0.3*float64(slot.BranchTier)
	}

	if count > MaxStrikes {
		count = MaxStrikes
	}
	var targets [MaxStrikes]int
	n := g.lightningTargets(targets[:count])
	if n == 0 {
		return false
	}

	for _, e := range targets[:n] {
		pos := g.enemies[e].Pos
		if slot.Branch == lightningBranchStorm {
			// Storm scatters strikes randomly around the player rather
			// than on exact enemy positions.
			pos = g.player.Pos.Add(vecFromAngle(g.rng.Angle()).Scale(g.rng.Float64() * stormScatterRadius))
		}
		dmg := g.effDamage(WeaponLightning) * dmgMul
		g.spawnStrike(pos, dmg)

		if slot.Branch == lightningBranchChain {
			// The strike already damaged e; the bolt hops onward from it
			// to fresh enemies, damage starting one decay step down.
			g.spawnChainBoltFrom(e, dmg*chainDecay, chainBaseJumps+slot.BranchTier, WeaponLightning)
		}
	}
	return true
}

// lightningTargets fills dst with up to len(dst) distinct enemy
// indices inside lightningRange, best weight first, and returns how
// many it wrote. Weight prefers near and wounded enemies. Scratch
// lives on the stack so a volley allocates nothing.
func (g *Game) lightningTargets(dst []int) int {
	var (
		idx    [MaxEnemies]int
		weight [MaxEnemies]float64
	)
	nc := 0
	maxR := lightningRange * g.player.stats.AreaMult
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		d := dist(g.player.Pos, e.Pos)
		if d > maxR {
			continue
		}
		// Nearness and missing HP both raise the weight.
		idx[nc] = i
		weight[nc] = (1 - d/maxR) + (1 - clamp01(e.HP/e.MaxHP))
		nc++
	}
	n := len(dst)
	if n > nc {
		n = nc
	}
	// Selection sort of the top n: candidate counts are tiny.
	for out := 0; out < n; out++ {
		best := 0
		for j := 1; j < nc; j++ {
			if weight[j] > weight[best] {
				best = j
			}
		}
		dst[out] = idx[best]
		nc--
		idx[best] = idx[nc]
		weight[best] = weight[nc]
	}
	return n
}

// spawnStrike applies the strike's area damage and leaves the visual.
func (g *Game) spawnStrike(pos Vec2, damage float64) {
	radius := lightningStrikeRadius * g.player.stats.AreaMult
	for e := range g.enemies {
		en := &g.enemies[e]
		if !en.Active {
			continue
		}
		if dist(pos, en.Pos) <= radius+en.stats().radius {
			g.damageEnemy(e, damage, WeaponLightning)
		}
	}

	for i := range g.strikes {
		if g.strikes[i].Active {
			continue
		}
		g.strikes[i] = Strike{Active: true, Pos: pos, Radius: radius, Life: lightningStrikeTime}
		return
	}
}

// updateStrikes only ages the visuals; damage happened at spawn.
func (g *Game) updateStrikes(dt float64) {
	for i := range g.strikes {
		s := &g.strikes[i]
		if !s.Active {
			continue
		}
		s.Life -= dt
		if s.Life <= 0 {
			s.Active = false
		}
	}
}

// --- Chain bolts ---
//
// ChainBolt is the jumping-arc effect shared by the arc whip weapon and
// the sky lance's Chain branch. It hops between enemies with a bounded
// visited set, damage decaying per jump.

type ChainBolt struct {
	Active         bool
	From           Vec2
	Target         int // enemy pool index of the pending jump
	Damage         float64
	RemainingJumps int
	JumpTimer      float64
	Source         WeaponType

	Visited  [chainMaxVisited]int
	nVisited int
}

// fireChain starts a bolt at the nearest enemy. Needs a target.
func (g *Game) fireChain() bool {
	slot := &g.weapons[WeaponChain]
	target := g.nearestEnemy(g.player.Pos, chainJumpRange*2)
	if target < 0 {
		return false
	}
	jumps := chainBaseJumps + slot.BranchTier
	g.spawnChainBolt(target, g.effDamage(WeaponChain), jumps, WeaponChain)
	return true
}

// spawnChainBolt seeds a bolt that will damage target immediately on
// its first update and then jump onward.
func (g *Game) spawnChainBolt(target int, damage float64, jumps int, source WeaponType) {
	for i := range g.bolts {
		if g.bolts[i].Active {
			continue
		}
		b := &g.bolts[i]
		*b = ChainBolt{
			Active:         true,
			From:           g.player.Pos,
			Target:         target,
			Damage:         damage,
			RemainingJumps: jumps,
			Source:         source,
		}
		return
	}
}

// spawnChainBoltFrom seeds a bolt from an enemy that was already hit
// by something else: struck goes straight into the visited set and the
// bolt's first target is the nearest other enemy.
func (g *Game) spawnChainBoltFrom(struck int, damage float64, jumps int, source WeaponType) {
	for i := range g.bolts {
		if g.bolts[i].Active {
			continue
		}
		b := &g.bolts[i]
		*b = ChainBolt{
			Active:         true,
			From:           g.enemies[struck].Pos,
			Damage:         damage,
			RemainingJumps: jumps,
			Source:         source,
		}
		b.Visited[0] = struck
		b.nVisited = 1
		next := g.nearestUnvisitedEnemy(b.From, chainJumpRange, b)
		if next < 0 {
			b.Active = false
			return
		}
		b.Target = next
		return
	}
}

// updateChainBolts performs one jump per bolt per interval: damage the
// pending target, record it as visited, pick the nearest unvisited
// enemy in jump range, decay the damage.
func (g *Game) updateChainBolts(dt float64) {
	for i := range g.bolts {
		b := &g.bolts[i]
		if !b.Active {
			continue
		}
		b.JumpTimer -= dt
		if b.JumpTimer > 0 {
			continue
		}

		if b.Target < 0 || !g.enemies[b.Target].Active {
			b.Active = false
			continue
		}

		hitPos := g.enemies[b.Target].Pos
		g.damageEnemy(b.Target, b.Damage, b.Source)
		if b.nVisited < chainMaxVisited {
			b.Visited[b.nVisited] = b.Target
			b.nVisited++
		}
		b.From = hitPos

		b.RemainingJumps--
		if b.RemainingJumps <= 0 || b.nVisited >= chainMaxVisited {
			b.Active = false
			continue
		}

		next := g.nearestUnvisitedEnemy(hitPos, chainJumpRange, b)
		if next < 0 {
			b.Active = false
			continue
		}
		b.Target = next
		b.Damage *= chainDecay
		b.JumpTimer = chainBoltTime
	}
}

// nearestUnvisitedEnemy is nearestEnemy restricted by a bolt's visited
// set.
func (g *Game) nearestUnvisitedEnemy(pos Vec2, maxRange float64, b *ChainBolt) int {
	best := -1
	bestD := maxRange * maxRange
	for i := range g.enemies {
		if !g.enemies[i].Active {
			continue
		}
		visited := false
		for v := 0; v < b.nVisited; v++ {
			if b.Visited[v] == i {
				visited = true
				break
			}
		}
		if visited {
			continue
		}
		d := distSq(pos, g.enemies[i].Pos)
		if d <= bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// --- Poison clouds ---

// PoisonCloud damages everything inside it on a fixed tick and applies
// a slow that outlasts the tick slightly.
type PoisonCloud struct {
	Active    bool
	Pos       Vec2
	Radius    float64
	Damage    float64
	Life      float64
	TickTimer float64
}

// firePoison drops a cloud on the nearest enemy, or at the player's
// feet when the field is empty — it always fires.
func (g *Game) firePoison() bool {
	pos := g.player.Pos
	if t := g.nearestEnemy(g.player.Pos, 0); t >= 0 {
		pos = g.enemies[t].Pos
	}
	for i := range g.clouds {
		if g.clouds[i].Active {
			continue
		}
		g.clouds[i] = PoisonCloud{
			Active: true,
			Pos:    pos,
			Radius: poisonRadius * g.player.stats.AreaMult,
			Damage: g.effDamage(WeaponPoison),
			Life:   poisonDuration,
		}
		return true
	}
	return true
}

func (g *Game) updatePoisonClouds(dt float64) {
	for i := range g.clouds {
		c := &g.clouds[i]
		if !c.Active {
			continue
		}
		c.Life -= dt
		if c.Life <= 0 {
			c.Active = false
			continue
		}
		c.TickTimer -= dt
		if c.TickTimer > 0 {
			continue
		}
		c.TickTimer = poisonTickRate

		for e := range g.enemies {
			en := &g.enemies[e]
			if !en.Active {
				continue
			}
			if dist(c.Pos, en.Pos) <= c.Radius+en.stats().radius {
				g.damageEnemy(e, c.Damage, WeaponPoison)
				if en.Active {
					en.applySlow(poisonSlow, poisonSlowTime)
				}
			}
		}
	}
}
