package game

// Bullet is a straight-line projectile from the repeater.
type Bullet struct {
	Active bool
	Pos    Vec2
	Vel    Vec2
	Damage float64
	Life   float64
	Pierce int // remaining enemies this bullet may pass through
}

// fireBullets spawns the repeater volley toward the nearest enemy.
// Needs a target; without one the shot is skipped and the cooldown is
// not reset.
func (g *Game) fireBullets() bool {
	target := g.nearestEnemy(g.player.Pos, 0)
	if target < 0 {
		return false
	}
	slot := &g.weapons[WeaponBullet]
	aim := g.enemies[target].Pos.Sub(g.player.Pos).Angle()

	count := g.projectileCount()
	spread := 0.0
	switch slot.Branch {
	case bulletBranchRapid:
		count++
	case bulletBranchSpread:
		count += 2 + slot.BranchTier
		spread = bulletSpreadArc
	}

	pierce := 0
	if slot.Branch == bulletBranchPierce {
		pierce = 1 + slot.BranchTier
	}

	for i := 0; i < count; i++ {
		angle := aim
		if count > 1 && spread > 0 {
			angle += -spread/2 + spread*float64(i)/float64(count-1)
		} else if i > 0 {
			// Without the spread branch, extra projectiles fan out
			// slightly so they don't stack on one line.
			angle += (g.rng.Float64() - 0.5) * 0.12
		}
		g.spawnBullet(angle, pierce)
	}
	return true
}

func (g *Game) spawnBullet(angle float64, pierce int) {
	for i := range g.bullets {
		if g.bullets[i].Active {
			continue
		}
		g.bullets[i] = Bullet{
			Active: true,
			Pos:    g.player.Pos,
			Vel:    vecFromAngle(angle).Scale(bulletSpeed),
			Damage: g.effDamage(WeaponBullet),
			Life:   bulletLifetime,
			Pierce: pierce,
		}
		return
	}
}

// updateBullets advances bullets and resolves their enemy collisions.
// A bullet dies on its first hit unless it has pierce charges left.
func (g *Game) updateBullets(dt float64) {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		b.Life -= dt
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.Life <= 0 || b.Pos.X < 0 || b.Pos.X > WorldW || b.Pos.Y < 0 || b.Pos.Y > WorldH {
			b.Active = false
			continue
		}

		for e := range g.enemies {
			if !g.enemies[e].Active {
				continue
			}
			if !circlesOverlap(b.Pos, bulletRadius, g.enemies[e].Pos, g.enemies[e].stats().radius) {
				continue
			}
			g.damageEnemy(e, b.Damage, WeaponBullet)
			if b.Pierce > 0 {
				b.Pierce--
				continue
			}
			b.Active = false
			break
		}
	}
}

// --- Seeker ---

// Seeker homes on its target with turn-rate-limited steering and
// detonates in an area on contact.
type Seeker struct {
	Active  bool
	Pos     Vec2
	Heading float64
	Damage  float64
	Life    float64
	Target  int // enemy pool index; revalidated every tick
}

// fireSeeker needs a live target.
func (g *Game) fireSeeker() bool {
	target := g.nearestEnemy(g.player.Pos, 0)
	if target < 0 {
		return false
	}
	for i := range g.seekers {
		if g.seekers[i].Active {
			continue
		}
		g.seekers[i] = Seeker{
			Active:  true,
			Pos:     g.player.Pos,
			Heading: g.player.Facing,
			Damage:  g.effDamage(WeaponSeeker),
			Life:    seekerLifetime,
			Target:  target,
		}
		return true
	}
	// Pool full: the shot is spent (cooldown resets) but nothing spawns.
	return true
}

func (g *Game) updateSeekers(dt float64) {
	for i := range g.seekers {
		s := &g.seekers[i]
		if !s.Active {
			continue
		}
		s.Life -= dt
		if s.Life <= 0 {
			s.Active = false
			continue
		}

		// Retarget when the tracked enemy died.
		if s.Target < 0 || !g.enemies[s.Target].Active {
			s.Target = g.nearestEnemy(s.Pos, 0)
		}
		if s.Target >= 0 {
			want := g.enemies[s.Target].Pos.Sub(s.Pos).Angle()
			turn := angleDiff(s.Heading, want)
			maxTurn := seekerTurnRate * dt
			s.Heading += clampF(turn, -maxTurn, maxTurn)
		}
		s.Pos = s.Pos.Add(vecFromAngle(s.Heading).Scale(seekerSpeed * dt))

		if s.Target >= 0 && g.enemies[s.Target].Active &&
			circlesOverlap(s.Pos, 6, g.enemies[s.Target].Pos, g.enemies[s.Target].stats().radius) {
			g.explodeSeeker(s)
			s.Active = false
		}
	}
}

// explodeSeeker applies area damage around the detonation point.
func (g *Game) explodeSeeker(s *Seeker) {
	radius := seekerExplosionRadius * g.player.stats.AreaMult
	for e := range g.enemies {
		if !g.enemies[e].Active {
			continue
		}
		if dist(s.Pos, g.enemies[e].Pos) <= radius+g.enemies[e].stats().radius {
			g.damageEnemy(e, s.Damage, WeaponSeeker)
		}
	}
	g.spawnHitParticles(s.Pos, colSeeker)
}

// --- Boomerang ---

// Boomerang travels out to its apex, then seeks back to the player's
// current position. It damages on touch both ways; being transient, it
// keeps no per-enemy hit memory.
type Boomerang struct {
	Active    bool
	Pos       Vec2
	Origin    Vec2
	Heading   float64
	Damage    float64
	Life      float64
	Returning bool
	HitTimer  float64 // gates contact damage to one application per interval
}

// boomerangHitInterval spaces contact damage so a glaive grinding along
// an enemy doesn't apply its full damage every frame.
const boomerangHitInterval = 0.2

// fireBoomerang aims at the nearest enemy, or the facing direction when
// the field is empty — it always fires.
func (g *Game) fireBoomerang() bool {
	aim := g.player.Facing
	if t := g.nearestEnemy(g.player.Pos, 0); t >= 0 {
		aim = g.enemies[t].Pos.Sub(g.player.Pos).Angle()
	}
	for i := range g.boomerangs {
		if g.boomerangs[i].Active {
			continue
		}
		g.boomerangs[i] = Boomerang{
			Active:  true,
			Pos:     g.player.Pos,
			Origin:  g.player.Pos,
			Heading: aim,
			Damage:  g.effDamage(WeaponBoomerang),
			Life:    boomerangLifetime,
		}
		return true
	}
	return true
}

func (g *Game) updateBoomerangs(dt float64) {
	for i := range g.boomerangs {
		b := &g.boomerangs[i]
		if !b.Active {
			continue
		}
		b.Life -= dt
		if b.Life <= 0 {
			b.Active = false
			continue
		}

		if !b.Returning {
			b.Pos = b.Pos.Add(vecFromAngle(b.Heading).Scale(boomerangSpeed * dt))
			if dist(b.Pos, b.Origin) >= boomerangMaxDist {
				b.Returning = true
			}
		} else {
			// Seek the player's current position, not the throw origin.
			dir := g.player.Pos.Sub(b.Pos)
			if dir.Len() <= playerPickupRange {
				b.Active = false
				continue
			}
			b.Pos = b.Pos.Add(dir.Normalized().Scale(boomerangSpeed * dt))
		}

		b.HitTimer -= dt
		if b.HitTimer <= 0 {
			hitAny := false
			for e := range g.enemies {
				if !g.enemies[e].Active {
					continue
				}
				if circlesOverlap(b.Pos, boomerangRadius, g.enemies[e].Pos, g.enemies[e].stats().radius) {
					g.damageEnemy(e, b.Damage, WeaponBoomerang)
					hitAny = true
				}
			}
			if hitAny {
				b.HitTimer = boomerangHitInterval
			}
		}
	}
}
