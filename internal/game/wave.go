package game

// Wave is a radial pulse expanding from the player's position at the
// moment of firing. Each enemy is damaged once per pulse, when the
// expanding rim first reaches it.
type Wave struct {
	Active     bool
	Center     Vec2
	Age        float64
	MaxRadius  float64
	Damage     float64
	Freeze     bool
	FreezeTime float64

	// One bit per enemy slot: already damaged by this pulse.
	hit [MaxEnemies]bool
}

// fireWave is self-centred and always fires.
func (g *Game) fireWave() bool {
	slot := &g.weapons[WeaponWave]

	radius := waveBaseRadius * g.player.stats.AreaMult
	dmg := g.effDamage(WeaponWave)
	freeze := false
	freezeTime := 0.0
	switch slot.Branch {
	case waveBranchNova:
		radius *= 1.3 + 0.1*float64(slot.BranchTier)
	case waveBranchPulse:
		radius *= 0.6
	case waveBranchFreeze:
		freeze = true
		freezeTime = waveFreezeTime + 0.2*float64(slot.BranchTier)
	}

	for i := range g.waves {
		if g.waves[i].Active {
			continue
		}
		g.waves[i] = Wave{
			Active:     true,
			Center:     g.player.Pos,
			MaxRadius:  radius,
			Damage:     dmg,
			Freeze:     freeze,
			FreezeTime: freezeTime,
		}
		return true
	}
	return true
}

// waveRadius is the rim radius at the wave's current age.
func (w *Wave) waveRadius() float64 {
	return w.MaxRadius * clamp01(w.Age/waveExpandTime)
}

// updateWaves expands each pulse and damages enemies the rim has
// reached. The hit set makes each pulse damage an enemy exactly once.
func (g *Game) updateWaves(dt float64) {
	for i := range g.waves {
		w := &g.waves[i]
		if !w.Active {
			continue
		}
		w.Age += dt
		if w.Age >= waveExpandTime {
			w.Active = false
			continue
		}
		rim := w.waveRadius()

		for e := range g.enemies {
			en := &g.enemies[e]
			if !en.Active || w.hit[e] {
				continue
			}
			if dist(w.Center, en.Pos) <= rim+en.stats().radius {
				w.hit[e] = true
				g.damageEnemy(e, w.Damage, WeaponWave)
				if w.Freeze && en.Active {
					en.applyFreeze(waveFreezeSlow, w.FreezeTime)
				}
			}
		}
	}
}
