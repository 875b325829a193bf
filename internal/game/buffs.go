package game

// ActiveBuff tracks one potion effect. Buffs are transient overlays on
// the derived stats: they never touch the player's Stats bag, so expiry
// is just the timer reaching zero. Drinking a second potion of the same
// type resets the timer rather than stacking.
type ActiveBuff struct {
	Active    bool
	Remaining float64
}

func buffDuration(typ PotionType) float64 {
	switch typ {
	case PotionDamage:
		return buffDamageDuration
	case PotionSpeed:
		return buffSpeedDuration
	case PotionShield:
		return buffShieldDuration
	case PotionMagnet:
		return buffMagnetDuration
	}
	return 0
}

func (g *Game) startBuff(typ PotionType) {
	g.buffs[typ] = ActiveBuff{Active: true, Remaining: buffDuration(typ)}
	g.spawnPopup(g.player.Pos, typ.String()+"!", typ.color())
}

func (g *Game) buffActive(typ PotionType) bool {
	return g.buffs[typ].Active
}

func (g *Game) updateBuffs(dt float64) {
	for t := range g.buffs {
		b := &g.buffs[t]
		if !b.Active {
			continue
		}
		b.Remaining -= dt
		if b.Remaining <= 0 {
			b.Active = false
			g.log("buff_end", PotionType(t).String(), 0)
		}
	}
}

// effDamageMult is the permanent damage multiplier with the damage
// potion overlay applied.
func (g *Game) effDamageMult() float64 {
	m := g.player.stats.DamageMult
	if g.buffActive(PotionDamage) {
		m *= buffDamageMult
	}
	return m
}

func (g *Game) effSpeedMult() float64 {
	if g.buffActive(PotionSpeed) {
		return buffSpeedMult
	}
	return 1
}

func (g *Game) effMagnetMult() float64 {
	if g.buffActive(PotionMagnet) {
		return buffMagnetMult
	}
	return 1
}
