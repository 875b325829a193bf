package game

import "math"

// Stats is the flat bag of permanent player modifiers: the baseline
// plus everything committed through the upgrade carousel. Active buffs
// never mutate this bag — they overlay the derived values (see
// effDamageMult and friends in buffs.go).
type Stats struct {
	MaxHP            float64
	MoveSpeed        float64 // px/s
	MagnetRange      float64
	DamageMult       float64
	AttackSpeedMult  float64
	AreaMult         float64
	CritChance       float64 // percent, capped at 100
	BonusProjectiles int
	Armor            float64 // percent damage reduction, capped at 90
	Lifesteal        float64 // percent of damage dealt returned as HP
	Dodge            float64 // percent chance to ignore a hit, capped at 75
	Thorns           float64 // percent of incoming damage reflected
	Regen            float64 // HP/s while stationary past the regen delay
}

func baseStats() Stats {
	return Stats{
		MaxHP:           playerBaseMaxHP,
		MoveSpeed:       playerBaseSpeed,
		MagnetRange:     playerBaseMagnetRange,
		DamageMult:      1,
		AttackSpeedMult: 1,
		AreaMult:        1,
	}
}

// Player is created once per run.
type Player struct {
	Pos    Vec2
	HP     float64
	XP     int
	Level  int
	Facing float64 // last non-zero movement direction

	stats Stats

	InvincibilityTimer float64
	HurtFlash          float64
	StationaryTime     float64
	IsMoving           bool
}

func newPlayer() Player {
	return Player{
		Pos:    Vec2{WorldW / 2, WorldH / 2},
		HP:     playerBaseMaxHP,
		Level:  1,
		Facing: -math.Pi / 2, // facing up until the first move
		stats:  baseStats(),
	}
}

// xpToNextLevel is strictly increasing in level; level 1→2 costs 5 XP
// at the default curve slope.
func (g *Game) xpToNextLevel(level int) int {
	return int(math.Round(5 + float64(level-1)*g.tuning.XPCurveSlope))
}

// updatePlayer integrates movement, clamps to the world rectangle, and
// advances the timers that gate regen and damage intake.
func (g *Game) updatePlayer(in *InputState, dt float64) {
	p := &g.player

	dir := in.MoveDir()
	p.IsMoving = dir.Len() > 0
	if p.IsMoving {
		p.Facing = dir.Angle()
		p.StationaryTime = 0
		speed := p.stats.MoveSpeed * g.effSpeedMult()
		p.Pos = p.Pos.Add(dir.Scale(speed * dt))
	} else {
		p.StationaryTime += dt
	}

	// The world edge is a soft wall.
	p.Pos.X = clampF(p.Pos.X, 0, WorldW)
	p.Pos.Y = clampF(p.Pos.Y, 0, WorldH)

	if p.InvincibilityTimer > 0 {
		p.InvincibilityTimer -= dt
	}
	if p.HurtFlash > 0 {
		p.HurtFlash -= dt
	}

	// Regen only applies after standing still for a while.
	if p.StationaryTime >= regenDelay && p.stats.Regen > 0 {
		p.HP = clampF(p.HP+p.stats.Regen*dt, 0, p.stats.MaxHP)
	}
}

// playerTakeDamage resolves one incoming hit from the enemy at
// attackerIdx. Shield buff and the invincibility window block it
// outright; a successful dodge roll ignores it; otherwise armor scales
// it down and thorns reflect a share back at the attacker.
func (g *Game) playerTakeDamage(incoming float64, attackerIdx int) {
	p := &g.player
	if p.InvincibilityTimer > 0 || g.buffActive(PotionShield) {
		return
	}
	if g.tryShieldBlock() {
		p.InvincibilityTimer = playerInvincibility
		return
	}
	if p.stats.Dodge > 0 && g.rng.Chance(p.stats.Dodge) {
		g.spawnPopup(p.Pos, "dodge", colHUDDim)
		return
	}

	dealt := incoming * (1 - p.stats.Armor/100)
	p.HP = clampF(p.HP-dealt, 0, p.stats.MaxHP)
	p.InvincibilityTimer = playerInvincibility
	p.HurtFlash = hurtFlashTime
	g.log("player_hit", "", dealt)

	if p.stats.Thorns > 0 && attackerIdx >= 0 && g.enemies[attackerIdx].Active {
		g.damageEnemy(attackerIdx, incoming*p.stats.Thorns/100, weaponNone)
	}

	if p.HP <= 0 {
		g.enterGameOver()
	}
}

// grantXP adds experience and queues level-ups. Several thresholds can
// be crossed by one large gem; each queued level-up presents its own
// carousel.
func (g *Game) grantXP(amount int) {
	p := &g.player
	p.XP += amount
	for p.XP >= g.xpToNextLevel(p.Level) {
		p.XP -= g.xpToNextLevel(p.Level)
		p.Level++
		g.pendingLevelUps++
		g.log("level_up", "", float64(p.Level))
	}
	if g.pendingLevelUps > 0 && g.state == StatePlaying {
		g.enterLevelUp()
	}
}

// rollCrit returns the damage multiplier for one hit.
func (g *Game) rollCrit() float64 {
	if g.player.stats.CritChance > 0 && g.rng.Chance(g.player.stats.CritChance) {
		g.spawnPopup(g.player.Pos, "crit!", colSelect)
		return critMult
	}
	return 1
}
