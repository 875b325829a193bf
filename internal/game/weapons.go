package game

// WeaponType indexes the nine weapon slots. Dispatch is a switch on
// this tag; there is no weapon interface hierarchy.
type WeaponType int

const (
	WeaponMelee WeaponType = iota
	WeaponBullet
	WeaponWave
	WeaponOrbit
	WeaponLightning
	WeaponSeeker
	WeaponBoomerang
	WeaponPoison
	WeaponChain

	NumWeapons
)

// weaponNone marks damage with no weapon attribution (thorns).
const weaponNone WeaponType = -1

func (w WeaponType) String() string {
	switch w {
	case WeaponMelee:
		return "cleaver"
	case WeaponBullet:
		return "repeater"
	case WeaponWave:
		return "resonance wave"
	case WeaponOrbit:
		return "orbit shards"
	case WeaponLightning:
		return "sky lance"
	case WeaponSeeker:
		return "seeker bolt"
	case WeaponBoomerang:
		return "glaive"
	case WeaponPoison:
		return "blight flask"
	case WeaponChain:
		return "arc whip"
	}
	return "?"
}

// Branch identifiers. Branch 0 is "none"; 1..3 select a specialization
// once the weapon reaches tier 2. The meaning of each number depends on
// the weapon.
const (
	branchNone = 0

	meleeBranchWide  = 1
	meleeBranchPower = 2
	meleeBranchSpin  = 3

	bulletBranchRapid  = 1
	bulletBranchPierce = 2
	bulletBranchSpread = 3

	waveBranchNova   = 1
	waveBranchPulse  = 2
	waveBranchFreeze = 3

	orbitBranchShield = 1
	orbitBranchSwarm  = 2
	orbitBranchHeavy  = 3

	lightningBranchChain = 1
	lightningBranchStorm = 2
	lightningBranchSmite = 3
)

// branchName returns the display name for a weapon's branch.
func branchName(w WeaponType, branch int) string {
	names := map[WeaponType][3]string{
		WeaponMelee:     {"wide", "power", "spin"},
		WeaponBullet:    {"rapid", "pierce", "spread"},
		WeaponWave:      {"nova", "pulse", "freeze"},
		WeaponOrbit:     {"shield", "swarm", "heavy"},
		WeaponLightning: {"chain", "storm", "smite"},
		WeaponSeeker:    {"salvo", "payload", "swift"},
		WeaponBoomerang: {"twin", "wide arc", "razor"},
		WeaponPoison:    {"miasma", "virulent", "lingering"},
		WeaponChain:     {"conduit", "overload", "tether"},
	}
	if branch < 1 || branch > 3 {
		return "none"
	}
	return names[w][branch-1]
}

// WeaponSlot holds the per-run state of one weapon. Tier 0 is locked.
type WeaponSlot struct {
	Tier       int // 0 locked, 1..5
	Branch     int // 0 none, 1..3; selectable at tier >= 2
	BranchTier int // 0..5

	Cooldown float64 // seconds until the next shot; held at 0 without a target

	// Melee spin branch sweep state.
	Spinning  bool
	SpinAngle float64
	SpinTime  float64
}

// weaponBase is the tier-0 stat row for a weapon.
type weaponBase struct {
	damage   float64
	cooldown float64
}

var weaponTable = [NumWeapons]weaponBase{
	WeaponMelee:     {meleeBaseDamage, meleeBaseCooldown},
	WeaponBullet:    {bulletBaseDamage, bulletBaseCooldown},
	WeaponWave:      {waveBaseDamage, waveBaseCooldown},
	WeaponOrbit:     {orbitBaseDamage, orbitBaseCooldown},
	WeaponLightning: {lightningBaseDamage, lightningBaseCooldown},
	WeaponSeeker:    {seekerBaseDamage, seekerBaseCooldown},
	WeaponBoomerang: {boomerangBaseDamage, boomerangBaseCooldown},
	WeaponPoison:    {poisonBaseDamage, poisonBaseCooldown},
	WeaponChain:     {chainBaseDamage, chainBaseCooldown},
}

// orbitBaseCooldown exists for table symmetry; orbit orbs are
// maintained continuously rather than fired, so the cooldown drives
// orb-set refresh only.
const orbitBaseCooldown = 1.0

// effCooldown computes the reset value for a weapon's cooldown timer.
// Tier 1 fires at exactly 1/base Hz; each further tier and every
// attack-speed upgrade shortens it.
func (g *Game) effCooldown(w WeaponType) float64 {
	slot := &g.weapons[w]
	tierMul := 1 + float64(slot.Tier-1)*tierCooldownStep
	cd := weaponTable[w].cooldown / tierMul / g.player.stats.AttackSpeedMult

	// Branch cooldown modifiers.
	switch {
	case w == WeaponMelee && slot.Branch == meleeBranchWide:
		cd *= 0.8
	case w == WeaponBullet && slot.Branch == bulletBranchRapid:
		cd *= 1 - 0.06*float64(slot.BranchTier) - 0.15
	case w == WeaponWave && slot.Branch == waveBranchPulse:
		cd *= 0.45
	}
	return cd
}

// effDamage computes one hit's damage for a weapon, crit already
// rolled. Branch-specific multipliers are applied at the call sites
// that know the context (jump decay, smite, heavy orbs).
func (g *Game) effDamage(w WeaponType) float64 {
	slot := &g.weapons[w]
	dmg := weaponTable[w].damage * (1 + float64(slot.Tier)*tierDamageStep)
	dmg *= g.effDamageMult()
	return dmg * g.rollCrit()
}

// projectileCount is 1 plus the player's bonus projectiles.
func (g *Game) projectileCount() int {
	return 1 + g.player.stats.BonusProjectiles
}

// cooldownEpsilon absorbs float drift in the tick decrement so a
// cooldown that lands a hair above zero still fires on that tick.
const cooldownEpsilon = 1e-9

// updateWeapons runs every weapon with tier >= 1. Target-seeking
// weapons hold their cooldown at zero while no target is available;
// self-centred weapons always fire.
func (g *Game) updateWeapons(dt float64) {
	for w := WeaponType(0); w < NumWeapons; w++ {
		slot := &g.weapons[w]
		if slot.Tier < 1 {
			continue
		}

		// Orbit orbs are continuous: maintain the set and advance it.
		if w == WeaponOrbit {
			g.updateOrbit(dt)
			continue
		}

		// Melee spin branch sweeps instead of swinging discretely.
		if w == WeaponMelee && slot.Branch == meleeBranchSpin && slot.Spinning {
			g.updateMeleeSpin(dt)
		}

		if slot.Cooldown > 0 {
			slot.Cooldown -= dt
		}
		if slot.Cooldown > cooldownEpsilon {
			continue
		}

		if g.fireWeapon(w) {
			// Carry the sub-tick overshoot into the reset so the
			// steady-state period is exactly effCooldown.
			slot.Cooldown += g.effCooldown(w)
			g.firesByWeapon[w]++
		} else if slot.Cooldown < 0 {
			// Skipped shot: hold at zero until a target exists.
			slot.Cooldown = 0
		}
	}
}

// fireWeapon dispatches one firing of a weapon. Returns false when the
// weapon needs a target and none is in range; the cooldown is then not
// reset.
func (g *Game) fireWeapon(w WeaponType) bool {
	switch w {
	case WeaponMelee:
		return g.fireMelee()
	case WeaponBullet:
		return g.fireBullets()
	case WeaponWave:
		return g.fireWave()
	case WeaponLightning:
		return g.fireLightning()
	case WeaponSeeker:
		return g.fireSeeker()
	case WeaponBoomerang:
		return g.fireBoomerang()
	case WeaponPoison:
		return g.firePoison()
	case WeaponChain:
		return g.fireChain()
	}
	return false
}
