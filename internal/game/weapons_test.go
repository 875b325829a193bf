package game

import (
	"math"
	"testing"
)

func TestEffCooldown_TierScaling(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons(), WithWeapon(WeaponBullet, 1))
	g := ts.G

	if got := g.effCooldown(WeaponBullet); math.Abs(got-bulletBaseCooldown) > 1e-9 {
		t.Fatalf("tier 1 cooldown %.3f, want base %.3f", got, bulletBaseCooldown)
	}

	g.weapons[WeaponBullet].Tier = 5
	want := bulletBaseCooldown / (1 + 4*tierCooldownStep)
	if got := g.effCooldown(WeaponBullet); math.Abs(got-want) > 1e-9 {
		t.Fatalf("tier 5 cooldown %.3f, want %.3f", got, want)
	}

	// Attack speed divides on top of tier.
	g.player.stats.AttackSpeedMult = 2
	if got := g.effCooldown(WeaponBullet); math.Abs(got-want/2) > 1e-9 {
		t.Fatalf("attack speed x2 cooldown %.3f, want %.3f", got, want/2)
	}
}

func TestEffDamage_TierAndMult(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons(), WithWeapon(WeaponBullet, 3))
	g := ts.G
	g.player.stats.DamageMult = 1.5

	// Crit chance is zero, so the roll is deterministic.
	want := bulletBaseDamage * (1 + 3*tierDamageStep) * 1.5
	if got := g.effDamage(WeaponBullet); math.Abs(got-want) > 1e-9 {
		t.Fatalf("damage %.3f, want %.3f", got, want)
	}

	// Guaranteed crit doubles it.
	g.player.stats.CritChance = 100
	if got := g.effDamage(WeaponBullet); math.Abs(got-want*critMult) > 1e-9 {
		t.Fatalf("crit damage %.3f, want %.3f", got, want*critMult)
	}
}

// noSpawnTuning parks the spawner so tests control the field exactly.
func noSpawnTuning() Tuning {
	tu := defaultTuning()
	tu.SpawnBaseInterval = 1e9
	tu.SpawnMinInterval = 1e9
	tu.SpawnIntervalDecay = 0
	return tu
}

// Targeted weapons must not burn their cooldown into an empty field.
func TestTargetedWeaponHoldsFireWithoutTarget(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithTuning(noSpawnTuning()), WithNoWeapons(), WithWeapon(WeaponBullet, 1))
	g := ts.G

	ts.RunSeconds(3, InputState{})
	if g.firesByWeapon[WeaponBullet] != 0 {
		t.Fatal("repeater fired into an empty field")
	}
	if g.weapons[WeaponBullet].Cooldown > 0 {
		t.Fatalf("cooldown %.2f should stay at zero without a target", g.weapons[WeaponBullet].Cooldown)
	}

	// The instant a target exists, the held shot goes off.
	for i := range g.enemies {
		g.enemies[i] = Enemy{Active: true, Type: EnemyWalker, Pos: Vec2{WorldW/2 + 100, WorldH / 2}, HP: 12, MaxHP: 12}
		break
	}
	ts.Step(InputState{})
	if g.firesByWeapon[WeaponBullet] != 1 {
		t.Fatal("repeater did not fire once a target appeared")
	}
}

// Self-centred weapons fire regardless of targets.
func TestMeleeAlwaysFires(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	ts.RunSeconds(2.5, InputState{})
	g := ts.G
	// Base cooldown 1.0s: roughly one swing per second.
	if got := g.firesByWeapon[WeaponMelee]; got < 2 || got > 4 {
		t.Fatalf("melee fired %d times in 2.5s, want ~2-3", got)
	}
}

// At tier 1 with neutral attack speed a weapon's steady cadence is
// exactly one shot per base cooldown: 60 ticks between swings at
// dt=1/60, never 61.
func TestWeaponFirePeriodMatchesBaseCooldown(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithTuning(noSpawnTuning()))
	g := ts.G

	var fireTimes []float64
	for i := 0; i < 60*4; i++ {
		before := g.firesByWeapon[WeaponMelee]
		ts.Step(InputState{})
		if g.firesByWeapon[WeaponMelee] > before {
			fireTimes = append(fireTimes, g.gameTime)
		}
	}
	if len(fireTimes) < 3 {
		t.Fatalf("only %d swings in 4s", len(fireTimes))
	}
	for i := 1; i < len(fireTimes); i++ {
		gap := fireTimes[i] - fireTimes[i-1]
		if math.Abs(gap-meleeBaseCooldown) > 1e-9 {
			t.Fatalf("swing %d->%d gap %.9fs, want exactly %.1fs", i-1, i, gap, meleeBaseCooldown)
		}
	}
	// 4 swings in 4s: t=0, 1, 2, 3.
	if got := g.firesByWeapon[WeaponMelee]; got != 4 {
		t.Fatalf("%d swings in 4s, want 4", got)
	}
}

func TestBulletHitsAndDies(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithNoWeapons(),
		WithWeapon(WeaponBullet, 1),
		WithEnemyAt(EnemyWalker, WorldW/2+120, WorldH/2),
	)
	g := ts.G

	at := ts.RunUntil(func(g *Game) bool { return g.damageByWeapon[WeaponBullet] > 0 }, 2)
	if at < 0 {
		t.Fatal("bullet never connected with a 120px target")
	}
	// No pierce: the bullet dies on impact.
	for i := range g.bullets {
		if g.bullets[i].Active {
			t.Fatal("bullet survived its first hit without a pierce branch")
		}
	}
}

func TestBulletPierceBranch(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithNoWeapons(),
		WithWeapon(WeaponBullet, 2),
		WithWeaponBranch(WeaponBullet, bulletBranchPierce, 1),
		WithEnemyAt(EnemyWalker, WorldW/2+80, WorldH/2),
		WithEnemyAt(EnemyWalker, WorldW/2+130, WorldH/2),
	)

	at := ts.RunUntil(func(g *Game) bool {
		hits := 0
		for i := range g.enemies {
			if g.enemies[i].Active && g.enemies[i].HP < g.enemies[i].MaxHP {
				hits++
			}
			if !g.enemies[i].Active {
				hits++
			}
		}
		return hits >= 2
	}, 2)
	if at < 0 {
		t.Fatal("piercing bullet did not damage both enemies on one line")
	}
}

func TestOrbitMaintainsOrbSet(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons(), WithWeapon(WeaponOrbit, 1))
	g := ts.G
	ts.Step(InputState{})

	active := 0
	for i := range g.orbs {
		if g.orbs[i].Active {
			active++
		}
	}
	if active != orbitBaseCount {
		t.Fatalf("%d orbs active, want %d", active, orbitBaseCount)
	}

	// Swarm branch grows the ring.
	g.weapons[WeaponOrbit].Branch = orbitBranchSwarm
	g.weapons[WeaponOrbit].BranchTier = 2
	ts.Step(InputState{})
	active = 0
	for i := range g.orbs {
		if g.orbs[i].Active {
			active++
		}
	}
	if active != orbitBaseCount+4 {
		t.Fatalf("swarm ring has %d orbs, want %d", active, orbitBaseCount+4)
	}
}

func TestOrbitShieldBlocksContact(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithNoWeapons(),
		WithWeapon(WeaponOrbit, 2),
		WithWeaponBranch(WeaponOrbit, orbitBranchShield, 1),
	)
	g := ts.G
	ts.Step(InputState{}) // builds the orb set and stocks charges

	charges := 0
	for i := range g.orbs {
		charges += g.orbs[i].ShieldHits
	}
	if charges == 0 {
		t.Fatal("shield branch stocked no charges")
	}

	g.playerTakeDamage(30, -1)
	if g.player.HP != playerBaseMaxHP {
		t.Fatalf("shield charge did not absorb the hit: hp=%.1f", g.player.HP)
	}
	after := 0
	for i := range g.orbs {
		after += g.orbs[i].ShieldHits
	}
	if after != charges-1 {
		t.Fatalf("charges %d -> %d, want one consumed", charges, after)
	}
}

func TestWaveFreezeSlowsEnemies(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithNoWeapons(),
		WithWeapon(WeaponWave, 2),
		WithWeaponBranch(WeaponWave, waveBranchFreeze, 1),
		WithEnemyAt(EnemyWalker, WorldW/2+50, WorldH/2),
	)
	g := ts.G

	at := ts.RunUntil(func(g *Game) bool {
		for i := range g.enemies {
			if g.enemies[i].Active && g.enemies[i].FrozenTimer > 0 {
				return true
			}
		}
		return false
	}, 4)
	if at < 0 {
		t.Fatal("freeze wave never tagged the enemy")
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Active && e.FrozenTimer > 0 {
			if e.effectiveSpeed() >= e.stats().speed {
				t.Fatalf("frozen enemy not slowed: %.1f px/s", e.effectiveSpeed())
			}
		}
	}
}

func TestProjectileCountFollowsBonus(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	g := ts.G
	if g.projectileCount() != 1 {
		t.Fatalf("base projectile count %d, want 1", g.projectileCount())
	}
	g.player.stats.BonusProjectiles = 3
	if g.projectileCount() != 4 {
		t.Fatalf("boosted projectile count %d, want 4", g.projectileCount())
	}
}

func TestBranchNames(t *testing.T) {
	if got := branchName(WeaponMelee, meleeBranchSpin); got != "spin" {
		t.Fatalf("melee branch 3 = %q", got)
	}
	if got := branchName(WeaponBullet, 0); got != "none" {
		t.Fatalf("branch 0 = %q, want none", got)
	}
	for w := WeaponType(0); w < NumWeapons; w++ {
		if w.String() == "?" {
			t.Fatalf("weapon %d has no name", w)
		}
		for b := 1; b <= 3; b++ {
			if branchName(w, b) == "" {
				t.Fatalf("weapon %v branch %d has no name", w, b)
			}
		}
	}
}
