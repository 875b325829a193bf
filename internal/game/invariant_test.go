package game

import (
	"testing"
)

// --- Determinism ---

// Two simulations with the same seed and input stream must evolve
// identically tick for tick.
func TestInvariant_Determinism(t *testing.T) {
	run := func() SimSnapshot {
		ts := NewTestSim(WithSeed(99))
		in := InputState{}
		in.Buttons[BtnMoveRight].Down = true
		ts.RunSeconds(15, in)
		return ts.Snapshot()
	}
	a := run()
	b := run()
	if a != b {
		t.Fatalf("same seed diverged:\n a=%+v\n b=%+v", a, b)
	}
}

func TestInvariant_DifferentSeedsDiverge(t *testing.T) {
	// Commit the top carousel offer at every level-up; a zero-input run
	// would otherwise freeze at the first carousel and never diverge.
	run := func(seed int64) SimSnapshot {
		ts := NewTestSim(WithSeed(seed))
		for i := 0; i < 60*20; i++ {
			in := InputState{}
			if ts.G.state == StateLevelUp {
				in.SelectPressed = true
			}
			ts.Step(in)
		}
		return ts.Snapshot()
	}
	a, b := run(1), run(2)
	if a == b {
		t.Fatal("different seeds produced identical runs; rng not wired in")
	}
}

// --- Bounds ---

func TestInvariant_PlayerStaysInWorld(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	in := InputState{}
	in.Buttons[BtnMoveLeft].Down = true
	in.Buttons[BtnMoveUp].Down = true
	ts.RunSeconds(25, in) // far more than needed to cross the world

	p := ts.G.player.Pos
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("player not clamped to the corner: (%.1f,%.1f)", p.X, p.Y)
	}
	// Camera clamps too.
	if ts.G.cam.X != 0 || ts.G.cam.Y != 0 {
		t.Fatalf("camera left the world: (%.1f,%.1f)", ts.G.cam.X, ts.G.cam.Y)
	}
}

func TestInvariant_CameraClampBottomRight(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons(), WithPlayerAt(WorldW-1, WorldH-1))
	g := ts.G
	wantX := WorldW - float64(g.screenW)
	wantY := WorldH - float64(g.screenH)
	if g.cam.X != wantX || g.cam.Y != wantY {
		t.Fatalf("camera (%.1f,%.1f), want (%.1f,%.1f)", g.cam.X, g.cam.Y, wantX, wantY)
	}
}

func TestInvariant_HPWithinBounds(t *testing.T) {
	ts := NewTestSim(
		WithSeed(3),
		WithEnemyAt(EnemyWalker, WorldW/2+15, WorldH/2),
		WithEnemyAt(EnemyFast, WorldW/2-15, WorldH/2),
		WithEnemyAt(EnemyTank, WorldW/2, WorldH/2+15),
	)
	g := ts.G
	g.player.stats.Lifesteal = 50 // pushes heals aggressively

	for i := 0; i < 60*30; i++ {
		ts.Step(InputState{})
		hp := g.player.HP
		if hp < 0 || hp > g.player.stats.MaxHP {
			t.Fatalf("hp %.2f outside [0,%.0f] at t=%.2f", hp, g.player.stats.MaxHP, g.gameTime)
		}
		if g.state == StateGameOver {
			break
		}
		if g.state == StateLevelUp {
			g.upgradeCursor = len(g.upgradeOffers) - 1 // skip
			g.updateLevelUp(&InputState{SelectPressed: true})
		}
	}
}

// --- Pool saturation ---

func TestInvariant_SaturatedEnemyPoolDropsSpawns(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	for i := range g.enemies {
		g.enemies[i].Active = true
		g.enemies[i].HP = 1
		g.enemies[i].Pos = Vec2{100, 100}
	}
	g.spawnEnemy() // must not panic, must not change the count
	if got := g.activeEnemyCount(); got != MaxEnemies {
		t.Fatalf("active enemies %d, want %d", got, MaxEnemies)
	}
}

func TestInvariant_SaturatedPotionPoolDropsDrops(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	for i := range g.potionDrops {
		g.potionDrops[i] = PotionDrop{Active: true, Pos: Vec2{100, 100}}
	}
	g.spawnPotionDrop(Vec2{200, 200}, PotionShield)
	for i := range g.potionDrops {
		if g.potionDrops[i].Pos.X == 200 {
			t.Fatal("potion drop spawned into a saturated pool")
		}
	}
}

func TestInvariant_SaturatedPopupPoolDropsText(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	for i := range g.popups {
		g.popups[i] = TextPopup{Active: true, Text: "old", Life: 1}
	}
	g.spawnPopup(Vec2{200, 200}, "new", colHUDText)
	for i := range g.popups {
		if g.popups[i].Text == "new" {
			t.Fatal("popup spawned into a saturated pool")
		}
	}
}

func TestInvariant_SaturatedGemPoolDropsGems(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	for i := range g.gems {
		g.gems[i] = Gem{Active: true, Pos: Vec2{100, 100}}
	}
	g.spawnGem(Vec2{200, 200}, GemLarge)
	for i := range g.gems {
		if g.gems[i].Pos.X == 200 {
			t.Fatal("gem spawned into a saturated pool")
		}
	}
}

// --- Damage intake rules ---

func TestInvariant_InvincibilityWindow(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithNoWeapons(),
		WithEnemyAt(EnemyWalker, WorldW/2, WorldH/2),
	)
	g := ts.G

	ts.Step(InputState{})
	afterFirst := g.player.HP
	if afterFirst != playerBaseMaxHP-enemyTable[EnemyWalker].damage {
		t.Fatalf("first contact dealt wrong damage: hp=%.1f", afterFirst)
	}

	// Inside the invincibility window the grinding enemy cannot hit
	// again.
	ts.RunSeconds(playerInvincibility-0.1, InputState{})
	if g.player.HP != afterFirst {
		t.Fatalf("hit landed during invincibility: hp=%.1f", g.player.HP)
	}

	// Past the window it can.
	ts.RunSeconds(0.3, InputState{})
	if g.player.HP >= afterFirst {
		t.Fatalf("no hit landed after invincibility expired: hp=%.1f", g.player.HP)
	}
}

func TestInvariant_ArmorReducesDamage(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	g.player.stats.Armor = 50

	g.playerTakeDamage(20, -1)
	if got := playerBaseMaxHP - g.player.HP; got != 10 {
		t.Fatalf("50%% armor let %.1f through from a 20 hit, want 10", got)
	}
}

func TestInvariant_ShieldBuffBlocksAll(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	g.startBuff(PotionShield)

	g.playerTakeDamage(50, -1)
	if g.player.HP != playerBaseMaxHP {
		t.Fatalf("shield buff leaked damage: hp=%.1f", g.player.HP)
	}
}

func TestInvariant_ThornsReflect(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithNoWeapons(),
		WithEnemyAt(EnemyTank, WorldW/2+5, WorldH/2),
	)
	g := ts.G
	g.player.stats.Thorns = 50

	idx := g.nearestEnemy(g.player.Pos, 0)
	before := g.enemies[idx].HP
	g.playerTakeDamage(16, idx)
	if got := before - g.enemies[idx].HP; got != 8 {
		t.Fatalf("thorns reflected %.1f from a 16 hit, want 8", got)
	}
}

// --- Stat caps hold under repeated application ---

func TestInvariant_StatCaps(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	g := ts.G

	for i := 0; i < 100; i++ {
		g.applyUpgrade(UpgradeOffer{Kind: UpgradeStat, Stat: StatDodge})
		g.applyUpgrade(UpgradeOffer{Kind: UpgradeStat, Stat: StatArmor})
		g.applyUpgrade(UpgradeOffer{Kind: UpgradeStat, Stat: StatCrit})
		g.applyUpgrade(UpgradeOffer{Kind: UpgradeStat, Stat: StatProjectiles})
	}
	st := g.player.stats
	if st.Dodge != capDodge {
		t.Errorf("dodge %.1f, cap %.1f", st.Dodge, capDodge)
	}
	if st.Armor != capArmor {
		t.Errorf("armor %.1f, cap %.1f", st.Armor, capArmor)
	}
	if st.CritChance != capCrit {
		t.Errorf("crit %.1f, cap %.1f", st.CritChance, capCrit)
	}
	if st.BonusProjectiles != capBonusProjectiles {
		t.Errorf("projectiles %d, cap %d", st.BonusProjectiles, capBonusProjectiles)
	}
}
