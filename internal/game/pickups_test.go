package game

import (
	"testing"
)

func TestGemValues(t *testing.T) {
	if GemSmall.value() != gemValueSmall || GemMedium.value() != gemValueMedium || GemLarge.value() != gemValueLarge {
		t.Fatalf("gem values %d/%d/%d", GemSmall.value(), GemMedium.value(), GemLarge.value())
	}
}

func TestGemOutsideMagnetRangeStaysPut(t *testing.T) {
	far := playerBaseMagnetRange + 100
	ts := NewTestSim(
		WithSeed(1),
		WithTuning(noSpawnTuning()),
		WithNoWeapons(),
		WithGemAt(GemSmall, WorldW/2+far, WorldH/2),
	)
	g := ts.G
	ts.RunSeconds(2, InputState{})

	found := false
	for i := range g.gems {
		gem := &g.gems[i]
		if !gem.Active {
			continue
		}
		found = true
		if gem.Magnetized {
			t.Fatal("distant gem magnetized outside the magnet range")
		}
	}
	if !found {
		t.Fatal("distant gem was absorbed")
	}
	if g.player.XP != 0 || g.player.Level != 1 {
		t.Fatalf("xp %d level %d from an unreachable gem", g.player.XP, g.player.Level)
	}
}

func TestGemMagnetPullsAndAbsorbs(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithTuning(noSpawnTuning()),
		WithNoWeapons(),
		WithGemAt(GemMedium, WorldW/2+playerBaseMagnetRange-5, WorldH/2),
	)
	g := ts.G

	// 15 XP crosses the 5- and 10-point thresholds, so absorption shows
	// up as a level, not a raw XP balance.
	at := ts.RunUntil(func(g *Game) bool { return g.player.Level > 1 }, 2)
	if at < 0 {
		t.Fatal("gem inside magnet range never absorbed")
	}
	for i := range g.gems {
		if g.gems[i].Active {
			t.Fatal("absorbed gem still active")
		}
	}
}

// Once magnetized a gem keeps chasing even if the player outruns the
// radius.
func TestGemMagnetizationIsSticky(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithTuning(noSpawnTuning()),
		WithNoWeapons(),
		WithGemAt(GemSmall, WorldW/2-40, WorldH/2),
	)
	g := ts.G

	ts.Step(InputState{}) // magnetizes at 40px
	magnetized := false
	for i := range g.gems {
		if g.gems[i].Active && g.gems[i].Magnetized {
			magnetized = true
		}
	}
	if !magnetized {
		t.Fatal("gem at 40px not magnetized")
	}

	// Run away to the right; gem speed (320) beats player speed (140),
	// so it catches up regardless.
	in := InputState{}
	in.Buttons[BtnMoveRight].Down = true
	caught := false
	for i := 0; i < 60*4; i++ {
		ts.Step(in)
		// 5 XP is exactly the first threshold, so the catch registers as
		// a level-up with the XP balance back at zero.
		if g.player.XP > 0 || g.player.Level > 1 {
			caught = true
			break
		}
	}
	if !caught {
		t.Fatal("magnetized gem never caught the player")
	}
}

func TestMagnetBuffWidensPickup(t *testing.T) {
	d := playerBaseMagnetRange + 50 // outside base range, inside x3
	ts := NewTestSim(
		WithSeed(1),
		WithTuning(noSpawnTuning()),
		WithNoWeapons(),
		WithGemAt(GemSmall, WorldW/2+d, WorldH/2),
	)
	g := ts.G
	g.startBuff(PotionMagnet)

	at := ts.RunUntil(func(g *Game) bool { return g.player.XP > 0 || g.player.Level > 1 }, 2)
	if at < 0 {
		t.Fatal("magnet buff did not extend the pull radius")
	}
}

func TestComboCountsAndExpires(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithTuning(noSpawnTuning()),
		WithNoWeapons(),
		WithGemAt(GemSmall, WorldW/2, WorldH/2),
		WithGemAt(GemSmall, WorldW/2+1, WorldH/2),
	)
	g := ts.G

	ts.Step(InputState{})
	if g.combo != 2 {
		t.Fatalf("combo %d after two same-tick pickups, want 2", g.combo)
	}

	// The level-up from 10 XP freezes play; skip through it so the combo
	// window can run down.
	if g.state == StateLevelUp {
		if !ts.SelectUpgrade("skip") {
			t.Fatal("no skip offer")
		}
	}
	ts.RunSeconds(comboWindow+0.5, InputState{})
	if g.combo != 0 {
		t.Fatalf("combo %d after the window lapsed, want 0", g.combo)
	}
}

func TestDrinkFromEmptyInventoryIsNoop(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithTuning(noSpawnTuning()), WithNoWeapons())
	g := ts.G

	in := InputState{}
	in.Buttons[BtnPotion].Pressed = true
	ts.Step(in)

	for typ := PotionType(0); typ < NumPotionTypes; typ++ {
		if g.buffActive(typ) {
			t.Fatalf("buff %v active after drinking from an empty inventory", typ)
		}
	}
}

func TestRedrinkRefreshesBuff(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithTuning(noSpawnTuning()), WithNoWeapons())
	g := ts.G

	g.startBuff(PotionSpeed)
	ts.RunSeconds(buffSpeedDuration/2, InputState{})
	half := g.buffs[PotionSpeed].Remaining
	if half >= buffSpeedDuration {
		t.Fatalf("buff timer did not run down: %.1f", half)
	}

	g.startBuff(PotionSpeed)
	if g.buffs[PotionSpeed].Remaining != buffSpeedDuration {
		t.Fatalf("re-drink set timer to %.1f, want %.1f", g.buffs[PotionSpeed].Remaining, buffSpeedDuration)
	}
}

func TestSpeedBuffMovesFaster(t *testing.T) {
	base := func(buffed bool) float64 {
		ts := NewTestSim(WithSeed(1), WithTuning(noSpawnTuning()), WithNoWeapons())
		if buffed {
			ts.G.startBuff(PotionSpeed)
		}
		start := ts.G.player.Pos
		in := InputState{}
		in.Buttons[BtnMoveRight].Down = true
		ts.RunSeconds(2, in)
		return ts.G.player.Pos.X - start.X
	}
	plain := base(false)
	fast := base(true)
	if fast <= plain*1.3 {
		t.Fatalf("speed buff moved %.0fpx vs %.0fpx plain; want ~x%.1f", fast, plain, buffSpeedMult)
	}
}
