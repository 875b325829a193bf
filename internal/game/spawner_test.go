package game

import (
	"math"
	"testing"
)

func TestSpawnIntervalFloor(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	g := ts.G

	if got := g.spawnInterval(); math.Abs(got-spawnBaseInterval) > 1e-9 {
		t.Fatalf("interval at t=0 is %.3f, want %.3f", got, spawnBaseInterval)
	}
	g.gameTime = 60
	if got := g.spawnInterval(); got >= spawnBaseInterval {
		t.Fatal("interval did not shrink over a minute")
	}
	g.gameTime = 1e6
	if got := g.spawnInterval(); got != spawnMinInterval {
		t.Fatalf("interval %.3f below/above the floor %.3f", got, spawnMinInterval)
	}
}

func TestSpawnIntervalMonotone(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	g := ts.G
	prev := math.Inf(1)
	for tt := 0.0; tt < 300; tt += 5 {
		g.gameTime = tt
		iv := g.spawnInterval()
		if iv > prev {
			t.Fatalf("interval rose from %.3f to %.3f at t=%.0f", prev, iv, tt)
		}
		prev = iv
	}
}

func TestEnemyTypeWeightsRamp(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	g := ts.G

	g.gameTime = 0
	early := g.enemyTypeWeights()
	if early[EnemyWalker] <= early[EnemyFast] || early[EnemyWalker] <= early[EnemyTank] {
		t.Fatalf("walkers should dominate at t=0: %v", early)
	}

	g.gameTime = 300
	late := g.enemyTypeWeights()
	if late[EnemyTank] <= early[EnemyTank] || late[EnemyFast] <= early[EnemyFast] {
		t.Fatalf("fast/tank share should grow with time: early=%v late=%v", early, late)
	}
	if late[EnemyWalker] < 10 {
		t.Fatalf("walker weight fell through its floor: %v", late)
	}
}

func TestSpawnBurstGrowth(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	g.gameTime = spawnBurstPeriod*2 + 1 // burst size 3

	before := g.activeEnemyCount()
	g.spawnTimer = g.spawnInterval() // force one burst this tick
	g.updateSpawner(1.0 / 60.0)
	gained := g.activeEnemyCount() - before
	if gained < 3 {
		t.Fatalf("burst spawned %d enemies at t>60s, want >=3", gained)
	}
}

func TestSpawnedEnemyHPScales(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G

	g.gameTime = 100
	g.spawnEnemy()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		base := e.stats().baseHP
		want := base + math.Round(100*g.tuning.EnemyHPScalePerSec)
		if e.HP != want {
			t.Fatalf("hp %.0f at t=100s for %v, want %.0f", e.HP, e.Type, want)
		}
	}
}

// Overlapping enemies push each other apart instead of stacking on one
// point while converging on the player.
func TestOverlappingEnemiesSeparate(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithTuning(noSpawnTuning()),
		WithNoWeapons(),
		WithEnemyAt(EnemyWalker, 200, 200),
		WithEnemyAt(EnemyWalker, 204, 200),
	)
	g := ts.G

	ts.RunSeconds(1, InputState{})
	var pos []Vec2
	for i := range g.enemies {
		if g.enemies[i].Active {
			pos = append(pos, g.enemies[i].Pos)
		}
	}
	if len(pos) != 2 {
		t.Fatalf("%d walkers alive, want 2", len(pos))
	}
	minDist := 2 * enemyTable[EnemyWalker].radius
	if d := dist(pos[0], pos[1]); d < minDist*0.9 {
		t.Fatalf("walkers still overlap after 1s: %.1fpx apart, want ~%.0f", d, minDist)
	}
}

func TestWaveCounterAdvances(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithNoWeapons())
	g := ts.G
	if g.wave != 1 {
		t.Fatalf("wave %d at start, want 1", g.wave)
	}
	g.gameTime = waveDuration + 0.1
	g.updateSpawner(1.0 / 60.0)
	if g.wave != 2 {
		t.Fatalf("wave %d past %vs, want 2", g.wave, waveDuration)
	}
	if !ts.SimLog.HasEntry("wave", "") {
		t.Fatal("wave advance not logged")
	}
}
