package game

import "strings"

// TestSim is a headless harness used by tests and the balance-report
// runner. It drives Game.step directly with constructed InputStates, no
// Ebiten dependency, deterministic under a fixed seed.
type TestSim struct {
	G        *Game
	SimLog   *SimLog
	Reporter *SimReporter
	DT       float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // seed, tuning, verbose, dt — applied before the run starts
	simOptEntity                      // player/weapon/enemy/pickup placement — applied after
)

// SimOption is a builder function applied to a TestSim during
// construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.G.seed = seed
		ts.G.rng = NewRand(seed)
	}}
}

// WithTuning replaces the compiled-in balance values.
func WithTuning(t Tuning) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.G.tuning = t
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithReporter attaches a balance reporter sampling the run.
func WithReporter() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Reporter = NewSimReporter()
	}}
}

// WithDT overrides the fixed timestep (default 1/60).
func WithDT(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.DT = dt
	}}
}

// WithPlayerAt moves the player after the run starts.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.G.player.Pos = Vec2{x, y}
		ts.G.updateCamera()
	}}
}

// WithWeapon sets a weapon slot's tier directly.
func WithWeapon(w WeaponType, tier int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.G.weapons[w].Tier = tier
	}}
}

// WithWeaponBranch sets a weapon's branch and branch tier.
func WithWeaponBranch(w WeaponType, branch, branchTier int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.G.weapons[w].Branch = branch
		ts.G.weapons[w].BranchTier = branchTier
	}}
}

// WithNoWeapons locks every slot, for tests that want no producers.
func WithNoWeapons() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.G.weapons = [NumWeapons]WeaponSlot{}
	}}
}

// WithEnemyAt places one enemy of the given type.
func WithEnemyAt(typ EnemyType, x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		for i := range ts.G.enemies {
			if ts.G.enemies[i].Active {
				continue
			}
			hp := enemyTable[typ].baseHP
			ts.G.enemies[i] = Enemy{Active: true, Type: typ, Pos: Vec2{x, y}, HP: hp, MaxHP: hp}
			return
		}
	}}
}

// WithGemAt places one gem.
func WithGemAt(typ GemType, x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.G.spawnGem(Vec2{x, y}, typ)
	}}
}

// WithPotionAt places one potion drop.
func WithPotionAt(typ PotionType, x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.G.spawnPotionDrop(Vec2{x, y}, typ)
	}}
}

// NewTestSim constructs a running simulation in two ordered passes:
// infrastructure options first, then the run is started with the melee
// weapon at tier 1, then entity placement options.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		G:      NewSeeded(1, defaultTuning()),
		SimLog: NewSimLog(false),
		DT:     1.0 / 60.0,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.G.simLog = ts.SimLog
	ts.G.reporter = ts.Reporter
	ts.G.Init(ScreenW, ScreenH)
	ts.G.startRun(WeaponMelee)
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// Step advances one tick with the given input.
func (ts *TestSim) Step(in InputState) {
	ts.G.Update(in, ts.DT)
}

// RunSeconds advances the simulation for the given duration with a
// constant input (commonly the zero InputState).
func (ts *TestSim) RunSeconds(sec float64, in InputState) {
	n := int(sec / ts.DT)
	for i := 0; i < n; i++ {
		ts.G.Update(in, ts.DT)
	}
}

// RunUntil advances up to maxSec, stopping early when the predicate
// turns true. Returns the game time at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(pred func(*Game) bool, maxSec float64) float64 {
	n := int(maxSec / ts.DT)
	for i := 0; i < n; i++ {
		ts.G.Update(InputState{}, ts.DT)
		if pred(ts.G) {
			return ts.G.gameTime
		}
	}
	return -1
}

// SelectUpgrade commits the first carousel offer whose label contains
// the substring. Returns false when the game is not in the level-up
// state or no offer matches.
func (ts *TestSim) SelectUpgrade(labelSubstr string) bool {
	if ts.G.state != StateLevelUp {
		return false
	}
	for i, o := range ts.G.upgradeOffers {
		if containsFold(o.Label(), labelSubstr) {
			ts.G.upgradeCursor = i
			ts.G.updateLevelUp(&InputState{SelectPressed: true})
			return true
		}
	}
	return false
}

// SimSnapshot is a lightweight state summary for determinism checks.
type SimSnapshot struct {
	GameTime  float64
	State     GameState
	PlayerPos Vec2
	HP        float64
	XP        int
	Level     int
	KillCount int
	Wave      int

	ActiveEnemies int
	ActiveBullets int
	ActiveGems    int
}

// Snapshot captures the current state.
func (ts *TestSim) Snapshot() SimSnapshot {
	g := ts.G
	snap := SimSnapshot{
		GameTime:  g.gameTime,
		State:     g.state,
		PlayerPos: g.player.Pos,
		HP:        g.player.HP,
		XP:        g.player.XP,
		Level:     g.player.Level,
		KillCount: g.killCount,
		Wave:      g.wave,
	}
	snap.ActiveEnemies = g.activeEnemyCount()
	for i := range g.bullets {
		if g.bullets[i].Active {
			snap.ActiveBullets++
		}
	}
	for i := range g.gems {
		if g.gems[i].Active {
			snap.ActiveGems++
		}
	}
	return snap
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
