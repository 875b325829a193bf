package game

import "fmt"

// GameState is the top-level mode of the state machine. Game time and
// the spawner advance only in StatePlaying.
type GameState int

const (
	StateMenu GameState = iota
	StateWeaponSelect
	StatePlaying
	StateLevelUp
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateWeaponSelect:
		return "weapon_select"
	case StatePlaying:
		return "playing"
	case StateLevelUp:
		return "level_up"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "?"
}

// Game is the whole simulation. Every entity lives in a fixed array
// here; nothing is allocated during play.
type Game struct {
	state  GameState
	seed   int64
	rng    *Rand
	tuning Tuning

	screenW int
	screenH int
	cam     Vec2 // viewport top-left in world space

	gameTime   float64
	spawnTimer float64
	wave       int

	player  Player
	weapons [NumWeapons]WeaponSlot

	enemies     [MaxEnemies]Enemy
	bullets     [MaxBullets]Bullet
	seekers     [MaxSeekers]Seeker
	boomerangs  [MaxBoomerangs]Boomerang
	clouds      [MaxPoisonClouds]PoisonCloud
	bolts       [MaxChainBolts]ChainBolt
	orbs        [MaxOrbitOrbs]OrbitOrb
	waves       [MaxWaves]Wave
	strikes     [MaxStrikes]Strike
	melee       MeleeSwing
	gems        [MaxGems]Gem
	potionDrops [MaxPotionDrops]PotionDrop
	particles   [MaxParticles]Particle
	popups      [MaxPopups]TextPopup

	buffs      [NumPotionTypes]ActiveBuff
	inventory  [MaxInventory]InventoryPotion
	combo      int
	comboTimer float64

	// Run tallies, preserved through game-over for the report screen.
	killCount      int
	killsByType    [NumEnemyTypes]int
	damageByWeapon [NumWeapons]float64
	firesByWeapon  [NumWeapons]int
	upgradeHistory []string

	pendingLevelUps int
	skippedPoints   int // skip retains the point for the next carousel
	upgradeOffers   []UpgradeOffer
	upgradeCursor   int

	menuCursor   int
	weaponCursor int

	in         InputState // last snapshot, read by Draw for HUD hints
	wantsClose bool

	simLog   *SimLog      // nil outside the headless harness and tests
	reporter *SimReporter // nil unless a balance report was requested
}

// New builds a game with a time-derived seed and compiled-in tuning.
func New() *Game {
	return NewSeeded(0, defaultTuning())
}

// NewSeeded builds a game with an explicit seed (0 means time-derived)
// and a tuning overlay. The harness and the headless runner use this.
func NewSeeded(seed int64, tuning Tuning) *Game {
	g := &Game{
		seed:    seed,
		rng:     NewRand(seed),
		tuning:  tuning,
		screenW: ScreenW,
		screenH: ScreenH,
	}
	g.player = newPlayer()
	return g
}

// Init tells the game its logical surface size. Called once by the host
// before the first Update.
func (g *Game) Init(w, h int) {
	g.screenW = w
	g.screenH = h
	g.updateCamera()
}

// Shutdown releases nothing today; the hook exists for the host
// lifecycle.
func (g *Game) Shutdown() {}

// WantsClose reports that the player quit from the menu or the
// game-over screen.
func (g *Game) WantsClose() bool { return g.wantsClose }

// State exposes the current mode for the host and tests.
func (g *Game) State() GameState { return g.state }

// Seed returns the seed this run was created with.
func (g *Game) Seed() int64 { return g.seed }

// Elapsed returns the run's game time in seconds.
func (g *Game) Elapsed() float64 { return g.gameTime }

// Update advances the state machine by one frame. The simulation step
// itself runs only in StatePlaying.
func (g *Game) Update(in InputState, dt float64) {
	g.in = in

	switch g.state {
	case StateMenu:
		g.updateMenu(&in)
	case StateWeaponSelect:
		g.updateWeaponSelect(&in)
	case StatePlaying:
		if in.BackPressed {
			g.setState(StatePaused)
			return
		}
		if in.Buttons[BtnPotion].Pressed {
			g.drinkNextPotion()
		}
		g.step(&in, dt)
	case StateLevelUp:
		g.updateLevelUp(&in)
	case StatePaused:
		if in.SelectPressed || in.BackPressed {
			g.setState(StatePlaying)
		} else if in.Down {
			// Abandon the run.
			g.enterGameOver()
		}
	case StateGameOver:
		g.updateGameOver(&in)
	}
}

// step is one fixed simulation tick. The order is load-bearing: input
// and movement first, then spawning, then every producer and effect,
// then pickups and bookkeeping, camera last.
func (g *Game) step(in *InputState, dt float64) {
	g.gameTime += dt

	g.updatePlayer(in, dt)
	g.updateSpawner(dt)
	g.updateEnemies(dt)
	g.updateWeapons(dt)

	g.updateBullets(dt)
	g.updateSeekers(dt)
	g.updateBoomerangs(dt)
	g.updateMeleeSwing(dt)
	g.updateWaves(dt)
	g.updateStrikes(dt)
	g.updateChainBolts(dt)
	g.updatePoisonClouds(dt)

	g.updateGems(dt)
	g.updatePotionDrops()
	g.updateBuffs(dt)
	g.updateParticles(dt)
	g.updatePopups(dt)

	g.updateCamera()

	if g.simLog != nil {
		g.simLog.AddVerbose(g.gameTime, "tick",
			fmt.Sprintf("pos=(%.1f,%.1f) enemies=%d", g.player.Pos.X, g.player.Pos.Y, g.activeEnemyCount()),
			g.player.HP)
	}
	if g.reporter != nil {
		g.reporter.Collect(g)
	}
}

// updateCamera centres the viewport on the player, clamped so the view
// never leaves the world rectangle.
func (g *Game) updateCamera() {
	g.cam.X = clampF(g.player.Pos.X-float64(g.screenW)/2, 0, WorldW-float64(g.screenW))
	g.cam.Y = clampF(g.player.Pos.Y-float64(g.screenH)/2, 0, WorldH-float64(g.screenH))
}

func (g *Game) setState(s GameState) {
	if s == g.state {
		return
	}
	g.log("state", g.state.String()+" -> "+s.String(), 0)
	g.state = s
}

// --- Menu / weapon select / game over ---

const menuEntries = 2 // start, quit

func (g *Game) updateMenu(in *InputState) {
	if in.Up {
		g.menuCursor = (g.menuCursor + menuEntries - 1) % menuEntries
	}
	if in.Down {
		g.menuCursor = (g.menuCursor + 1) % menuEntries
	}
	if in.SelectPressed {
		if g.menuCursor == 0 {
			g.setState(StateWeaponSelect)
		} else {
			g.wantsClose = true
		}
	}
	if in.BackPressed {
		g.wantsClose = true
	}
}

func (g *Game) updateWeaponSelect(in *InputState) {
	if in.Up {
		g.weaponCursor = (g.weaponCursor + int(NumWeapons) - 1) % int(NumWeapons)
	}
	if in.Down {
		g.weaponCursor = (g.weaponCursor + 1) % int(NumWeapons)
	}
	if in.BackPressed {
		g.setState(StateMenu)
		return
	}
	if in.SelectPressed {
		g.startRun(WeaponType(g.weaponCursor))
	}
}

func (g *Game) updateGameOver(in *InputState) {
	if in.Buttons[BtnReport].Pressed {
		g.copyRunReport()
	}
	if in.SelectPressed {
		g.setState(StateMenu)
	}
	if in.BackPressed {
		g.wantsClose = true
	}
}

// startRun resets all per-run state and unlocks the chosen weapon at
// tier 1.
func (g *Game) startRun(starting WeaponType) {
	g.player = newPlayer()
	g.weapons = [NumWeapons]WeaponSlot{}
	g.weapons[starting].Tier = 1

	g.enemies = [MaxEnemies]Enemy{}
	g.bullets = [MaxBullets]Bullet{}
	g.seekers = [MaxSeekers]Seeker{}
	g.boomerangs = [MaxBoomerangs]Boomerang{}
	g.clouds = [MaxPoisonClouds]PoisonCloud{}
	g.bolts = [MaxChainBolts]ChainBolt{}
	g.orbs = [MaxOrbitOrbs]OrbitOrb{}
	g.waves = [MaxWaves]Wave{}
	g.strikes = [MaxStrikes]Strike{}
	g.melee = MeleeSwing{}
	g.gems = [MaxGems]Gem{}
	g.potionDrops = [MaxPotionDrops]PotionDrop{}
	g.particles = [MaxParticles]Particle{}
	g.popups = [MaxPopups]TextPopup{}

	g.buffs = [NumPotionTypes]ActiveBuff{}
	g.inventory = [MaxInventory]InventoryPotion{}
	g.combo = 0
	g.comboTimer = 0

	g.gameTime = 0
	g.spawnTimer = 0
	g.wave = 1
	g.killCount = 0
	g.killsByType = [NumEnemyTypes]int{}
	g.damageByWeapon = [NumWeapons]float64{}
	g.firesByWeapon = [NumWeapons]int{}
	g.upgradeHistory = g.upgradeHistory[:0]
	g.pendingLevelUps = 0
	g.skippedPoints = 0

	g.updateCamera()
	g.log("run_start", starting.String(), float64(g.seed))
	g.setState(StatePlaying)
}

// --- Level-up carousel ---

// enterLevelUp freezes the simulation and rolls the offer list. Banked
// skip points rejoin the queue here. An empty pool (everything maxed)
// auto-skips the whole queue.
func (g *Game) enterLevelUp() {
	g.pendingLevelUps += g.skippedPoints
	g.skippedPoints = 0

	g.upgradeOffers = g.rollUpgradeOffers()
	if len(g.upgradeOffers) == 1 { // skip only
		g.pendingLevelUps = 0
		return
	}
	g.upgradeCursor = 0
	g.setState(StateLevelUp)
}

func (g *Game) updateLevelUp(in *InputState) {
	n := len(g.upgradeOffers)
	if in.Up {
		g.upgradeCursor = (g.upgradeCursor + n - 1) % n
	}
	if in.Down {
		g.upgradeCursor = (g.upgradeCursor + 1) % n
	}
	if !in.SelectPressed {
		return
	}

	offer := g.upgradeOffers[g.upgradeCursor]
	if offer.Kind == UpgradeSkip {
		g.skippedPoints++
		g.log("upgrade", "skip", 0)
	} else {
		g.applyUpgrade(offer)
	}
	g.pendingLevelUps--

	if g.pendingLevelUps > 0 {
		g.upgradeOffers = g.rollUpgradeOffers()
		if len(g.upgradeOffers) > 1 {
			g.upgradeCursor = 0
			return
		}
		g.pendingLevelUps = 0
	}
	g.setState(StatePlaying)
}

// enterGameOver ends the run. Tallies are preserved for the report
// screen.
func (g *Game) enterGameOver() {
	g.log("game_over", "", g.gameTime)
	g.setState(StateGameOver)
}

// log records a structured event when a SimLog is attached; the
// interactive game runs with none.
func (g *Game) log(category, detail string, num float64) {
	if g.simLog == nil {
		return
	}
	g.simLog.Add(g.gameTime, category, detail, num)
}
