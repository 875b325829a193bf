package game

import "image/color"

// --- Surface and world dimensions ---

const (
	ScreenW = 800
	ScreenH = 480

	WorldW = 3000.0
	WorldH = 2000.0

	// Minimap rectangle, anchored top-right.
	MinimapW      = 120
	MinimapH      = 80
	MinimapMargin = 8
)

// --- Pool capacities ---
//
// Every gameplay entity lives in a fixed array; nothing grows during a
// run. When a pool is full the producer drops the spawn (no signal).

const (
	MaxEnemies      = 200
	MaxBullets      = 128
	MaxSeekers      = 16
	MaxBoomerangs   = 8
	MaxPoisonClouds = 8
	MaxChainBolts   = 16
	MaxOrbitOrbs    = 12
	MaxWaves        = 8
	MaxStrikes      = 24
	MaxGems         = 256
	MaxPotionDrops  = 24
	MaxParticles    = 256
	MaxPopups       = 64

	MaxInventory = 5 // carried potions
)

// --- Player ---

const (
	playerRadius          = 10.0
	playerBaseSpeed       = 140.0 // px/s
	playerBaseMaxHP       = 100.0
	playerPickupRange     = 18.0 // absorb distance for gems/potions
	playerBaseMagnetRange = 70.0
	playerInvincibility   = 0.5 // seconds of immunity after a hit
	regenDelay            = 2.0 // seconds stationary before regen applies
	hurtFlashTime         = 0.25
)

// --- Enemies ---

const (
	enemyHPScalePerSec = 0.15 // HP added per second of elapsed game time
	enemyHitFlashTime  = 0.12
	enemySeparation    = 0.6 // fraction of overlap resolved per tick between enemies
)

// --- Spawner ---

const (
	spawnBaseInterval  = 1.2  // seconds between spawns at t=0
	spawnMinInterval   = 0.25 // interval floor
	spawnIntervalDecay = 0.01 // interval shrink per second of game time
	spawnBurstPeriod   = 30.0 // seconds per extra enemy in a spawn burst
	spawnMargin        = 60.0 // distance outside the viewport edge
	waveDuration       = 30.0 // seconds per wave counter increment
)

// --- Pickups ---

const (
	gemMagnetSpeed   = 320.0 // px/s steering speed once magnetized
	potionDropChance = 5.0   // percent chance on enemy death
	comboWindow      = 2.0   // seconds between pickups to sustain a combo
)

// XP gem sizes and values. Enemy type maps deterministically:
// Walker → small, Fast → medium, Tank → large.
const (
	gemValueSmall  = 5
	gemValueMedium = 15
	gemValueLarge  = 40
)

// --- Buff durations and magnitudes ---

const (
	buffDamageDuration = 10.0
	buffDamageMult     = 2.0
	buffSpeedDuration  = 15.0
	buffSpeedMult      = 1.5
	buffShieldDuration = 5.0
	buffMagnetDuration = 20.0
	buffMagnetMult     = 3.0
)

// --- Upgrades ---

const (
	numUpgradeChoices = 5
	maxWeaponTier     = 5
	maxBranchTier     = 5

	capDodge            = 75.0
	capArmor            = 90.0
	capCrit             = 100.0
	capBonusProjectiles = 3
)

// --- Weapon bases ---
//
// Cooldown scaling: base / (1 + (tier-1)*0.10) / attackSpeedMult, so a
// tier-1 weapon at neutral attack speed fires at exactly 1/base Hz.
// Damage scaling: base * (1 + tier*0.15) * damageMult, doubled on crit.

const (
	tierCooldownStep = 0.10
	tierDamageStep   = 0.15
	critMult         = 2.0
)

const (
	meleeBaseDamage   = 10.0
	meleeBaseCooldown = 1.0
	meleeBaseRange    = 70.0
	meleeBaseArc      = 1.6 // radians
	meleeSwingTime    = 0.18
	meleeKnockback    = 120.0 // Power branch impulse, px/s
	meleeSpinRate     = 6.0   // Spin branch sweep speed, rad/s
	meleeSpinTime     = 1.5

	bulletBaseDamage   = 8.0
	bulletBaseCooldown = 0.9
	bulletSpeed        = 420.0
	bulletRadius       = 4.0
	bulletLifetime     = 1.6
	bulletSpreadArc    = 0.5 // radians across the Spread branch fan

	waveBaseDamage   = 6.0
	waveBaseCooldown = 2.2
	waveBaseRadius   = 110.0
	waveExpandTime   = 0.5
	waveFreezeSlow   = 0.5 // Freeze branch slow factor
	waveFreezeTime   = 1.5

	orbitBaseDamage  = 7.0
	orbitBaseCount   = 2
	orbitRadius      = 60.0
	orbitSpeed       = 2.4 // rad/s
	orbitOrbRadius   = 9.0
	orbitHitCooldown = 0.5 // per-enemy re-hit interval

	lightningBaseDamage   = 14.0
	lightningBaseCooldown = 1.8
	lightningRange        = 260.0
	lightningStrikeRadius = 36.0
	lightningStrikeTime   = 0.25
	stormScatterRadius    = 150.0
	smiteDamageMult       = 3.0

	seekerBaseDamage      = 12.0
	seekerBaseCooldown    = 1.6
	seekerSpeed           = 260.0
	seekerTurnRate        = 4.0 // rad/s steering limit
	seekerLifetime        = 4.0
	seekerExplosionRadius = 60.0

	boomerangBaseDamage   = 9.0
	boomerangBaseCooldown = 1.4
	boomerangSpeed        = 300.0
	boomerangMaxDist      = 220.0
	boomerangLifetime     = 3.0
	boomerangRadius       = 8.0

	poisonBaseDamage   = 4.0 // per tick
	poisonBaseCooldown = 3.0
	poisonRadius       = 80.0
	poisonDuration     = 3.0
	poisonTickRate     = 0.5
	poisonSlow         = 0.35
	poisonSlowTime     = 0.6 // slightly over one tick so the slow persists

	chainBaseDamage   = 11.0
	chainBaseCooldown = 2.0
	chainJumpRange    = 140.0
	chainBaseJumps    = 4
	chainDecay        = 0.75
	chainMaxVisited   = 16
	chainBoltTime     = 0.2
)

// --- Palette ---

var (
	colBackground = color.RGBA{R: 16, G: 14, B: 24, A: 255}
	colWorldFloor = color.RGBA{R: 26, G: 22, B: 36, A: 255}
	colWorldGrid  = color.RGBA{R: 36, G: 31, B: 48, A: 255}
	colWorldEdge  = color.RGBA{R: 90, G: 70, B: 120, A: 255}

	colPlayer     = color.RGBA{R: 240, G: 235, B: 220, A: 255}
	colPlayerHurt = color.RGBA{R: 255, G: 80, B: 80, A: 255}

	colWalker = color.RGBA{R: 170, G: 60, B: 60, A: 255}
	colFast   = color.RGBA{R: 210, G: 150, B: 50, A: 255}
	colTank   = color.RGBA{R: 110, G: 60, B: 140, A: 255}
	colFlash  = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	colGemSmall  = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	colGemMedium = color.RGBA{R: 70, G: 170, B: 240, A: 255}
	colGemLarge  = color.RGBA{R: 230, G: 120, B: 240, A: 255}

	colBullet    = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	colSeeker    = color.RGBA{R: 255, G: 140, B: 90, A: 255}
	colBoomerang = color.RGBA{R: 180, G: 220, B: 180, A: 255}
	colPoison    = color.RGBA{R: 100, G: 200, B: 80, A: 90}
	colLightning = color.RGBA{R: 170, G: 200, B: 255, A: 255}
	colOrb       = color.RGBA{R: 140, G: 180, B: 255, A: 255}
	colWave      = color.RGBA{R: 120, G: 160, B: 255, A: 140}
	colMelee     = color.RGBA{R: 230, G: 230, B: 230, A: 110}

	colHUDText  = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colHUDDim   = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	colHPBar    = color.RGBA{R: 210, G: 60, B: 60, A: 255}
	colXPBar    = color.RGBA{R: 90, G: 200, B: 120, A: 255}
	colBarBack  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	colPanel    = color.RGBA{R: 20, G: 18, B: 30, A: 235}
	colPanelRim = color.RGBA{R: 110, G: 95, B: 150, A: 255}
	colSelect   = color.RGBA{R: 255, G: 220, B: 120, A: 255}

	colMinimapBack   = color.RGBA{R: 10, G: 10, B: 16, A: 200}
	colMinimapFrame  = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	colMinimapPlayer = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colMinimapEnemy  = color.RGBA{R: 220, G: 80, B: 80, A: 255}
	colMinimapGem    = color.RGBA{R: 90, G: 220, B: 130, A: 255}
	colMinimapView   = color.RGBA{R: 200, G: 200, B: 220, A: 120}
)
