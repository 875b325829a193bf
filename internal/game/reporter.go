package game

import (
	"fmt"
	"strings"
)

// reportInterval is how often the reporter samples the simulation, in
// seconds of game time.
const reportInterval = 1.0

// SimReport is a balance snapshot of the simulation at one moment.
type SimReport struct {
	Time  float64
	Level int
	HP    float64
	Wave  int

	KillCount   int
	KillsByType [NumEnemyTypes]int

	DamageByWeapon [NumWeapons]float64
	FiresByWeapon  [NumWeapons]int

	ActiveEnemies   int
	ActiveBullets   int
	ActiveGems      int
	ActiveParticles int
}

// SimReporter collects periodic snapshots and produces window summaries
// for the headless balance report.
type SimReporter struct {
	history  []SimReport
	lastTime float64
}

// NewSimReporter creates an empty reporter.
func NewSimReporter() *SimReporter {
	return &SimReporter{lastTime: -reportInterval}
}

// Collect samples the game once per reportInterval of game time. Called
// from the simulation step; cheap when the interval has not elapsed.
func (r *SimReporter) Collect(g *Game) {
	if g.gameTime-r.lastTime < reportInterval {
		return
	}
	r.lastTime = g.gameTime

	rep := SimReport{
		Time:           g.gameTime,
		Level:          g.player.Level,
		HP:             g.player.HP,
		Wave:           g.wave,
		KillCount:      g.killCount,
		KillsByType:    g.killsByType,
		DamageByWeapon: g.damageByWeapon,
		FiresByWeapon:  g.firesByWeapon,
	}
	rep.ActiveEnemies = g.activeEnemyCount()
	for i := range g.bullets {
		if g.bullets[i].Active {
			rep.ActiveBullets++
		}
	}
	for i := range g.gems {
		if g.gems[i].Active {
			rep.ActiveGems++
		}
	}
	for i := range g.particles {
		if g.particles[i].Active {
			rep.ActiveParticles++
		}
	}
	r.history = append(r.history, rep)
}

// History returns all collected snapshots.
func (r *SimReporter) History() []SimReport {
	return r.history
}

// Latest returns the most recent snapshot, or false when none exists.
func (r *SimReporter) Latest() (SimReport, bool) {
	if len(r.history) == 0 {
		return SimReport{}, false
	}
	return r.history[len(r.history)-1], true
}

// Summary renders a human-readable balance summary over the whole run:
// the level curve, kill pacing, and per-weapon output.
func (r *SimReporter) Summary() string {
	var sb strings.Builder
	last, ok := r.Latest()
	if !ok {
		return "no samples collected\n"
	}

	fmt.Fprintf(&sb, "--- Balance summary (%.0fs simulated) ---\n", last.Time)
	fmt.Fprintf(&sb, "level %d, wave %d, %d kills, hp %.0f\n",
		last.Level, last.Wave, last.KillCount, last.HP)

	fmt.Fprintf(&sb, "kills by type:")
	for t := EnemyType(0); t < NumEnemyTypes; t++ {
		fmt.Fprintf(&sb, "  %s=%d", t, last.KillsByType[t])
	}
	sb.WriteByte('\n')

	sb.WriteString("weapon output:\n")
	for w := WeaponType(0); w < NumWeapons; w++ {
		if last.FiresByWeapon[w] == 0 && last.DamageByWeapon[w] == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %-15s %6d fires  %8.0f damage\n",
			w, last.FiresByWeapon[w], last.DamageByWeapon[w])
	}

	// Level curve: time of each level-up, derived from the samples.
	sb.WriteString("level curve:")
	prev := 1
	for _, rep := range r.history {
		if rep.Level > prev {
			fmt.Fprintf(&sb, "  L%d@%.0fs", rep.Level, rep.Time)
			prev = rep.Level
		}
	}
	sb.WriteByte('\n')

	// Pool pressure: peak active counts across the run.
	peakE, peakB, peakG, peakP := 0, 0, 0, 0
	for _, rep := range r.history {
		if rep.ActiveEnemies > peakE {
			peakE = rep.ActiveEnemies
		}
		if rep.ActiveBullets > peakB {
			peakB = rep.ActiveBullets
		}
		if rep.ActiveGems > peakG {
			peakG = rep.ActiveGems
		}
		if rep.ActiveParticles > peakP {
			peakP = rep.ActiveParticles
		}
	}
	fmt.Fprintf(&sb, "peak pools: enemies=%d/%d bullets=%d/%d gems=%d/%d particles=%d/%d\n",
		peakE, MaxEnemies, peakB, MaxBullets, peakG, MaxGems, peakP, MaxParticles)

	return sb.String()
}
