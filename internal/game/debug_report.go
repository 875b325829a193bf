package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// runReport renders the end-of-run report shown on the game-over screen
// and printed by the headless runner.
func (g *Game) runReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Duskwave run report ---\n")
	fmt.Fprintf(&b, "seed=%d survived=%.1fs wave=%d level=%d\n",
		g.seed, g.gameTime, g.wave, g.player.Level)

	fmt.Fprintf(&b, "kills: %d (", g.killCount)
	for t := EnemyType(0); t < NumEnemyTypes; t++ {
		if t > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %d", t, g.killsByType[t])
	}
	b.WriteString(")\n")

	b.WriteString("damage by weapon:\n")
	for w := WeaponType(0); w < NumWeapons; w++ {
		if g.weapons[w].Tier < 1 {
			continue
		}
		line := fmt.Sprintf("  %-15s t%d", w, g.weapons[w].Tier)
		if g.weapons[w].Branch != 0 {
			line += fmt.Sprintf(" %s+%d", branchName(w, g.weapons[w].Branch), g.weapons[w].BranchTier)
		}
		fmt.Fprintf(&b, "%-28s %6d fires  %8.0f dmg\n", line, g.firesByWeapon[w], g.damageByWeapon[w])
	}

	if len(g.upgradeHistory) > 0 {
		b.WriteString("upgrades taken:\n")
		for i, u := range g.upgradeHistory {
			fmt.Fprintf(&b, "  %2d) %s\n", i+1, u)
		}
	}
	return b.String()
}

// copyRunReport puts the run report on the system clipboard. Clipboard
// failures (headless CI, no display) are swallowed; the report is only
// a convenience.
func (g *Game) copyRunReport() {
	if err := clipboard.WriteAll(g.runReport()); err != nil {
		g.log("report", "clipboard unavailable", 0)
		return
	}
	g.spawnPopup(g.player.Pos, "report copied", colHUDText)
	g.log("report", "copied", 0)
}
