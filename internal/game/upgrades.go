package game

import "fmt"

// UpgradeKind partitions the level-up pool.
type UpgradeKind int

const (
	UpgradeWeaponTier UpgradeKind = iota
	UpgradeWeaponUnlock
	UpgradeBranchSelect
	UpgradeBranchTier
	UpgradeStat
	UpgradeSkip
)

// StatKind enumerates the flat stat upgrades.
type StatKind int

const (
	StatDamage StatKind = iota
	StatAttackSpeed
	StatCrit
	StatArea
	StatProjectiles
	StatMaxHP
	StatRegen
	StatMoveSpeed
	StatMagnet
	StatArmor
	StatLifesteal
	StatDodge
	StatThorns

	NumStatKinds
)

// statUpgradeTable describes each stat upgrade: HUD label and the
// per-pick amount. Caps live in statUpgradeValid.
var statUpgradeTable = [NumStatKinds]struct {
	label  string
	amount float64
}{
	StatDamage:      {"damage +10%", 0.10},
	StatAttackSpeed: {"attack speed +10%", 0.10},
	StatCrit:        {"crit chance +5%", 5},
	StatArea:        {"area +10%", 0.10},
	StatProjectiles: {"+1 projectile", 1},
	StatMaxHP:       {"max hp +20", 20},
	StatRegen:       {"regen +0.5/s", 0.5},
	StatMoveSpeed:   {"move speed +10%", 0.10},
	StatMagnet:      {"magnet +25", 25},
	StatArmor:       {"armor +5%", 5},
	StatLifesteal:   {"lifesteal +2%", 2},
	StatDodge:       {"dodge +5%", 5},
	StatThorns:      {"thorns +10%", 10},
}

// UpgradeOffer is one carousel entry. Kind selects which of the other
// fields are meaningful.
type UpgradeOffer struct {
	Kind   UpgradeKind
	Weapon WeaponType
	Branch int
	Stat   StatKind
}

// Label is the HUD line for the offer.
func (o UpgradeOffer) Label() string {
	switch o.Kind {
	case UpgradeWeaponTier:
		return fmt.Sprintf("%s tier up", o.Weapon)
	case UpgradeWeaponUnlock:
		return fmt.Sprintf("unlock %s", o.Weapon)
	case UpgradeBranchSelect:
		return fmt.Sprintf("%s: %s path", o.Weapon, branchName(o.Weapon, o.Branch))
	case UpgradeBranchTier:
		return fmt.Sprintf("%s: %s +1", o.Weapon, branchName(o.Weapon, o.Branch))
	case UpgradeStat:
		return statUpgradeTable[o.Stat].label
	}
	return "skip"
}

func (g *Game) statUpgradeValid(s StatKind) bool {
	st := &g.player.stats
	switch s {
	case StatCrit:
		return st.CritChance < capCrit
	case StatProjectiles:
		return st.BonusProjectiles < capBonusProjectiles
	case StatArmor:
		return st.Armor < capArmor
	case StatDodge:
		return st.Dodge < capDodge
	}
	return true
}

// upgradeCandidates builds every currently-valid offer with its pool
// weight. Weapon progression weighs heavier than flat stats so the
// carousel pushes the tree forward.
func (g *Game) upgradeCandidates() ([]UpgradeOffer, []float64) {
	var offers []UpgradeOffer
	var weights []float64
	add := func(o UpgradeOffer, w float64) {
		offers = append(offers, o)
		weights = append(weights, w)
	}

	for w := WeaponType(0); w < NumWeapons; w++ {
		slot := &g.weapons[w]
		switch {
		case slot.Tier == 0:
			add(UpgradeOffer{Kind: UpgradeWeaponUnlock, Weapon: w}, 2)
		case slot.Tier < maxWeaponTier:
			add(UpgradeOffer{Kind: UpgradeWeaponTier, Weapon: w}, 3)
		}
		if slot.Tier >= 2 && slot.Branch == 0 {
			for b := 1; b <= 3; b++ {
				add(UpgradeOffer{Kind: UpgradeBranchSelect, Weapon: w, Branch: b}, 1)
			}
		}
		if slot.Branch != 0 && slot.BranchTier < maxBranchTier {
			add(UpgradeOffer{Kind: UpgradeBranchTier, Weapon: w, Branch: slot.Branch}, 3)
		}
	}

	for s := StatKind(0); s < NumStatKinds; s++ {
		if g.statUpgradeValid(s) {
			add(UpgradeOffer{Kind: UpgradeStat, Stat: s}, 2)
		}
	}
	return offers, weights
}

// rollUpgradeOffers draws up to numUpgradeChoices distinct offers and
// appends the ever-present skip. An empty pool yields skip alone; the
// caller auto-skips in that case.
func (g *Game) rollUpgradeOffers() []UpgradeOffer {
	cands, weights := g.upgradeCandidates()

	out := make([]UpgradeOffer, 0, numUpgradeChoices+1)
	for len(out) < numUpgradeChoices && len(cands) > 0 {
		i := g.rng.WeightedIndex(weights)
		out = append(out, cands[i])
		cands[i] = cands[len(cands)-1]
		weights[i] = weights[len(weights)-1]
		cands = cands[:len(cands)-1]
		weights = weights[:len(weights)-1]
	}
	out = append(out, UpgradeOffer{Kind: UpgradeSkip})
	return out
}

// applyUpgrade commits one offer. The commit is atomic: every field it
// touches is written here and nowhere else during LEVEL_UP.
func (g *Game) applyUpgrade(o UpgradeOffer) {
	st := &g.player.stats
	switch o.Kind {
	case UpgradeWeaponTier:
		g.weapons[o.Weapon].Tier++
	case UpgradeWeaponUnlock:
		g.weapons[o.Weapon].Tier = 1
	case UpgradeBranchSelect:
		g.weapons[o.Weapon].Branch = o.Branch
		g.weapons[o.Weapon].BranchTier = 1
	case UpgradeBranchTier:
		g.weapons[o.Weapon].BranchTier++
	case UpgradeStat:
		amt := statUpgradeTable[o.Stat].amount
		switch o.Stat {
		case StatDamage:
			st.DamageMult += amt
		case StatAttackSpeed:
			st.AttackSpeedMult += amt
		case StatCrit:
			st.CritChance = clampF(st.CritChance+amt, 0, capCrit)
		case StatArea:
			st.AreaMult += amt
		case StatProjectiles:
			if st.BonusProjectiles < capBonusProjectiles {
				st.BonusProjectiles++
			}
		case StatMaxHP:
			st.MaxHP += amt
			g.player.HP += amt // raising the cap heals by the same amount
		case StatRegen:
			st.Regen += amt
		case StatMoveSpeed:
			st.MoveSpeed *= 1 + amt
		case StatMagnet:
			st.MagnetRange += amt
		case StatArmor:
			st.Armor = clampF(st.Armor+amt, 0, capArmor)
		case StatLifesteal:
			st.Lifesteal += amt
		case StatDodge:
			st.Dodge = clampF(st.Dodge+amt, 0, capDodge)
		case StatThorns:
			st.Thorns += amt
		}
	case UpgradeSkip:
		// Nothing; the level is still consumed.
	}

	g.upgradeHistory = append(g.upgradeHistory, o.Label())
	g.log("upgrade", o.Label(), 0)
}
