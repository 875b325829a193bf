package game

import (
	"fmt"
	"image/color"
)

// GemType sets an XP gem's value and look.
type GemType int

const (
	GemSmall GemType = iota
	GemMedium
	GemLarge
)

func (t GemType) value() int {
	switch t {
	case GemMedium:
		return gemValueMedium
	case GemLarge:
		return gemValueLarge
	}
	return gemValueSmall
}

func (t GemType) radius() float64 {
	switch t {
	case GemMedium:
		return 6
	case GemLarge:
		return 8
	}
	return 5
}

func (t GemType) color() color.RGBA {
	switch t {
	case GemMedium:
		return colGemMedium
	case GemLarge:
		return colGemLarge
	}
	return colGemSmall
}

// Gem is a dropped XP pickup. Inside magnet range it steers toward the
// player; on touch it is absorbed.
type Gem struct {
	Active     bool
	Type       GemType
	Pos        Vec2
	Vel        Vec2
	Magnetized bool
}

// spawnGem drops a gem at an enemy's death position. Saturated pool
// drops the gem.
func (g *Game) spawnGem(pos Vec2, typ GemType) {
	for i := range g.gems {
		if g.gems[i].Active {
			continue
		}
		g.gems[i] = Gem{Active: true, Type: typ, Pos: pos}
		return
	}
}

// updateGems magnetizes, steers and absorbs gems, and winds the combo
// counter.
func (g *Game) updateGems(dt float64) {
	magnetRange := g.player.stats.MagnetRange * g.effMagnetMult()

	for i := range g.gems {
		gem := &g.gems[i]
		if !gem.Active {
			continue
		}
		d := dist(gem.Pos, g.player.Pos)

		if d <= magnetRange {
			gem.Magnetized = true
		}
		if gem.Magnetized {
			dir := g.player.Pos.Sub(gem.Pos).Normalized()
			gem.Vel = dir.Scale(gemMagnetSpeed)
			gem.Pos = gem.Pos.Add(gem.Vel.Scale(dt))
		}

		if d <= playerPickupRange {
			gem.Active = false
			g.bumpCombo()
			g.grantXP(gem.Type.value())
			g.spawnPopup(gem.Pos, fmt.Sprintf("+%d xp", gem.Type.value()), gem.Type.color())
			g.log("gem", fmt.Sprintf("%d", gem.Type.value()), float64(g.player.XP))
		}
	}

	if g.comboTimer > 0 {
		g.comboTimer -= dt
		if g.comboTimer <= 0 {
			g.combo = 0
		}
	}
}

// bumpCombo counts consecutive pickups inside the combo window. Pure
// HUD flavor; it feeds no damage math.
func (g *Game) bumpCombo() {
	g.combo++
	g.comboTimer = comboWindow
	if g.combo > 1 && g.combo%10 == 0 {
		g.spawnPopup(g.player.Pos, fmt.Sprintf("combo x%d", g.combo), colSelect)
	}
}

// --- Potions ---

// PotionType selects the buff a potion grants when drunk.
type PotionType int

const (
	PotionDamage PotionType = iota
	PotionSpeed
	PotionShield
	PotionMagnet

	NumPotionTypes
)

func (t PotionType) String() string {
	switch t {
	case PotionDamage:
		return "damage"
	case PotionSpeed:
		return "speed"
	case PotionShield:
		return "shield"
	case PotionMagnet:
		return "magnet"
	}
	return "?"
}

func (t PotionType) color() color.RGBA {
	switch t {
	case PotionDamage:
		return color.RGBA{R: 230, G: 90, B: 90, A: 255}
	case PotionSpeed:
		return color.RGBA{R: 120, G: 210, B: 250, A: 255}
	case PotionShield:
		return color.RGBA{R: 240, G: 220, B: 120, A: 255}
	case PotionMagnet:
		return color.RGBA{R: 180, G: 140, B: 250, A: 255}
	}
	return colHUDText
}

// PotionDrop is a potion lying on the ground.
type PotionDrop struct {
	Active bool
	Type   PotionType
	Pos    Vec2
}

const potionDropRadius = 8.0

func (g *Game) spawnPotionDrop(pos Vec2, typ PotionType) {
	for i := range g.potionDrops {
		if g.potionDrops[i].Active {
			continue
		}
		g.potionDrops[i] = PotionDrop{Active: true, Type: typ, Pos: pos}
		return
	}
}

// updatePotionDrops absorbs drops into the inventory on touch. A full
// inventory leaves the drop on the ground.
func (g *Game) updatePotionDrops() {
	for i := range g.potionDrops {
		d := &g.potionDrops[i]
		if !d.Active {
			continue
		}
		if dist(d.Pos, g.player.Pos) > playerPickupRange+potionDropRadius {
			continue
		}
		if !g.addPotion(d.Type) {
			continue // inventory full; the drop persists
		}
		d.Active = false
		g.spawnPopup(d.Pos, d.Type.String()+" potion", d.Type.color())
		g.log("potion_pickup", d.Type.String(), 0)
	}
}

// addPotion inserts into the first free inventory slot.
func (g *Game) addPotion(typ PotionType) bool {
	for i := range g.inventory {
		if !g.inventory[i].Held {
			g.inventory[i] = InventoryPotion{Held: true, Type: typ}
			return true
		}
	}
	return false
}

// InventoryPotion is one carried potion slot.
type InventoryPotion struct {
	Held bool
	Type PotionType
}

// drinkNextPotion consumes the first held potion, starting its buff.
// No-op with an empty inventory.
func (g *Game) drinkNextPotion() {
	for i := range g.inventory {
		if !g.inventory[i].Held {
			continue
		}
		typ := g.inventory[i].Type
		g.inventory[i].Held = false
		g.startBuff(typ)
		g.log("potion_drink", typ.String(), 0)
		return
	}
}
