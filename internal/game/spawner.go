package game

import "math"

// spawnInterval shrinks monotonically with elapsed game time down to a
// hard floor.
func (g *Game) spawnInterval() float64 {
	iv := g.tuning.SpawnBaseInterval - g.tuning.SpawnIntervalDecay*g.gameTime
	return math.Max(g.tuning.SpawnMinInterval, iv)
}

// enemyTypeWeights ramps the mix over time: walkers dominate early,
// fast and tank enemies claim a growing share of the roll.
func (g *Game) enemyTypeWeights() [NumEnemyTypes]float64 {
	t := g.gameTime
	fast := 25 + t*0.20
	tank := 5 + t*0.10
	walker := math.Max(10, 70-t*0.30)
	return [NumEnemyTypes]float64{walker, fast, tank}
}

// updateSpawner emits enemies when the spawn timer expires and advances
// the wave counter. Bursts grow with game time; overflow on the timer
// is absorbed so long frames do not skip spawns.
func (g *Game) updateSpawner(dt float64) {
	g.spawnTimer += dt
	interval := g.spawnInterval()
	for g.spawnTimer >= interval {
		g.spawnTimer -= interval
		burst := 1 + int(g.gameTime/spawnBurstPeriod)
		for i := 0; i < burst; i++ {
			g.spawnEnemy()
		}
	}

	wave := 1 + int(g.gameTime/waveDuration)
	if wave > g.wave {
		g.wave = wave
		g.log("wave", "", float64(wave))
	}
}

// spawnEnemy places one enemy on the perimeter of the viewport expanded
// by the spawn margin, clamped into the world. A saturated pool drops
// the spawn silently.
func (g *Game) spawnEnemy() {
	slot := -1
	for i := range g.enemies {
		if !g.enemies[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return
	}

	w := g.enemyTypeWeights()
	typ := EnemyType(g.rng.WeightedIndex(w[:]))
	pos := g.spawnPerimeterPoint()

	hp := enemyTable[typ].baseHP + math.Round(g.gameTime*g.tuning.EnemyHPScalePerSec)
	g.enemies[slot] = Enemy{
		Active: true,
		Type:   typ,
		Pos:    pos,
		HP:     hp,
		MaxHP:  hp,
	}
	g.log("spawn", typ.String(), g.gameTime)
}

// spawnPerimeterPoint picks a uniform point on the rectangle ring just
// outside the visible viewport.
func (g *Game) spawnPerimeterPoint() Vec2 {
	left := g.cam.X - spawnMargin
	top := g.cam.Y - spawnMargin
	right := g.cam.X + float64(g.screenW) + spawnMargin
	bottom := g.cam.Y + float64(g.screenH) + spawnMargin
	w := right - left
	h := bottom - top

	// Pick an edge weighted by its length, then a point along it.
	var p Vec2
	roll := g.rng.Float64() * 2 * (w + h)
	switch {
	case roll < w: // top
		p = Vec2{left + roll, top}
	case roll < 2*w: // bottom
		p = Vec2{left + (roll - w), bottom}
	case roll < 2*w+h: // left
		p = Vec2{left, top + (roll - 2*w)}
	default: // right
		p = Vec2{right, top + (roll - 2*w - h)}
	}

	p.X = clampF(p.X, 0, WorldW)
	p.Y = clampF(p.Y, 0, WorldH)
	return p
}
