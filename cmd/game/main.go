package main

import (
	"flag"
	"log"

	"github.com/Harrower/Duskwave/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// host adapts the core game to Ebiten's loop: it collects the input
// snapshot, fixes the timestep, and forwards lifecycle calls.
type host struct {
	g  *game.Game
	in *game.InputCollector
}

const fixedDT = 1.0 / 60.0

func (h *host) Update() error {
	in := h.in.Collect(fixedDT)
	h.g.Update(in, fixedDT)
	if h.g.WantsClose() {
		return ebiten.Termination
	}
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	h.g.Draw(screen)
}

func (h *host) Layout(_, _ int) (int, int) {
	return game.ScreenW, game.ScreenH
}

func main() {
	var seed int64
	var tuningPath string
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time-derived)")
	flag.StringVar(&tuningPath, "tuning", "duskwave.yaml", "balance tuning overlay")
	flag.Parse()

	tuning, err := game.LoadTuning(tuningPath)
	if err != nil {
		log.Fatal(err)
	}

	g := game.NewSeeded(seed, tuning)
	g.Init(game.ScreenW, game.ScreenH)
	defer g.Shutdown()

	ebiten.SetWindowTitle("Duskwave")
	ebiten.SetWindowSize(game.ScreenW*2, game.ScreenH*2)
	if err := ebiten.RunGame(&host{g: g, in: game.NewInputCollector()}); err != nil {
		log.Fatal(err)
	}
}
