//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/swansonk14/graphing-fleas/internal/app"
	"github.com/swansonk14/graphing-fleas/internal/render"
	"github.com/swansonk14/graphing-fleas/internal/sims/fleas"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig(osfs.New("."))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sim, err := fleas.New(simCfg)
	if err != nil {
		log.Fatalf("new simulation: %v", err)
	}
	display, err := app.Frequency(cfg.DisplayFrequency)
	if err != nil {
		log.Fatalf("display_frequency: %v", err)
	}
	printEvery, err := app.Frequency(cfg.PrintFrequency)
	if err != nil {
		log.Fatalf("print_frequency: %v", err)
	}

	ctrl := app.NewController(sim, app.Options{
		TPS:          cfg.TPS,
		DisplayEvery: display,
		PrintEvery:   printEvery,
		Paused:       cfg.Pause,
	})
	geom := render.DefaultGeometry()
	geom.CellWidth, geom.CellHeight = cfg.CellWidth, cfg.CellHeight
	game := app.New(ctrl, geom, cfg.Visited, simCfg.Seed)

	size := sim.Size()
	ebiten.SetWindowTitle("Graphing Fleas - " + sim.Rule().Name)
	ebiten.SetWindowSize(geom.WindowSize(size.Rows, size.Cols))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
