//go:build !ebiten

// Command fleas runs a simulation without a window and prints the final
// board. Build with -tags ebiten for the interactive view.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/swansonk14/graphing-fleas/internal/app"
	"github.com/swansonk14/graphing-fleas/internal/config"
	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/sims/fleas"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	save := flag.String("save", "", "write the final board to this JSON or YAML file")
	flag.Parse()

	fs := osfs.New(".")
	simCfg, err := cfg.SimConfig(fs)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sim, err := fleas.New(simCfg)
	if err != nil {
		log.Fatalf("new simulation: %v", err)
	}
	printEvery, err := app.Frequency(cfg.PrintFrequency)
	if err != nil {
		log.Fatalf("print_frequency: %v", err)
	}
	if cfg.Steps < 0 && !haltable(sim) {
		log.Fatalf("%s never halts; pass -steps", sim.Rule().Name)
	}

	ctrl := app.NewController(sim, app.Options{DisplayEvery: -1, PrintEvery: printEvery})
	ctrl.Run(cfg.Steps)
	log.Printf("%s, all halted: %v", app.Message(sim.Steps(), false), sim.AllHalted())

	printBoard(sim.Board())
	if *save != "" {
		if err := config.Save(fs, *save, config.FromSimulation(sim)); err != nil {
			log.Fatalf("save: %v", err)
		}
	}
}

// haltable reports whether the species can stop at all.
func haltable(sim *fleas.Simulation) bool {
	for c := 0; c < sim.NumColors(); c++ {
		if sim.Rule().Decide(core.Color(c)) == flea.Stop {
			return true
		}
	}
	return sim.AllHalted()
}

func printBoard(board [][]core.Color) {
	for _, row := range board {
		fields := make([]string, len(row))
		for i, c := range row {
			fields[i] = fmt.Sprint(c)
		}
		fmt.Fprintln(os.Stdout, strings.Join(fields, " "))
	}
}
