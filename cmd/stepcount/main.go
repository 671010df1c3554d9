// Command stepcount runs a compute layout over a range of input widths and
// reports how the step count grows.
package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/swansonk14/graphing-fleas/internal/compute"
	"github.com/swansonk14/graphing-fleas/internal/stepcount"
)

func main() {
	kind := flag.String("compute_type", compute.TypeAddOne, "computation, one of "+strings.Join(compute.Types[:3], ", "))
	pattern := flag.String("pattern", "ones", "input shape: ones, zeros or alternating")
	minWidth := flag.Int("min", 1, "smallest input width")
	maxWidth := flag.Int("max", 32, "largest input width")
	limit := flag.Int("limit", 10_000_000, "step limit per run")
	out := flag.String("chart", "", "write a PNG chart to this path")
	flag.Parse()

	gen, ok := stepcount.Patterns[*pattern]
	if !ok {
		names := make([]string, 0, len(stepcount.Patterns))
		for name := range stepcount.Patterns {
			names = append(names, name)
		}
		slices.Sort(names)
		log.Fatalf("unknown pattern %q, have %v", *pattern, names)
	}

	samples, err := stepcount.Measure(*kind, gen, *minWidth, *maxWidth, *limit)
	if err != nil {
		log.Fatalf("%s: %v", *kind, err)
	}
	for _, s := range samples {
		fmt.Printf("%d\t%d\n", s.Width, s.Steps)
	}
	if k, err := stepcount.Exponent(samples); err == nil {
		fmt.Printf("growth exponent %.2f\n", k)
	}

	if *out == "" {
		return
	}
	file, err := osfs.New(".").Create(*out)
	if err != nil {
		log.Fatalf("chart: %v", err)
	}
	defer file.Close()
	if err := stepcount.Render(file, *kind+" ("+*pattern+")", samples); err != nil {
		log.Fatalf("chart: %v", err)
	}
}
