package fleas

import (
	"errors"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

// ErrFleaCount reports a negative number of fleas.
var ErrFleaCount = errors.New(f("flea count must not be negative"))

// Simulation steps a set of fleas over a colored toroidal grid.
//
// A step runs three phases in a fixed order, each over the fleas in the
// order they were created: every flea turns according to the color under
// it, every cell under a flea advances through the transition table, then
// every flea moves one cell. Halted fleas sit out all three phases. Fleas
// sharing a cell each advance it, so the later flea sees the earlier one's
// write.
//
// Simulation is not safe for concurrent use.
type Simulation struct {
	cfg   Config
	rule  *flea.Rule
	table core.TransitionTable

	grid    *core.Grid
	initial *core.Grid
	fleas   []*flea.Agent
	steps   int

	// visited marks cells some flea has recolored.
	visited []bool
	origin  [2]int
}

// New validates cfg and builds a simulation. No simulation is returned when
// any part of the configuration is rejected.
func New(cfg Config) (*Simulation, error) {
	rule, err := flea.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	table, err := rule.Table()
	if err != nil {
		return nil, err
	}
	if cfg.NumFleas < 0 {
		return nil, ErrFleaCount
	}
	grid, err := core.NewGrid(cfg.Rows, cfg.Cols, rule.NumColors, cfg.Colors)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:     cfg,
		rule:    rule,
		table:   table,
		grid:    grid,
		initial: grid.Clone(),
		visited: make([]bool, cfg.Rows*cfg.Cols),
	}
	if s.fleas, err = s.place(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// place creates the fleas in configuration order.
func (s *Simulation) place(seed int64) ([]*flea.Agent, error) {
	rng := core.NewRNG(seed)
	out := make([]*flea.Agent, 0, s.cfg.NumFleas)
	for i := 0; i < s.cfg.NumFleas; i++ {
		row, err := s.coord(s.cfg.FleaRows, i, s.grid.Rows, rng)
		if err != nil {
			return nil, err
		}
		col, err := s.coord(s.cfg.FleaCols, i, s.grid.Cols, rng)
		if err != nil {
			return nil, err
		}
		heading := flea.Up
		if i < len(s.cfg.Headings) {
			heading = s.cfg.Headings[i]
		}
		if heading == flea.Halted {
			return nil, &flea.HeadingError{Name: heading.String()}
		}
		if i == 0 {
			s.origin = [2]int{row, col}
		}
		out = append(out, flea.NewAgent(s.rule, row, col, heading))
	}
	return out, nil
}

func (s *Simulation) coord(reqs []int, i, dim int, rng *core.RNG) (int, error) {
	if i >= len(reqs) {
		return rng.IntN(dim), nil
	}
	return flea.Resolve(reqs[i], dim)
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "fleas" }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{Rows: s.grid.Rows, Cols: s.grid.Cols} }

// Cells exposes the grid colors in row-major order.
func (s *Simulation) Cells() []core.Color { return s.grid.Cells() }

// Reset restores the seeded colors and start positions. A zero seed reuses
// the configured one for fleas placed at random.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.grid.CopyFrom(s.initial)
	clear(s.visited)
	// the same coordinates were accepted by New, so placement cannot fail
	s.fleas, _ = s.place(seed)
	s.steps = 0
}

// Step advances every flea by one tick.
func (s *Simulation) Step() {
	for _, a := range s.fleas {
		a.Rotate(s.grid)
	}
	for _, a := range s.fleas {
		if !a.Halted() {
			s.grid.ApplyTransition(a.Row, a.Col, s.table)
			s.visited[s.grid.Index(a.Row, a.Col)] = true
		}
	}
	for _, a := range s.fleas {
		a.Move(s.grid)
	}
	s.steps++
}

// AllHalted reports whether every flea has stopped. A run without fleas is
// trivially halted.
func (s *Simulation) AllHalted() bool {
	for _, a := range s.fleas {
		if !a.Halted() {
			return false
		}
	}
	return true
}

// Steps returns the number of ticks since construction or the last Reset.
func (s *Simulation) Steps() int { return s.steps }

// Rule returns the species driving the fleas.
func (s *Simulation) Rule() *flea.Rule { return s.rule }

// NumColors returns the size of the color domain.
func (s *Simulation) NumColors() int { return s.rule.NumColors }

// Fleas returns copies of the fleas in creation order.
func (s *Simulation) Fleas() []flea.Agent {
	out := make([]flea.Agent, len(s.fleas))
	for i, a := range s.fleas {
		out[i] = *a
	}
	return out
}

// CellColor returns the color at (row, col), which must be in range.
func (s *Simulation) CellColor(row, col int) core.Color {
	return s.grid.Color(row, col)
}

// SetCellColor recolors one cell for interactive editing.
func (s *Simulation) SetCellColor(row, col int, color core.Color) error {
	return s.grid.SetColor(row, col, color)
}

// NextColor cycles a cell one color forward, wrapping at num_colors.
func (s *Simulation) NextColor(row, col int) {
	n := s.rule.NumColors
	_ = s.grid.SetColor(row, col, core.Color((int(s.grid.Color(row, col))+1)%n))
}

// PrevColor cycles a cell one color back, wrapping at zero.
func (s *Simulation) PrevColor(row, col int) {
	n := s.rule.NumColors
	_ = s.grid.SetColor(row, col, core.Color((int(s.grid.Color(row, col))+n-1)%n))
}

// Visited reports whether a flea has recolored (row, col) since the last
// Reset.
func (s *Simulation) Visited(row, col int) bool {
	return s.visited[s.grid.Index(row, col)]
}

// Origin returns the start cell of the first flea, or (0, 0) when there are
// no fleas.
func (s *Simulation) Origin() (row, col int) {
	return s.origin[0], s.origin[1]
}

// Board returns a copy of the current colors.
func (s *Simulation) Board() [][]core.Color { return s.grid.Snapshot() }

var (
	_ core.Sim    = (*Simulation)(nil)
	_ core.Editor = (*Simulation)(nil)
	_ core.Halter = (*Simulation)(nil)
)

func init() {
	core.Register("fleas", func(cfg map[string]string) (core.Sim, error) {
		sim, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
