package app

import (
	"log"
	"strconv"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/render"
	"github.com/swansonk14/graphing-fleas/internal/sims/fleas"
)

// maxCatchUp bounds the ticks run in one poll after a stall.
const maxCatchUp = 4

// Options configures a Controller.
type Options struct {
	TPS          int
	StepsPerTick int
	DisplayEvery int
	PrintEvery   int
	Paused       bool
	Logf         func(format string, args ...any)
	// Timer paces Update; nil builds one from TPS.
	Timer *core.FixedStep
}

// Controller owns the run loop shared by the window and headless builds:
// pausing, single steps, progress lines, display refresh and edits.
type Controller struct {
	sim   *fleas.Simulation
	timer *core.FixedStep

	stepsPerTick int
	displayEvery int
	printEvery   int
	paused       bool
	logf         func(format string, args ...any)

	frame     []core.Color
	markers   []render.Marker
	frameStep int
}

// NewController wraps sim. The displayed frame starts at the initial board.
func NewController(sim *fleas.Simulation, opts Options) *Controller {
	c := &Controller{
		sim:          sim,
		timer:        opts.Timer,
		stepsPerTick: max(opts.StepsPerTick, 1),
		displayEvery: opts.DisplayEvery,
		printEvery:   opts.PrintEvery,
		paused:       opts.Paused,
		logf:         opts.Logf,
	}
	if c.timer == nil {
		c.timer = core.NewFixedStep(opts.TPS)
	}
	if c.displayEvery == 0 {
		c.displayEvery = 1
	}
	if c.logf == nil {
		c.logf = log.Printf
	}
	c.Redraw()
	return c
}

// Sim returns the driven simulation.
func (c *Controller) Sim() *fleas.Simulation { return c.sim }

// Paused reports whether timed stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// TogglePause flips the pause state.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	c.timer.Reset()
}

// Update runs the ticks that are due. It returns the number of steps taken.
func (c *Controller) Update() int {
	if c.paused {
		return 0
	}
	steps := 0
	for n := c.timer.Due(maxCatchUp); n > 0; n-- {
		for i := 0; i < c.stepsPerTick; i++ {
			if !c.step() {
				return steps
			}
			steps++
		}
	}
	return steps
}

// Advance takes a single step regardless of the pause state.
func (c *Controller) Advance() bool {
	return c.step()
}

// Run steps until every flea halts or limit steps have been taken; a
// negative limit runs until halted. It returns the steps taken.
func (c *Controller) Run(limit int) int {
	steps := 0
	for limit < 0 || steps < limit {
		if !c.step() {
			break
		}
		steps++
	}
	return steps
}

// step advances the simulation once, pausing when every flea has halted.
func (c *Controller) step() bool {
	if c.sim.AllHalted() {
		c.paused = true
		return false
	}
	n := c.sim.Steps()
	if c.printEvery > 0 && n%c.printEvery == 0 {
		c.logf("%s", Message(n, c.paused))
	}
	c.sim.Step()
	if c.displayEvery > 0 && c.sim.Steps()%c.displayEvery == 0 {
		c.Redraw()
	}
	if c.sim.AllHalted() {
		c.paused = true
		c.Redraw()
	}
	return true
}

// Redraw captures the current board as the displayed frame.
func (c *Controller) Redraw() {
	c.frame = append(c.frame[:0], c.sim.Cells()...)
	c.markers = c.markers[:0]
	for _, a := range c.sim.Fleas() {
		c.markers = append(c.markers, render.Marker{Row: a.Row, Col: a.Col, Halted: a.Halted()})
	}
	c.frameStep = c.sim.Steps()
}

// Frame returns the displayed cells and flea markers.
func (c *Controller) Frame() ([]core.Color, []render.Marker) {
	return c.frame, c.markers
}

// Edit cycles the color of one cell forward or back. Edits are only
// accepted while paused.
func (c *Controller) Edit(row, col int, forward bool) bool {
	if !c.paused {
		return false
	}
	if forward {
		c.sim.NextColor(row, col)
	} else {
		c.sim.PrevColor(row, col)
	}
	c.Redraw()
	return true
}

// Reset restarts the simulation from its seeded board.
func (c *Controller) Reset(seed int64) {
	c.sim.Reset(seed)
	c.timer.Reset()
	c.Redraw()
}

// Message returns the banner text for the displayed frame.
func (c *Controller) Message() string {
	return Message(c.frameStep, c.paused)
}

// Message formats the step banner.
func Message(step int, paused bool) string {
	if paused {
		return f("Step %d (paused)", step)
	}
	return f("Step %d", step)
}

// Parameters merges the simulation snapshot with the run controls.
func (c *Controller) Parameters() core.ParameterSnapshot {
	snap := c.sim.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "View",
		Params: []core.Parameter{
			{Key: "steps_per_tick", Label: "Steps/tick", Type: core.ParamTypeInt, Value: strconv.Itoa(c.stepsPerTick)},
			{Key: "tps", Label: "TPS", Type: core.ParamTypeInt, Value: strconv.Itoa(c.timer.TPS())},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.paused)},
		},
	})
	return snap
}

// ParameterControls lists the values the HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "steps_per_tick", Label: "Steps/tick", Step: 1, Min: 1, Max: 10000},
		{Key: "tps", Label: "TPS", Step: 5, Min: 1, Max: 240},
	}
}

// SetIntParameter applies a HUD adjustment.
func (c *Controller) SetIntParameter(key string, value int) bool {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "steps_per_tick":
			c.stepsPerTick = value
		case "tps":
			c.timer.SetTPS(value)
		}
		return true
	}
	return false
}
