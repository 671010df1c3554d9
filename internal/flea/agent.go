package flea

import (
	"math"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

// Center requests the grid midpoint along one axis.
const Center = math.MinInt32

// Agent is a flea: a position, a heading and the rule it follows. It holds
// coordinates rather than a cell so the grid stays the only owner of colors.
type Agent struct {
	Row, Col int
	Heading  Heading
	Rule     *Rule
}

// NewAgent places an agent and applies the rule's start turn.
func NewAgent(rule *Rule, row, col int, heading Heading) *Agent {
	a := &Agent{Row: row, Col: col, Heading: heading, Rule: rule}
	a.Apply(rule.StartTurn)
	return a
}

// Halted reports whether the agent has stopped for good.
func (a *Agent) Halted() bool { return a.Heading == Halted }

// TurnLeft rotates the agent 90 degrees counterclockwise.
func (a *Agent) TurnLeft() { a.Heading = a.Heading.Left() }

// TurnRight rotates the agent 90 degrees clockwise.
func (a *Agent) TurnRight() { a.Heading = a.Heading.Right() }

// Turn180 reverses the agent.
func (a *Agent) Turn180() {
	a.TurnRight()
	a.TurnRight()
}

// Stop halts the agent.
func (a *Agent) Stop() { a.Heading = Halted }

// Apply performs a turn action. Halted agents ignore it.
func (a *Agent) Apply(t TurnAction) {
	if a.Halted() {
		return
	}
	switch t {
	case TurnLeft:
		a.TurnLeft()
	case TurnRight:
		a.TurnRight()
	case Turn180:
		a.Turn180()
	case Stop:
		a.Stop()
	}
}

// Rotate consults the rule with the color under the agent.
func (a *Agent) Rotate(g *core.Grid) {
	if a.Halted() {
		return
	}
	a.Apply(a.Rule.Decide(g.Color(a.Row, a.Col)))
}

// Move advances one cell along the heading, wrapping at the grid edges.
func (a *Agent) Move(g *core.Grid) {
	if a.Halted() {
		return
	}
	dr, dc := a.Heading.Delta()
	a.Row, a.Col = g.Wrap(a.Row+dr, a.Col+dc)
}

// Cell looks up the cell the agent stands on.
func (a *Agent) Cell(g *core.Grid) core.Cell {
	return g.Get(a.Row, a.Col)
}

// Resolve turns a requested coordinate into an index in [0, dim). Center
// picks the midpoint and other negative values count back from dim.
func Resolve(req, dim int) (int, error) {
	switch {
	case req == Center:
		return dim / 2, nil
	case req < 0 && req >= -dim:
		return dim + req, nil
	case req >= 0 && req < dim:
		return req, nil
	}
	return 0, &PositionError{Value: req, Dim: dim}
}

// PositionError reports a requested coordinate that cannot be placed.
type PositionError struct {
	Value, Dim int
}

func (err *PositionError) Error() string {
	return f("%v: %d not in [-%d, %d)", ErrPosition, err.Value, err.Dim, err.Dim)
}

func (err *PositionError) Unwrap() error {
	return ErrPosition
}
