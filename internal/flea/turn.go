package flea

import (
	"strings"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

// TurnAction is what a rule tells an agent to do with its heading.
type TurnAction uint8

const (
	// None keeps the current heading. It is the zero value so that colors
	// a rule does not mention go straight.
	None TurnAction = iota
	TurnLeft
	TurnRight
	Turn180
	// Stop halts the agent for good.
	Stop
)

var turnNames = [...]string{"none", "left", "right", "180", "stop"}

func (t TurnAction) String() string {
	if int(t) < len(turnNames) {
		return turnNames[t]
	}
	return f("turn(%d)", uint8(t))
}

// ParseTurnAction accepts the names printed by String plus "straight".
func ParseTurnAction(s string) (TurnAction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "straight" {
		return None, nil
	}
	for i, name := range turnNames {
		if s == name {
			return TurnAction(i), nil
		}
	}
	return None, &TurnError{Name: s}
}

// TurnError names a turn action that could not be parsed.
type TurnError struct {
	Name string
}

func (err *TurnError) Error() string {
	return f("%v %q", ErrInvalidTurn, err.Name)
}

func (err *TurnError) Unwrap() error {
	return ErrInvalidTurn
}

// Apply returns the heading after performing t.
func (t TurnAction) Apply(h Heading) Heading {
	switch t {
	case TurnLeft:
		return h.Left()
	case TurnRight:
		return h.Right()
	case Turn180:
		return h.Reverse()
	case Stop:
		return Halted
	default:
		return h
	}
}

// Undo returns the heading t was applied to. Stop cannot be undone and
// leaves h unchanged.
func (t TurnAction) Undo(h Heading) Heading {
	switch t {
	case TurnLeft:
		return h.Right()
	case TurnRight:
		return h.Left()
	case Turn180:
		return h.Reverse()
	default:
		return h
	}
}

// Turns builds a per-color turn table of length numColors from the colors
// each action applies to. Colors not listed go straight.
func Turns(numColors int, byAction map[TurnAction][]core.Color) []TurnAction {
	table := make([]TurnAction, numColors)
	for action, colors := range byAction {
		for _, c := range colors {
			if int(c) < numColors {
				table[c] = action
			}
		}
	}
	return table
}
