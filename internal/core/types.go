package core

import (
	"errors"
	"maps"
	"slices"
)

// ErrUnknownSim reports a simulation name with no registered factory.
var ErrUnknownSim = errors.New(f("unknown sim"))

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Sim defines the contract the presentation layer drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []Color
}

// Editor is implemented by sims whose cells can be recolored interactively.
type Editor interface {
	NumColors() int
	CellColor(row, col int) Color
	SetCellColor(row, col int, color Color) error
}

// Halter is implemented by sims that can reach a terminal state.
type Halter interface {
	AllHalted() bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// NewSim builds the sim registered under name.
func NewSim(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, &UnknownSimError{Name: name, Available: slices.Sorted(maps.Keys(sims))}
	}
	return factory(cfg)
}

// UnknownSimError names the missing sim and the ones that exist.
type UnknownSimError struct {
	Name      string
	Available []string
}

func (err *UnknownSimError) Error() string {
	return f("%v %q, available sims are %v", ErrUnknownSim, err.Name, err.Available)
}

func (err *UnknownSimError) Unwrap() error {
	return ErrUnknownSim
}
