package rules

import (
	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
)

// rightOrLeft turns right on the listed colors and left everywhere else.
func rightOrLeft(numColors int, right ...core.Color) []flea.TurnAction {
	table := make([]flea.TurnAction, numColors)
	for i := range table {
		table[i] = flea.TurnLeft
	}
	for _, c := range right {
		table[c] = flea.TurnRight
	}
	return table
}

func init() {
	// https://en.wikipedia.org/wiki/Langton%27s_ant
	flea.MustRegister(Langtons, &flea.Rule{
		NumColors: 2,
		Turns:     rightOrLeft(2, 0),
	})

	// RRLLLRLLLRRR
	flea.MustRegister(Triangle, &flea.Rule{
		NumColors: 12,
		Turns:     rightOrLeft(12, 0, 1, 5, 9, 10, 11),
	})
}
