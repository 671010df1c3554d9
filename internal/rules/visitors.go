package rules

import (
	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
)

func init() {
	// Bounces between the ends of a growing run of visited cells.
	flea.MustRegister(OneDimVisitor, &flea.Rule{
		NumColors: 2,
		CycleSize: 1,
		Turns: flea.Turns(2, map[flea.TurnAction][]core.Color{
			flea.Turn180: {0},
		}),
		StartTurn: flea.TurnRight,
	})

	flea.MustRegister(TwoDimVisitor, &flea.Rule{
		NumColors: 3,
		CycleSize: 1,
		Turns: flea.Turns(3, map[flea.TurnAction][]core.Color{
			flea.TurnRight: {0},
			flea.TurnLeft:  {1},
		}),
	})
}
