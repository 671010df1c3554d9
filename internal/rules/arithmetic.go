package rules

import (
	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
)

// 0 and 1 swap; the path colors 2, 3 and 4 all settle on the stop color 4.
var bitColorMap = map[core.Color]core.Color{
	0: 1,
	1: 0,
	2: 4,
	3: 4,
	4: 4,
}

// A flip pass turns 3/4 into 5/6, an add-one pass turns 5/6 into the stop
// color 8. Digits go 0 -> 1 -> 2 and back to 1 on a carry.
var twosComplementColorMap = map[core.Color]core.Color{
	0: 1,
	1: 2,
	2: 1,
	3: 5,
	4: 6,
	5: 8,
	6: 8,
	7: 7,
	8: 8,
}

// 2 -> 3 -> 4 -> 2 cycles through bounce, right and left.
var adderColorMap = map[core.Color]core.Color{
	0: 0,
	1: 0,
	2: 3,
	3: 4,
	4: 2,
	5: 7,
	6: 6,
	7: 7,
	8: 8,
}

func init() {
	flea.MustRegister(BitFlipper, &flea.Rule{
		NumColors: 5,
		ColorMap:  bitColorMap,
		Turns: flea.Turns(5, map[flea.TurnAction][]core.Color{
			flea.TurnRight: {2},
			flea.TurnLeft:  {3},
			flea.Stop:      {4},
		}),
	})

	// Trailing ones are walked through and flipped; the first zero flips and
	// bounces the flea back onto a spent path cell.
	flea.MustRegister(AddOne, &flea.Rule{
		NumColors: 5,
		ColorMap:  bitColorMap,
		Turns: flea.Turns(5, map[flea.TurnAction][]core.Color{
			flea.Turn180:   {0},
			flea.TurnRight: {2},
			flea.TurnLeft:  {3},
			flea.Stop:      {4},
		}),
	})

	flea.MustRegister(TwosComplement, &flea.Rule{
		NumColors: 9,
		ColorMap:  twosComplementColorMap,
		Turns: flea.Turns(9, map[flea.TurnAction][]core.Color{
			flea.Turn180:   {2},
			flea.TurnRight: {3, 5},
			flea.TurnLeft:  {4, 6},
			flea.Stop:      {8},
		}),
	})

	flea.MustRegister(Adder, &flea.Rule{
		NumColors: 9,
		ColorMap:  adderColorMap,
		Turns: flea.Turns(9, map[flea.TurnAction][]core.Color{
			flea.Turn180:   {1, 2},
			flea.TurnRight: {3, 5, 6},
			flea.TurnLeft:  {4},
			flea.Stop:      {8},
		}),
	})

	// Same colors as the adder; color 6 turns left instead of right.
	flea.MustRegister(FastAdder, &flea.Rule{
		NumColors: 9,
		ColorMap:  adderColorMap,
		Turns: flea.Turns(9, map[flea.TurnAction][]core.Color{
			flea.Turn180:   {1, 2},
			flea.TurnRight: {3, 5},
			flea.TurnLeft:  {4, 6},
			flea.Stop:      {8},
		}),
	})
}
