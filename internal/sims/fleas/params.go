package fleas

import (
	"strconv"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

// Parameters publishes the run's setup and progress for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	halted := 0
	for _, a := range s.fleas {
		if a.Halted() {
			halted++
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("rows", "Rows", s.grid.Rows),
				intParam("cols", "Columns", s.grid.Cols),
				intParam("colors", "Colors", s.rule.NumColors),
			},
		},
		{
			Name: "Fleas",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: s.rule.Name},
				intParam("fleas", "Fleas", len(s.fleas)),
				intParam("halted", "Halted", halted),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("step", "Step", s.steps),
				{Key: "all_halted", Label: "Done", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.AllHalted())},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
