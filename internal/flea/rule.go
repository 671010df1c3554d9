package flea

import "github.com/swansonk14/graphing-fleas/internal/core"

// Rule binds a color domain to turn decisions and a color transition table.
// Rules carry no per-agent state, so one Rule may drive any number of agents.
type Rule struct {
	Name      string
	NumColors int
	// CycleSize is how many trailing colors the default table loops over.
	// Zero loops over every color. Ignored when ColorMap is set.
	CycleSize int
	// ColorMap overrides the default cycle; unmapped colors keep their color.
	ColorMap map[core.Color]core.Color
	// Turns is indexed by color. Colors past its end go straight.
	Turns []TurnAction
	// StartTurn is applied once to every new agent.
	StartTurn TurnAction
}

// Decide returns the turn for an agent standing on color c.
func (r *Rule) Decide(c core.Color) TurnAction {
	if int(c) < len(r.Turns) {
		return r.Turns[c]
	}
	return None
}

// Table builds the rule's transition table.
func (r *Rule) Table() (core.TransitionTable, error) {
	if r.ColorMap != nil {
		return core.OverrideTable(r.NumColors, r.ColorMap)
	}
	return core.CycleTable(r.NumColors, r.CycleSize)
}

// Validate checks that the rule describes a total automaton.
func (r *Rule) Validate() error {
	table, err := r.Table()
	if err != nil {
		return &RuleError{Name: r.Name, Err: err}
	}
	if err := table.Validate(r.NumColors); err != nil {
		return &RuleError{Name: r.Name, Err: err}
	}
	if len(r.Turns) > r.NumColors {
		return &RuleError{Name: r.Name, Err: ErrInvalidRule}
	}
	for _, t := range append([]TurnAction{r.StartTurn}, r.Turns...) {
		if t > Stop {
			return &RuleError{Name: r.Name, Err: &TurnError{Name: t.String()}}
		}
	}
	return nil
}
