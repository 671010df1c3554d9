package flea

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

func TestRegisterAndLookup(t *testing.T) {
	assert := assert.New(t)

	r := &Rule{NumColors: 2, Turns: []TurnAction{TurnRight, TurnLeft}}
	require.NoError(t, Register("registry_test_rl", r))
	assert.Equal("registry_test_rl", r.Name)

	got, err := Lookup("registry_test_rl")
	require.NoError(t, err)
	assert.Same(r, got)
	assert.Contains(Names(), "registry_test_rl")

	err = Register("registry_test_rl", &Rule{NumColors: 2})
	assert.ErrorIs(err, ErrDuplicateRule)
}

func TestLookupUnknown(t *testing.T) {
	assert := assert.New(t)

	_, err := Lookup("registry_test_missing")
	assert.ErrorIs(err, ErrUnknownRule)
	var unknown *UnknownRuleError
	require.True(t, errors.As(err, &unknown))
	assert.Equal("registry_test_missing", unknown.Name)
}

func TestRegisterRejectsInvalid(t *testing.T) {
	assert := assert.New(t)

	assert.ErrorIs(Register("", &Rule{NumColors: 2}), ErrInvalidRule)
	assert.ErrorIs(Register("registry_test_nil", nil), ErrInvalidRule)
	assert.ErrorIs(Register("registry_test_colors", &Rule{NumColors: 0}), core.ErrColorCount)
	assert.ErrorIs(Register("registry_test_cycle", &Rule{NumColors: 3, CycleSize: 4}), core.ErrCycleSize)
	assert.ErrorIs(Register("registry_test_turns", &Rule{NumColors: 1, Turns: []TurnAction{None, None}}), ErrInvalidRule)
	assert.ErrorIs(Register("registry_test_action", &Rule{NumColors: 1, Turns: []TurnAction{Stop + 1}}), ErrInvalidTurn)
	assert.ErrorIs(Register("registry_test_map", &Rule{NumColors: 2, ColorMap: map[core.Color]core.Color{0: 2}}), core.ErrInvalidColor)

	_, err := Lookup("registry_test_colors")
	assert.ErrorIs(err, ErrUnknownRule, "rejected rules are not registered")
}

func TestRuleDecide(t *testing.T) {
	assert := assert.New(t)

	r := &Rule{NumColors: 3, Turns: []TurnAction{TurnRight}}
	assert.Equal(TurnRight, r.Decide(0))
	assert.Equal(None, r.Decide(2))
}
