package flea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

func testRule() *Rule {
	return &Rule{
		Name:      "test",
		NumColors: 3,
		Turns:     []TurnAction{TurnRight, TurnLeft, Stop},
	}
}

func TestAgentMoveWraps(t *testing.T) {
	assert := assert.New(t)

	g, err := core.NewGrid(3, 4, 3, nil)
	require.NoError(t, err)

	cases := []struct {
		row, col int
		heading  Heading
		wantRow  int
		wantCol  int
	}{
		{0, 0, Up, 2, 0},
		{2, 1, Down, 0, 1},
		{1, 0, Left, 1, 3},
		{1, 3, Right, 1, 0},
		{1, 1, Up, 0, 1},
	}
	for _, c := range cases {
		a := &Agent{Row: c.row, Col: c.col, Heading: c.heading, Rule: testRule()}
		assert.NotPanics(func() { a.Move(g) })
		assert.Equal(c.wantRow, a.Row, "%+v", c)
		assert.Equal(c.wantCol, a.Col, "%+v", c)
	}
}

func TestAgentRotate(t *testing.T) {
	assert := assert.New(t)

	g, err := core.NewGrid(1, 3, 3, [][]core.Color{{0, 1, 2}})
	require.NoError(t, err)

	a := &Agent{Row: 0, Col: 0, Heading: Up, Rule: testRule()}
	a.Rotate(g)
	assert.Equal(Right, a.Heading)

	a.Col = 1
	a.Rotate(g)
	assert.Equal(Up, a.Heading)

	a.Col = 2
	a.Rotate(g)
	assert.True(a.Halted())
}

func TestHaltedAgentIsTerminal(t *testing.T) {
	assert := assert.New(t)

	g, err := core.NewGrid(2, 2, 3, nil)
	require.NoError(t, err)

	a := &Agent{Row: 1, Col: 1, Heading: Up, Rule: testRule()}
	a.Stop()
	for i := 0; i < 5; i++ {
		a.Rotate(g)
		a.Apply(TurnRight)
		a.Move(g)
	}
	assert.True(a.Halted())
	assert.Equal(1, a.Row)
	assert.Equal(1, a.Col)
}

func TestNewAgentStartTurn(t *testing.T) {
	r := testRule()
	r.StartTurn = TurnRight
	a := NewAgent(r, 0, 0, Up)
	assert.Equal(t, Right, a.Heading)
}

func TestAgentTurn180(t *testing.T) {
	a := &Agent{Heading: Left, Rule: testRule()}
	a.Turn180()
	assert.Equal(t, Right, a.Heading)
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	cases := []struct{ req, dim, want int }{
		{Center, 5, 2},
		{Center, 4, 2},
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 4},
		{-5, 5, 0},
	}
	for _, c := range cases {
		got, err := Resolve(c.req, c.dim)
		assert.NoError(err, "%+v", c)
		assert.Equal(c.want, got, "%+v", c)
	}

	for _, req := range []int{5, -6, 100} {
		_, err := Resolve(req, 5)
		assert.ErrorIs(err, ErrPosition, "%d", req)
	}
}
