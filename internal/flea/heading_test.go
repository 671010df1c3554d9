package flea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var compass = []Heading{Up, Right, Down, Left}

func TestHeadingTurnsAreInverse(t *testing.T) {
	assert := assert.New(t)

	for _, h := range compass {
		assert.Equal(h, h.Left().Right(), "%v", h)
		assert.Equal(h, h.Right().Left(), "%v", h)
		assert.Equal(h.Reverse(), h.Right().Right(), "%v", h)
		assert.Equal(h.Reverse(), h.Left().Left(), "%v", h)
		assert.Equal(h, h.Reverse().Reverse(), "%v", h)
	}
}

func TestHeadingClockwise(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Right, Up.Right())
	assert.Equal(Down, Right.Right())
	assert.Equal(Left, Down.Right())
	assert.Equal(Up, Left.Right())
	assert.Equal(Left, Up.Left())
}

func TestHeadingHaltedIsTerminal(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Halted, Halted.Left())
	assert.Equal(Halted, Halted.Right())
	assert.Equal(Halted, Halted.Reverse())
	dr, dc := Halted.Delta()
	assert.Zero(dr)
	assert.Zero(dc)
}

func TestHeadingDelta(t *testing.T) {
	assert := assert.New(t)

	want := map[Heading][2]int{
		Up:    {-1, 0},
		Right: {0, 1},
		Down:  {1, 0},
		Left:  {0, -1},
	}
	for h, d := range want {
		dr, dc := h.Delta()
		assert.Equal(d, [2]int{dr, dc}, "%v", h)
	}
}

func TestParseHeading(t *testing.T) {
	assert := assert.New(t)

	for _, h := range compass {
		got, err := ParseHeading(h.String())
		assert.NoError(err)
		assert.Equal(h, got)
	}
	got, err := ParseHeading(" Left ")
	assert.NoError(err)
	assert.Equal(Left, got)

	_, err = ParseHeading("halted")
	assert.ErrorIs(err, ErrInvalidHeading)
	_, err = ParseHeading("north")
	assert.ErrorIs(err, ErrInvalidHeading)
}
