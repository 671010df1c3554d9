package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridZero(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGrid(2, 3, 2, nil)
	require.NoError(t, err)
	assert.Equal([][]Color{{0, 0, 0}, {0, 0, 0}}, g.Snapshot())
	assert.Len(g.Cells(), 6)
}

func TestNewGridSeeded(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGrid(2, 2, 3, [][]Color{{0, 1}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(Color(1), g.Color(0, 1))
	assert.Equal(Color(2), g.Color(1, 0))
	assert.Equal(Cell{Row: 1, Col: 0, Color: 2}, g.Get(1, 0))
}

func TestNewGridErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewGrid(0, 3, 2, nil)
	assert.ErrorIs(err, ErrEmptyGrid)

	_, err = NewGrid(2, 2, 0, nil)
	assert.ErrorIs(err, ErrColorCount)

	_, err = NewGrid(2, 2, 2, [][]Color{{0, 0}})
	assert.ErrorIs(err, ErrDimensionMismatch)

	_, err = NewGrid(2, 2, 2, [][]Color{{0, 0}, {0}})
	var dimErr *DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(1, dimErr.GotCols)

	_, err = NewGrid(2, 2, 2, [][]Color{{0, 0}, {0, 2}})
	assert.ErrorIs(err, ErrInvalidColor)
	var cellErr *CellError
	require.True(t, errors.As(err, &cellErr))
	assert.Equal(1, cellErr.Row)
	assert.Equal(1, cellErr.Col)
}

func TestGridWrap(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGrid(3, 4, 2, nil)
	require.NoError(t, err)

	cases := []struct{ row, col, wantRow, wantCol int }{
		{0, 0, 0, 0},
		{-1, 0, 2, 0},
		{3, 4, 0, 0},
		{0, -1, 0, 3},
		{-7, 9, 2, 1},
	}
	for _, c := range cases {
		r, cc := g.Wrap(c.row, c.col)
		assert.Equal(c.wantRow, r, "%+v", c)
		assert.Equal(c.wantCol, cc, "%+v", c)
		assert.True(g.InBounds(r, cc))
	}
}

func FuzzGridWrap(f *testing.F) {
	f.Add(3, 4, -1, 5)
	f.Add(1, 1, 100, -100)
	f.Fuzz(func(t *testing.T, rows, cols, row, col int) {
		if rows <= 0 || cols <= 0 || rows > 64 || cols > 64 {
			t.Skip()
		}
		g, err := NewGrid(rows, cols, 2, nil)
		if err != nil {
			t.Fatal(err)
		}
		r, c := g.Wrap(row, col)
		if !g.InBounds(r, c) {
			t.Fatalf("Wrap(%d, %d) = (%d, %d) outside %dx%d", row, col, r, c, rows, cols)
		}
	})
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g, err := NewGrid(2, 2, 2, nil)
	require.NoError(t, err)

	panicValue := func(fn func()) (v any) {
		defer func() { v = recover() }()
		fn()
		return nil
	}
	v := panicValue(func() { g.Color(2, 0) })
	err, ok := v.(error)
	require.True(t, ok, "panic value %v is not an error", v)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	var cellErr *CellError
	require.ErrorAs(t, err, &cellErr)
	assert.Equal(t, 2, cellErr.Row)
	assert.Equal(t, 0, cellErr.Col)

	assert.Panics(t, func() { g.ApplyTransition(0, -1, TransitionTable{1, 0}) })
}

func TestGridSetColor(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGrid(2, 2, 3, nil)
	require.NoError(t, err)
	assert.NoError(g.SetColor(1, 1, 2))
	assert.Equal(Color(2), g.Color(1, 1))

	err = g.SetColor(1, 1, 3)
	assert.ErrorIs(err, ErrInvalidColor)
	assert.Equal(Color(2), g.Color(1, 1), "rejected edits leave the cell alone")
}

func TestGridApplyTransition(t *testing.T) {
	assert := assert.New(t)

	table, err := CycleTable(3, 0)
	require.NoError(t, err)
	g, err := NewGrid(1, 1, 3, nil)
	require.NoError(t, err)

	for _, want := range []Color{1, 2, 0, 1} {
		g.ApplyTransition(0, 0, table)
		assert.Equal(want, g.Color(0, 0))
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGrid(2, 2, 2, nil)
	require.NoError(t, err)
	clone := g.Clone()
	require.NoError(t, g.SetColor(0, 0, 1))
	assert.Equal(Color(0), clone.Color(0, 0))

	g.CopyFrom(clone)
	assert.Equal(Color(0), g.Color(0, 0))

	other, err := NewGrid(3, 3, 2, nil)
	require.NoError(t, err)
	assert.PanicsWithValue(ErrDimensionMismatch, func() { g.CopyFrom(other) })
}
