package core

import (
	"errors"

	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

var (
	// ErrDimensionMismatch reports seed colors whose shape differs from the grid.
	ErrDimensionMismatch = errors.New(f("dimension mismatch"))
	// ErrInvalidColor reports a color outside [0, num_colors).
	ErrInvalidColor = errors.New(f("invalid color"))
	// ErrIndexOutOfBounds is raised (as a panic value) when a caller skips wrapping.
	ErrIndexOutOfBounds = errors.New(f("index out of bounds"))
	// ErrColorCount reports a color domain that is empty or too large.
	ErrColorCount = errors.New(f("color count out of range"))
	// ErrCycleSize reports a cycle size outside [1, num_colors].
	ErrCycleSize = errors.New(f("cycle size out of range"))
	// ErrEmptyGrid reports a grid with no rows or no columns.
	ErrEmptyGrid = errors.New(f("grid needs at least one row and one column"))
)

// DimensionError describes a seed grid that does not match the declared size.
type DimensionError struct {
	Rows, Cols       int
	GotRows, GotCols int
}

func (err *DimensionError) Error() string {
	return f("%v: want %dx%d, got %dx%d", ErrDimensionMismatch, err.Rows, err.Cols, err.GotRows, err.GotCols)
}

func (err *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// ColorError describes a color that falls outside its domain.
type ColorError struct {
	Color     int
	NumColors int
}

func (err *ColorError) Error() string {
	return f("%v %d, domain is [0, %d)", ErrInvalidColor, err.Color, err.NumColors)
}

func (err *ColorError) Unwrap() error {
	return ErrInvalidColor
}

// CellError attaches a grid position to an error.
type CellError struct {
	Row, Col int
	Err      error
}

func (err *CellError) Error() string {
	return f("cell (%d,%d) %v", err.Row, err.Col, err.Err)
}

func (err *CellError) Unwrap() error {
	return err.Err
}
