package render

import "image"

// CellGeometry maps grid cells to window pixels. The grid sits below a
// MarginTop band (used by the HUD) with MarginSide pixels on either side.
type CellGeometry struct {
	CellWidth, CellHeight int
	MarginTop, MarginSide int
}

// DefaultGeometry returns square 20 pixel cells with room for the HUD.
func DefaultGeometry() CellGeometry {
	return CellGeometry{CellWidth: 20, CellHeight: 20, MarginTop: 40, MarginSide: 0}
}

// WindowSize returns the window needed to show a rows x cols grid.
func (g CellGeometry) WindowSize(rows, cols int) (int, int) {
	return cols*g.CellWidth + 2*g.MarginSide, rows*g.CellHeight + g.MarginTop
}

// CellRect returns the pixel rectangle covered by (row, col).
func (g CellGeometry) CellRect(row, col int) image.Rectangle {
	x := g.MarginSide + col*g.CellWidth
	y := g.MarginTop + row*g.CellHeight
	return image.Rect(x, y, x+g.CellWidth, y+g.CellHeight)
}

// CellAt returns the cell under pixel (x, y). ok is false outside the grid.
func (g CellGeometry) CellAt(x, y, rows, cols int) (row, col int, ok bool) {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return 0, 0, false
	}
	x -= g.MarginSide
	y -= g.MarginTop
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/g.CellHeight, x/g.CellWidth
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}
