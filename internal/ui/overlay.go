//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/swansonk14/graphing-fleas/internal/render"
)

// Board is the view of a simulation the overlay annotates.
type Board interface {
	Visited(row, col int) bool
	Origin() (row, col int)
}

var gridGray = color.RGBA{R: 100, G: 100, B: 100, A: 255}

// Overlay draws grid lines, visited marks and coordinates over the board.
type Overlay struct {
	board      Board
	rows, cols int
	geom       render.CellGeometry

	showGrid    bool
	showVisited bool
	showCoords  bool
}

// NewOverlay constructs an overlay. Grid lines start on.
func NewOverlay(board Board, rows, cols int, geom render.CellGeometry, visited bool) *Overlay {
	return &Overlay{board: board, rows: rows, cols: cols, geom: geom, showGrid: true, showVisited: visited}
}

// Update toggles layers: g grid lines, v visited marks, c coordinates.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showVisited = !o.showVisited
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCoords = !o.showCoords
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showGrid {
		o.drawGrid(screen)
	}
	if !o.showVisited && !o.showCoords {
		return
	}
	originRow, originCol := o.board.Origin()
	face := basicfont.Face7x13
	for r := 0; r < o.rows; r++ {
		for c := 0; c < o.cols; c++ {
			rect := o.geom.CellRect(r, c)
			x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
			x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
			if o.showVisited && o.board.Visited(r, c) {
				vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridGray, false)
				vector.StrokeLine(screen, x1, y0, x0, y1, 1, gridGray, false)
			}
			if o.showCoords {
				label := strconv.Itoa(r-originRow) + "," + strconv.Itoa(c-originCol)
				text.Draw(screen, label, face, rect.Min.X+2, rect.Min.Y+12, gridGray)
			}
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	top := o.geom.CellRect(0, 0).Min
	bottom := o.geom.CellRect(o.rows-1, o.cols-1).Max
	for r := 0; r <= o.rows; r++ {
		y := float32(top.Y + r*o.geom.CellHeight)
		vector.StrokeLine(screen, float32(top.X), y, float32(bottom.X), y, 1, gridGray, false)
	}
	for c := 0; c <= o.cols; c++ {
		x := float32(top.X + c*o.geom.CellWidth)
		vector.StrokeLine(screen, x, float32(top.Y), x, float32(bottom.Y), 1, gridGray, false)
	}
}
