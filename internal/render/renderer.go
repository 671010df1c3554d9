//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

// GridPainter keeps one pixel per cell in an image and scales it to the
// cell geometry when drawing.
type GridPainter struct {
	rows, cols int
	geom       CellGeometry
	palette    []color.RGBA
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int, geom CellGeometry, palette []color.RGBA) *GridPainter {
	return &GridPainter{
		rows:    rows,
		cols:    cols,
		geom:    geom,
		palette: palette,
		img:     ebiten.NewImage(cols, rows),
		buf:     make([]byte, 4*rows*cols),
	}
}

// Blit uploads cells and flea markers and draws them onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Color, fleas []Marker) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	markFleas(gp.buf, gp.cols, fleas)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.geom.CellWidth), float64(gp.geom.CellHeight))
	op.GeoM.Translate(float64(gp.geom.MarginSide), float64(gp.geom.MarginTop))
	dst.DrawImage(gp.img, op)
}

// Geometry returns the cell geometry used for drawing.
func (gp *GridPainter) Geometry() CellGeometry { return gp.geom }
