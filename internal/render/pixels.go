package render

import (
	"image/color"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

// fillPaletteRGBA converts cell colors into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []core.Color, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		setPixel(buf, i, palette[idx])
	}
}

// markFleas paints the cell of every flea with a marker color, halted fleas
// in a dimmer one.
func markFleas(buf []byte, cols int, fleas []Marker) {
	for _, m := range fleas {
		col := FleaColor
		if m.Halted {
			col = HaltedColor
		}
		setPixel(buf, m.Row*cols+m.Col, col)
	}
}

func setPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// Marker is the position of one flea as the renderer sees it.
type Marker struct {
	Row, Col int
	Halted   bool
}

// Frame renders cells and markers into a fresh RGBA buffer, one pixel per
// cell.
func Frame(cells []core.Color, cols int, palette []color.RGBA, fleas []Marker) []byte {
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	markFleas(buf, cols, fleas)
	return buf
}
