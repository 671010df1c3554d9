package render

import (
	"image/color"

	"github.com/hsluv/hsluv-go"
)

var (
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Palette returns one color per cell color: 0 is white, 1 is black and the
// rest are spread evenly around the HSLuv hue circle.
func Palette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	out[0] = White
	if n > 1 {
		out[1] = Black
	}
	extra := n - 2
	for i := 0; i < extra; i++ {
		out[i+2] = newHueFractionColor(i, extra)
	}
	return out
}

func newHueFractionColor(over, under int) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(
		360*float64(over)/float64(under),
		100,
		55,
	)
	return color.RGBA{
		uint8(r * 0xff),
		uint8(g * 0xff),
		uint8(b * 0xff),
		0xff,
	}
}

// FleaColor is the marker drawn over cells that hold a flea.
var FleaColor = color.RGBA{0xe0, 0x30, 0x30, 0xff}

// HaltedColor marks fleas that have stopped.
var HaltedColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
