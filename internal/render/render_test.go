package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

func TestPalette(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Palette(0))
	assert.Equal(White, Palette(1)[0])

	p := Palette(9)
	assert.Len(p, 9)
	assert.Equal(White, p[0])
	assert.Equal(Black, p[1])
	seen := map[[3]uint8]bool{}
	for _, c := range p {
		assert.Equal(uint8(0xff), c.A)
		key := [3]uint8{c.R, c.G, c.B}
		assert.False(seen[key], "duplicate color %v", c)
		seen[key] = true
	}
}

func TestCellGeometry(t *testing.T) {
	assert := assert.New(t)

	g := CellGeometry{CellWidth: 10, CellHeight: 8, MarginTop: 40, MarginSide: 5}
	w, h := g.WindowSize(3, 4)
	assert.Equal(50, w)
	assert.Equal(64, h)

	assert.Equal(image.Rect(25, 56, 35, 64), g.CellRect(2, 2))

	row, col, ok := g.CellAt(25, 56, 3, 4)
	assert.True(ok)
	assert.Equal(2, row)
	assert.Equal(2, col)

	row, col, ok = g.CellAt(44, 47, 3, 4)
	assert.True(ok)
	assert.Equal(0, row)
	assert.Equal(3, col)

	_, _, ok = g.CellAt(10, 10, 3, 4)
	assert.False(ok, "inside the top margin")
	_, _, ok = g.CellAt(46, 50, 3, 4)
	assert.False(ok, "past the last column")
	_, _, ok = g.CellAt(2, 50, 3, 4)
	assert.False(ok, "inside the side margin")
}

func TestCellAtRoundTrip(t *testing.T) {
	g := DefaultGeometry()
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			rect := g.CellRect(r, c)
			for _, p := range []image.Point{rect.Min, rect.Max.Sub(image.Pt(1, 1))} {
				row, col, ok := g.CellAt(p.X, p.Y, 4, 5)
				assert.True(t, ok)
				assert.Equal(t, [2]int{r, c}, [2]int{row, col})
			}
		}
	}
}

func TestFrame(t *testing.T) {
	assert := assert.New(t)

	palette := Palette(3)
	cells := []core.Color{0, 1, 2, 7}
	buf := Frame(cells, 2, palette, []Marker{{Row: 1, Col: 1}, {Row: 0, Col: 0, Halted: true}})
	assert.Len(buf, 16)

	px := func(i int) [4]uint8 { return [4]uint8{buf[4*i], buf[4*i+1], buf[4*i+2], buf[4*i+3]} }
	rgba := func(c interface{ RGBA() (r, g, b, a uint32) }) [4]uint8 {
		r, g, b, a := c.RGBA()
		return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	assert.Equal(rgba(HaltedColor), px(0))
	assert.Equal(rgba(Black), px(1))
	assert.Equal(rgba(palette[2]), px(2))
	assert.Equal(rgba(FleaColor), px(3), "markers cover out of palette colors too")

	assert.Equal(make([]byte, 8), Frame([]core.Color{1, 1}, 2, nil, nil))
}
