//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

// Source is what the HUD reads: a snapshot plus a banner line.
type Source interface {
	core.ParameterProvider
	Message() string
}

// HUD renders the status bar above the grid.
type HUD struct {
	src      Source
	width    int
	height   int
	bar      *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls  []core.ParameterControl
	layout    []ControlLayout
	values    []int
	hasValue  []bool
	intSetter core.IntParameterSetter
}

// NewHUD constructs a HUD bar of the given size.
func NewHUD(src Source, width, height int) *HUD {
	h := &HUD{src: src, width: width, height: height}
	if width <= 0 || height <= 0 {
		return h
	}
	h.bar = ebiten.NewImage(width, height)
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
		h.layout = LayoutControls(h.controls)
		h.values = make([]int, len(h.controls))
		h.hasValue = make([]bool, len(h.controls))
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Update refreshes the snapshot and handles clicks on the +/- buttons. It
// reports whether the click landed inside the bar.
func (h *HUD) Update() bool {
	if h == nil || h.bar == nil {
		return false
	}
	h.snapshot = h.src.Parameters()
	for i, ctrl := range h.controls {
		p, ok := h.snapshot.Lookup(ctrl.Key)
		h.hasValue[i] = false
		if !ok {
			continue
		}
		if v, err := strconv.Atoi(p.Value); err == nil {
			h.values[i] = v
			h.hasValue[i] = true
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if my < 0 || my >= h.height {
		return false
	}
	for i, l := range h.layout {
		if !h.hasValue[i] {
			continue
		}
		switch {
		case pointInRect(mx, my, l.MinusRect):
			h.adjust(i, -1)
		case pointInRect(mx, my, l.PlusRect):
			h.adjust(i, 1)
		}
	}
	return true
}

func (h *HUD) adjust(i, direction int) {
	if h.intSetter == nil {
		return
	}
	ctrl := h.controls[i]
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := ctrl.Clamp(h.values[i] + direction*step)
	if target == h.values[i] {
		return
	}
	if h.intSetter.SetIntParameter(ctrl.Key, target) {
		h.values[i] = target
	}
}

// Draw paints the bar at the top of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.bar == nil {
		return
	}
	h.bar.Fill(color.Black)
	face := basicfont.Face7x13
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	text.Draw(h.bar, h.src.Message(), face, barPadding, textBaseline, fg)
	summary := Summary(h.snapshot)
	sw := text.BoundString(face, summary).Dx()
	text.Draw(h.bar, summary, face, h.width-barPadding-sw, textBaseline, dim)

	for i, ctrl := range h.controls {
		l := h.layout[i]
		text.Draw(h.bar, ctrl.Label, face, l.Label.X, l.Label.Y, dim)
		value := "--"
		if h.hasValue[i] {
			value = strconv.Itoa(h.values[i])
		}
		text.Draw(h.bar, value, face, l.Value.X, l.Value.Y, fg)
		h.drawButton(l.MinusRect, "-", h.hasValue[i] && h.values[i] > ctrl.Min)
		h.drawButton(l.PlusRect, "+", h.hasValue[i] && (ctrl.Max <= ctrl.Min || h.values[i] < ctrl.Max))
	}
	screen.DrawImage(h.bar, nil)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.bar.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.bar, label, face, x, y, fg)
}
