package ui

import (
	"image"
	"strings"

	"github.com/swansonk14/graphing-fleas/internal/core"
)

const (
	barPadding   = 6
	rowHeight    = 20
	buttonSize   = 16
	buttonGap    = 4
	charWidth    = 7
	valueChars   = 5
	controlGap   = 14
	textBaseline = 14
)

// ControlLayout places one adjustable control in the HUD bar.
type ControlLayout struct {
	Label     image.Point
	Value     image.Point
	MinusRect image.Rectangle
	PlusRect  image.Rectangle
}

// LayoutControls lays controls out left to right on the second bar row.
func LayoutControls(controls []core.ParameterControl) []ControlLayout {
	out := make([]ControlLayout, len(controls))
	x := barPadding
	top := rowHeight
	buttonY := top + (rowHeight-buttonSize)/2
	for i, ctrl := range controls {
		l := &out[i]
		l.Label = image.Pt(x, top+textBaseline)
		x += len(ctrl.Label)*charWidth + buttonGap
		l.Value = image.Pt(x, top+textBaseline)
		x += valueChars*charWidth + buttonGap
		l.MinusRect = image.Rect(x, buttonY, x+buttonSize, buttonY+buttonSize)
		x += buttonSize + buttonGap
		l.PlusRect = image.Rect(x, buttonY, x+buttonSize, buttonY+buttonSize)
		x += buttonSize + controlGap
	}
	return out
}

// Summary describes the species and flea counts in a snapshot.
func Summary(snap core.ParameterSnapshot) string {
	var parts []string
	if p, ok := snap.Lookup("rule"); ok {
		parts = append(parts, p.Value)
	}
	if p, ok := snap.Lookup("fleas"); ok {
		parts = append(parts, "fleas "+p.Value)
	}
	if p, ok := snap.Lookup("halted"); ok {
		parts = append(parts, "halted "+p.Value)
	}
	return strings.Join(parts, "  ")
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
