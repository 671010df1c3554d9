package flea

import "strings"

// Heading is the compass direction an agent faces, or Halted.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
	// Halted freezes an agent for the rest of the run.
	Halted
)

var headingNames = [...]string{"up", "right", "down", "left", "halted"}

// unit vectors as (row, col) offsets, indexed by heading
var headingDeltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return f("heading(%d)", uint8(h))
}

// ParseHeading accepts the lower-case compass names.
func ParseHeading(s string) (Heading, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range headingNames[:Halted] {
		if s == name {
			return Heading(i), nil
		}
	}
	return Up, &HeadingError{Name: s}
}

// HeadingError names a heading that could not be parsed.
type HeadingError struct {
	Name string
}

func (err *HeadingError) Error() string {
	return f("%v %q", ErrInvalidHeading, err.Name)
}

func (err *HeadingError) Unwrap() error {
	return ErrInvalidHeading
}

// Right rotates 90 degrees clockwise. Halted stays halted.
func (h Heading) Right() Heading {
	if h >= Halted {
		return h
	}
	return (h + 1) % 4
}

// Left rotates 90 degrees counterclockwise. Halted stays halted.
func (h Heading) Left() Heading {
	if h >= Halted {
		return h
	}
	return (h + 3) % 4
}

// Reverse is two right turns.
func (h Heading) Reverse() Heading {
	return h.Right().Right()
}

// Delta returns the unit (row, col) step for h; Halted does not move.
func (h Heading) Delta() (int, int) {
	if h >= Halted {
		return 0, 0
	}
	d := headingDeltas[h]
	return d[0], d[1]
}
