// Package compute seeds boards that make the arithmetic fleas calculate.
//
// Every layout is three rows tall. Digits sit in the middle row, most
// significant bit in column 1, and the flea starts in the top right corner
// facing left. It zigzags through the digit columns, turning on the path
// cells above and below them:
//
//	bit flip / add one of "11"     two's complement of "101"
//	4 3 3 F                        4 4 4 4 F
//	4 1 1 0                        7 1 0 1 0
//	4 2 2 0                        3 3 3 3 0
//
// Only the digits are meaningful afterwards; Layout.Read decodes them.
package compute

import (
	"errors"
	"strconv"
	"strings"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/rules"
	"github.com/swansonk14/graphing-fleas/internal/sims/fleas"
	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

var (
	// ErrInput reports an operand that is not a non-empty bit string.
	ErrInput = errors.New(f("input must be a non-empty string of 0s and 1s"))
	// ErrDecode reports a digit cell holding a color with no digit meaning.
	ErrDecode = errors.New(f("digit cell holds an undecodable color"))
	// ErrStepLimit reports a run that did not halt within its step budget.
	ErrStepLimit = errors.New(f("step limit reached before the fleas halted"))
	// ErrNoLayout reports a compute type without a seeded layout.
	ErrNoLayout = errors.New(f("no layout for compute type"))
)

// Compute types accepted by ForType.
const (
	TypeBitFlip        = "bit_flip"
	TypeAddOne         = "add_one"
	TypeTwosComplement = "twos_complement"
	TypeAdd            = "add"
)

// Types lists the compute types in the order the CLI reports them.
var Types = []string{TypeBitFlip, TypeAddOne, TypeTwosComplement, TypeAdd}

// Position is a (row, col) grid coordinate.
type Position struct {
	Row, Col int
}

// Layout is a seeded board plus where and how to read the answer.
type Layout struct {
	Config fleas.Config
	// Digits lists the digit cells, most significant first.
	Digits []Position
	// Decode maps final digit colors to '0' or '1'.
	Decode map[core.Color]byte
}

// ForType builds the layout for one of the single-operand compute types.
func ForType(kind, bits string) (*Layout, error) {
	switch kind {
	case TypeBitFlip:
		return BitFlip(bits)
	case TypeAddOne:
		return AddOne(bits)
	case TypeTwosComplement:
		return TwosComplement(bits)
	}
	return nil, &TypeError{Type: kind}
}

// TypeError names a compute type without a layout.
type TypeError struct {
	Type string
}

func (err *TypeError) Error() string {
	return f("%v %q, layouts exist for %v", ErrNoLayout, err.Type, Types[:3])
}

func (err *TypeError) Unwrap() error {
	return ErrNoLayout
}

// BitFlip seeds a bit_flipper board that inverts bits.
func BitFlip(bits string) (*Layout, error) {
	return zigzag(rules.BitFlipper, bits)
}

// AddOne seeds an add_one board that increments bits modulo 2^len(bits).
func AddOne(bits string) (*Layout, error) {
	return zigzag(rules.AddOne, bits)
}

// zigzag lays out the five-color board shared by bit_flipper and add_one.
// Top path cells (3) turn the flea left, bottom ones (2) right, and column
// 0 (4) stops it. The start cell is 1 so that neither species turns there.
func zigzag(rule, bits string) (*Layout, error) {
	digits, err := parseBits(bits)
	if err != nil {
		return nil, err
	}
	n := len(digits)
	colors := board(n+2, func(row, col int) core.Color {
		switch {
		case col == 0:
			return 4
		case col == n+1:
			if row == 0 {
				return 1
			}
			return 0
		case row == 0:
			return 3
		case row == 1:
			return digits[col-1]
		default:
			return 2
		}
	})
	return newLayout(rule, colors, n, map[core.Color]byte{0: '0', 1: '1'}), nil
}

// TwosComplement seeds a twos_complement board. The flea flips every digit
// on a first pass, wraps around the torus and walks the same path again
// adding one. The first pass recolors path cells 3/4 to 5/6, the second to
// the stop color 8, so a carry absorbed by a digit bounces the flea onto a
// spent cell and halts it. Afterwards digit color 1 reads as 1, 2 as 0.
func TwosComplement(bits string) (*Layout, error) {
	digits, err := parseBits(bits)
	if err != nil {
		return nil, err
	}
	n := len(digits)
	odd := n%2 == 1
	colors := board(n+2, func(row, col int) core.Color {
		switch {
		case col == n+1:
			if row == 0 {
				return 7
			}
			return 0
		case col == 0:
			// After an odd number of columns the flea leaves on the bottom
			// row and must climb back to the top before wrapping.
			switch {
			case !odd && row == 0:
				return 7
			case !odd:
				return 0
			case row == 0:
				return 4
			case row == 1:
				return 7
			default:
				return 3
			}
		case row == 0:
			return 4
		case row == 1:
			return digits[col-1]
		default:
			return 3
		}
	})
	return newLayout(rules.TwosComplement, colors, n, map[core.Color]byte{1: '1', 2: '0'}), nil
}

func board(cols int, color func(row, col int) core.Color) [][]core.Color {
	out := make([][]core.Color, 3)
	for r := range out {
		out[r] = make([]core.Color, cols)
		for c := range out[r] {
			out[r][c] = color(r, c)
		}
	}
	return out
}

func newLayout(rule string, colors [][]core.Color, n int, decode map[core.Color]byte) *Layout {
	cfg := fleas.DefaultConfig()
	cfg.Rows = len(colors)
	cfg.Cols = len(colors[0])
	cfg.Rule = rule
	cfg.NumFleas = 1
	cfg.FleaRows = []int{0}
	cfg.FleaCols = []int{n + 1}
	cfg.Headings = []flea.Heading{flea.Left}
	cfg.Colors = colors

	digits := make([]Position, n)
	for i := range digits {
		digits[i] = Position{Row: 1, Col: i + 1}
	}
	return &Layout{Config: cfg, Digits: digits, Decode: decode}
}

func parseBits(bits string) ([]core.Color, error) {
	if bits == "" {
		return nil, ErrInput
	}
	out := make([]core.Color, len(bits))
	for i, ch := range bits {
		switch ch {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, ErrInput
		}
	}
	return out, nil
}

// New builds the simulation for the layout.
func (l *Layout) New() (*fleas.Simulation, error) {
	return fleas.New(l.Config)
}

// Read decodes the digit row of sim, most significant bit first.
func (l *Layout) Read(sim *fleas.Simulation) (string, error) {
	var sb strings.Builder
	for _, p := range l.Digits {
		c := sim.CellColor(p.Row, p.Col)
		digit, ok := l.Decode[c]
		if !ok {
			return "", &core.CellError{Row: p.Row, Col: p.Col, Err: ErrDecode}
		}
		sb.WriteByte(digit)
	}
	return sb.String(), nil
}

// Run steps sim until every flea halts, returning the number of steps taken.
func Run(sim *fleas.Simulation, limit int) (int, error) {
	start := sim.Steps()
	for !sim.AllHalted() {
		if sim.Steps()-start >= limit {
			return sim.Steps() - start, ErrStepLimit
		}
		sim.Step()
	}
	return sim.Steps() - start, nil
}

// Result is the outcome of running a layout to completion.
type Result struct {
	Bits  string
	Steps int
}

// Evaluate builds, runs and reads a layout.
func (l *Layout) Evaluate(limit int) (Result, error) {
	sim, err := l.New()
	if err != nil {
		return Result{}, err
	}
	steps, err := Run(sim, limit)
	if err != nil {
		return Result{Steps: steps}, err
	}
	bits, err := l.Read(sim)
	return Result{Bits: bits, Steps: steps}, err
}

// CountSteps reports how many steps the layout for kind takes on bits.
func CountSteps(kind, bits string, limit int) (int, error) {
	layout, err := ForType(kind, bits)
	if err != nil {
		return 0, err
	}
	res, err := layout.Evaluate(limit)
	return res.Steps, err
}

// ParseInput converts a number written in base into a bit string. Base 2
// input keeps its leading zeros and has no width limit; width > 0 left-pads
// the result.
func ParseInput(s string, base, width int) (string, error) {
	s = strings.TrimSpace(s)
	var bits string
	if base == 2 {
		if _, err := parseBits(s); err != nil {
			return "", err
		}
		bits = s
	} else {
		v, err := strconv.ParseUint(s, base, 64)
		if err != nil {
			return "", err
		}
		bits = strconv.FormatUint(v, 2)
	}
	if len(bits) < width {
		bits = strings.Repeat("0", width-len(bits)) + bits
	}
	return bits, nil
}
