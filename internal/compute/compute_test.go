package compute

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
)

const limit = 10_000

func TestBitFlipLayout(t *testing.T) {
	assert := assert.New(t)

	layout, err := BitFlip("11")
	require.NoError(t, err)
	assert.Equal([][]core.Color{
		{4, 3, 3, 1},
		{4, 1, 1, 0},
		{4, 2, 2, 0},
	}, layout.Config.Colors)
	assert.Equal([]int{0}, layout.Config.FleaRows)
	assert.Equal([]int{3}, layout.Config.FleaCols)
	assert.Equal([]flea.Heading{flea.Left}, layout.Config.Headings)
}

func TestBitFlipEleven(t *testing.T) {
	assert := assert.New(t)

	layout, err := BitFlip("11")
	require.NoError(t, err)
	sim, err := layout.New()
	require.NoError(t, err)

	steps, err := Run(sim, limit)
	require.NoError(t, err)
	assert.True(sim.AllHalted())
	assert.Equal(8, steps)

	bits, err := layout.Read(sim)
	require.NoError(t, err)
	assert.Equal("00", bits)

	a := sim.Fleas()[0]
	assert.Equal(core.Color(4), sim.CellColor(a.Row, a.Col))
}

func TestTwosComplementOneZeroOne(t *testing.T) {
	res, err := mustLayout(t, TwosComplement, "101").Evaluate(limit)
	require.NoError(t, err)
	assert.Equal(t, "011", res.Bits)
	assert.Equal(t, 17, res.Steps)
}

func mustLayout(t *testing.T, build func(string) (*Layout, error), bits string) *Layout {
	t.Helper()
	layout, err := build(bits)
	require.NoError(t, err)
	return layout
}

func allInputs(width int) []string {
	out := make([]string, 0, 1<<width)
	for v := 0; v < 1<<width; v++ {
		out = append(out, fmt.Sprintf("%0*b", width, v))
	}
	return out
}

func TestLayoutsComputeExhaustively(t *testing.T) {
	ops := map[string]struct {
		build func(string) (*Layout, error)
		want  func(v, mask uint64) uint64
	}{
		TypeBitFlip:        {BitFlip, func(v, mask uint64) uint64 { return ^v & mask }},
		TypeAddOne:         {AddOne, func(v, mask uint64) uint64 { return (v + 1) & mask }},
		TypeTwosComplement: {TwosComplement, func(v, mask uint64) uint64 { return -v & mask }},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for width := 1; width <= 6; width++ {
				mask := uint64(1)<<width - 1
				for _, in := range allInputs(width) {
					res, err := mustLayout(t, op.build, in).Evaluate(limit)
					require.NoError(t, err, in)
					v, err := strconv.ParseUint(in, 2, 64)
					require.NoError(t, err)
					want := fmt.Sprintf("%0*b", width, op.want(v, mask))
					assert.Equal(t, want, res.Bits, "%s(%s)", name, in)
				}
			}
		})
	}
}

func TestStepCounts(t *testing.T) {
	cases := []struct {
		kind, bits string
		steps      int
	}{
		{TypeBitFlip, "1011", 14},
		{TypeBitFlip, "0", 5},
		{TypeAddOne, "10", 4},
		{TypeAddOne, "111", 11},
		{TypeTwosComplement, "10", 15},
		{TypeTwosComplement, "1", 11},
		{TypeTwosComplement, "0", 16},
	}
	for _, c := range cases {
		steps, err := CountSteps(c.kind, c.bits, limit)
		require.NoError(t, err)
		assert.Equal(t, c.steps, steps, "%s(%s)", c.kind, c.bits)
	}
}

func TestBitFlipIsLinear(t *testing.T) {
	for n := 1; n <= 16; n++ {
		steps, err := CountSteps(TypeBitFlip, fmt.Sprintf("%0*d", n, 0), 10*limit)
		require.NoError(t, err)
		assert.Equal(t, 3*n+2, steps, "width %d", n)
	}
}

func TestRunStepLimit(t *testing.T) {
	assert := assert.New(t)

	layout, err := BitFlip("1111")
	require.NoError(t, err)
	sim, err := layout.New()
	require.NoError(t, err)

	steps, err := Run(sim, 3)
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(3, steps)

	steps, err = Run(sim, limit)
	assert.NoError(err)
	assert.Equal(14-3, steps, "Run counts from where it started")
}

func TestReadUndecodable(t *testing.T) {
	layout, err := TwosComplement("0")
	require.NoError(t, err)
	sim, err := layout.New()
	require.NoError(t, err)

	_, err = layout.Read(sim)
	assert.ErrorIs(t, err, ErrDecode, "an untouched 0 digit has no two's complement reading")
}

func TestBadInput(t *testing.T) {
	assert := assert.New(t)

	for _, build := range []func(string) (*Layout, error){BitFlip, AddOne, TwosComplement} {
		_, err := build("")
		assert.ErrorIs(err, ErrInput)
		_, err = build("102")
		assert.ErrorIs(err, ErrInput)
	}
}

func TestForType(t *testing.T) {
	assert := assert.New(t)

	layout, err := ForType(TypeAddOne, "01")
	require.NoError(t, err)
	assert.Equal("add_one", layout.Config.Rule)

	_, err = ForType(TypeAdd, "01")
	assert.ErrorIs(err, ErrNoLayout)
	var typeErr *TypeError
	assert.ErrorAs(err, &typeErr)
	assert.Equal(TypeAdd, typeErr.Type)
}

func TestParseInput(t *testing.T) {
	cases := []struct {
		in          string
		base, width int
		want        string
	}{
		{"0101", 2, 0, "0101"},
		{"5", 10, 0, "101"},
		{"5", 10, 6, "000101"},
		{"ff", 16, 0, "11111111"},
		{" 3 ", 10, 0, "11"},
		{"0", 10, 0, "0"},
	}
	for _, c := range cases {
		got, err := ParseInput(c.in, c.base, c.width)
		require.NoError(t, err, "%+v", c)
		assert.Equal(t, c.want, got, "%+v", c)
	}

	wide := strings.Repeat("10", 40)
	got, err := ParseInput(wide, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, wide, got)
	layout, err := BitFlip(wide)
	require.NoError(t, err)
	res, err := layout.Evaluate(limit)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("01", 40), res.Bits)

	_, err = ParseInput("12", 2, 0)
	assert.ErrorIs(t, err, ErrInput)
	_, err = ParseInput("", 2, 0)
	assert.ErrorIs(t, err, ErrInput)
	_, err = ParseInput("-3", 10, 0)
	assert.Error(t, err)
}
