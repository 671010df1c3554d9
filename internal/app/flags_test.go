package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/rules"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("fleas", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestDefaultFlags(t *testing.T) {
	assert := assert.New(t)

	simCfg, err := parse(t).SimConfig(memfs.New())
	require.NoError(t, err)
	assert.Equal(20, simCfg.Rows)
	assert.Equal(rules.Langtons, simCfg.Rule)
	assert.Equal([]int{flea.Center}, simCfg.FleaRows)
	assert.Equal([]flea.Heading{flea.Up}, simCfg.Headings)
}

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	cfg := parse(t,
		"-num_rows", "7", "-num_cols", "9",
		"-flea_name", "triangle", "-num_fleas", "3",
		"-flea_rows", "1,2", "-flea_cols", "-1",
		"-init_directions", "left,right",
		"-display_frequency", "-1", "-print_frequency", "1e3",
		"-pause",
	)
	simCfg, err := cfg.SimConfig(memfs.New())
	require.NoError(t, err)
	assert.Equal(7, simCfg.Rows)
	assert.Equal(9, simCfg.Cols)
	assert.Equal(rules.Triangle, simCfg.Rule)
	assert.Equal(3, simCfg.NumFleas)
	assert.Equal([]int{1, 2}, simCfg.FleaRows)
	assert.Equal([]int{flea.Center}, simCfg.FleaCols)
	assert.Equal([]flea.Heading{flea.Left, flea.Right}, simCfg.Headings)
	assert.True(cfg.Pause)

	display, err := Frequency(cfg.DisplayFrequency)
	require.NoError(t, err)
	assert.Equal(-1, display)
	printEvery, err := Frequency(cfg.PrintFrequency)
	require.NoError(t, err)
	assert.Equal(1000, printEvery)
}

func TestFlagErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := parse(t, "-flea_rows", "a").SimConfig(memfs.New())
	assert.Error(err)
	_, err = parse(t, "-init_directions", "north").SimConfig(memfs.New())
	assert.ErrorIs(err, flea.ErrInvalidHeading)
	_, err = parse(t, "-config", "missing.json").SimConfig(memfs.New())
	assert.Error(err)
}

func TestBoardFileOverridesFlags(t *testing.T) {
	assert := assert.New(t)

	fs := memfs.New()
	board := "square_colors: [[0, 1], [1, 0], [0, 0]]\nflea_name: 2d_visit\n"
	require.NoError(t, util.WriteFile(fs, "b.yaml", []byte(board), 0o644))

	simCfg, err := parse(t, "-num_rows", "50", "-config", "b.yaml").SimConfig(fs)
	require.NoError(t, err)
	assert.Equal(3, simCfg.Rows)
	assert.Equal(2, simCfg.Cols)
	assert.Equal(rules.TwoDimVisitor, simCfg.Rule)
	assert.Equal(core.Color(1), simCfg.Colors[1][0])
}

func TestRuleFile(t *testing.T) {
	fs := memfs.New()
	src := "name = \"flags_test_lr\"\nnum_colors = 2\ndef turn(c):\n    return \"left\" if c == 0 else \"right\"\n"
	require.NoError(t, util.WriteFile(fs, "lr.star", []byte(src), 0o644))

	simCfg, err := parse(t, "-rule_file", "lr.star").SimConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "flags_test_lr", simCfg.Rule)
}

func TestFrequency(t *testing.T) {
	assert := assert.New(t)

	for in, want := range map[string]int{"1": 1, "1e5": 100000, "2.5e1": 25, " 10 ": 10, "-1": -1} {
		got, err := Frequency(in)
		assert.NoError(err, in)
		assert.Equal(want, got, in)
	}
	for _, in := range []string{"0", "-2", "often", "0.5"} {
		_, err := Frequency(in)
		assert.Error(err, in)
	}
	_, err := Frequency("0")
	assert.ErrorIs(err, ErrFrequency)
}
