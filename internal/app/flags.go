package app

import (
	"errors"
	"flag"
	"strconv"
	"strings"

	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/swansonk14/graphing-fleas/internal/config"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/rules/script"
	"github.com/swansonk14/graphing-fleas/internal/sims/fleas"
	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

// ErrFrequency reports a display or print frequency that is neither -1 nor
// a positive step count.
var ErrFrequency = errors.New(f("frequency must be -1 or a positive number of steps"))

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Rule     string
	RuleFile string
	NumFleas int
	// FleaRows, FleaCols and Directions are comma separated lists.
	FleaRows   string
	FleaCols   string
	Directions string
	BoardFile  string
	Seed       int64

	CellWidth  int
	CellHeight int
	Visited    bool

	DisplayFrequency string
	PrintFrequency   string
	TPS              int
	Steps            int
	Pause            bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := fleas.DefaultConfig()
	return &Config{
		Rows:             def.Rows,
		Cols:             def.Cols,
		Rule:             def.Rule,
		NumFleas:         def.NumFleas,
		FleaRows:         "-1",
		FleaCols:         "-1",
		Directions:       "up",
		Seed:             def.Seed,
		CellWidth:        20,
		CellHeight:       20,
		DisplayFrequency: "1",
		PrintFrequency:   "1e5",
		TPS:              60,
		Steps:            -1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "num_rows", c.Rows, "number of rows")
	fs.IntVar(&c.Cols, "num_cols", c.Cols, "number of columns")
	fs.StringVar(&c.Rule, "flea_name", c.Rule, "flea species, one of "+strings.Join(flea.Names(), ", "))
	fs.StringVar(&c.RuleFile, "rule_file", c.RuleFile, "Starlark file defining an extra flea species (selected unless a board names another)")
	fs.IntVar(&c.NumFleas, "num_fleas", c.NumFleas, "number of fleas")
	fs.StringVar(&c.FleaRows, "flea_rows", c.FleaRows, "start rows, comma separated (-1 for the middle; fleas without one are placed randomly)")
	fs.StringVar(&c.FleaCols, "flea_cols", c.FleaCols, "start columns, comma separated (-1 for the middle; fleas without one are placed randomly)")
	fs.StringVar(&c.Directions, "init_directions", c.Directions, "start headings, comma separated (fleas without one face up)")
	fs.StringVar(&c.BoardFile, "config", c.BoardFile, "JSON or YAML board file with the initial square colors")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random flea placement")
	fs.IntVar(&c.CellWidth, "width", c.CellWidth, "width of each square in pixels")
	fs.IntVar(&c.CellHeight, "height", c.CellHeight, "height of each square in pixels")
	fs.BoolVar(&c.Visited, "visited", c.Visited, "mark squares a flea has recolored")
	fs.StringVar(&c.DisplayFrequency, "display_frequency", c.DisplayFrequency, "steps between display updates (-1 to update only on pressing d; may be in scientific notation)")
	fs.StringVar(&c.PrintFrequency, "print_frequency", c.PrintFrequency, "steps between progress lines (may be in scientific notation)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "stop after this many steps (-1 to run until every flea halts)")
	fs.BoolVar(&c.Pause, "pause", c.Pause, "start paused")
}

// SimConfig resolves the flags, an optional rule file and an optional board
// file into a simulation configuration. Board values win over flags.
func (c *Config) SimConfig(fs billy.Filesystem) (fleas.Config, error) {
	cfg := fleas.DefaultConfig()
	cfg.Rows = c.Rows
	cfg.Cols = c.Cols
	cfg.Rule = c.Rule
	cfg.NumFleas = c.NumFleas
	cfg.Seed = c.Seed

	var err error
	if cfg.FleaRows, err = fleas.ParseCoords(c.FleaRows); err != nil {
		return cfg, err
	}
	if cfg.FleaCols, err = fleas.ParseCoords(c.FleaCols); err != nil {
		return cfg, err
	}
	if cfg.Headings, err = fleas.ParseHeadings(c.Directions); err != nil {
		return cfg, err
	}

	if c.RuleFile != "" {
		name, err := script.LoadAndRegister(fs, c.RuleFile)
		if err != nil {
			return cfg, err
		}
		cfg.Rule = name
	}

	if c.BoardFile != "" {
		board, err := config.Load(fs, c.BoardFile)
		if err != nil {
			return cfg, err
		}
		if err := board.Apply(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Frequency parses a step frequency. Scientific notation such as "1e5" is
// accepted and -1 means manual.
func Frequency(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	n := int(v)
	if n != -1 && n < 1 {
		return 0, ErrFrequency
	}
	return n, nil
}
