package fleas

import (
	"strconv"
	"strings"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/rules"
)

// Config describes a run: the board, the species and where the fleas start.
type Config struct {
	Rows int
	Cols int

	Rule     string
	NumFleas int

	// FleaRows and FleaCols hold requested start coordinates, one per flea.
	// flea.Center picks the midpoint, other negatives count back from the
	// edge. Fleas without an entry are placed at random from Seed.
	FleaRows []int
	FleaCols []int
	// Headings holds start headings; fleas without one face up.
	Headings []flea.Heading

	// Colors seeds the board. Nil leaves every cell at color 0.
	Colors [][]core.Color

	Seed int64
}

// DefaultConfig returns the standard configuration: one Langton's ant in
// the middle of a 20x20 board.
func DefaultConfig() Config {
	return Config{
		Rows:     20,
		Cols:     20,
		Rule:     rules.Langtons,
		NumFleas: 1,
		FleaRows: []int{flea.Center},
		FleaCols: []int{flea.Center},
		Headings: []flea.Heading{flea.Up},
		Seed:     42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Lists are comma separated; "center" is accepted as a coordinate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["fleas"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.NumFleas = parsed
		}
	}
	if v, ok := cfg["flea_rows"]; ok {
		if parsed, err := ParseCoords(v); err == nil {
			c.FleaRows = parsed
		}
	}
	if v, ok := cfg["flea_cols"]; ok {
		if parsed, err := ParseCoords(v); err == nil {
			c.FleaCols = parsed
		}
	}
	if v, ok := cfg["directions"]; ok {
		if parsed, err := ParseHeadings(v); err == nil {
			c.Headings = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ParseCoords parses a comma separated coordinate list. "center" and -1
// both request the midpoint.
func ParseCoords(s string) ([]int, error) {
	var out []int
	for _, field := range splitList(s) {
		if strings.EqualFold(field, "center") {
			out = append(out, flea.Center)
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, CenterAlias(v))
	}
	return out, nil
}

// CenterAlias maps the -1 shorthand used by flags and board files to
// flea.Center.
func CenterAlias(v int) int {
	if v == -1 {
		return flea.Center
	}
	return v
}

// ParseHeadings parses a comma separated list of compass names.
func ParseHeadings(s string) ([]flea.Heading, error) {
	var out []flea.Heading
	for _, field := range splitList(s) {
		h, err := flea.ParseHeading(field)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}
