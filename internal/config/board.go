// Package config loads board files: a seeded grid plus the fleas that start
// on it, stored as JSON or YAML.
//
//	square_colors: [[0, 0, 0], [0, 1, 0]]
//	flea_name: langtons
//	num_fleas: 1
//	flea_rows: [-1]
//	flea_cols: [-1]
//	init_directions: [up]
//
// A coordinate of -1 places the flea in the middle of that axis.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/yaml.v3"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/sims/fleas"
	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

var (
	// ErrUnknownFormat reports a board file extension that is not understood.
	ErrUnknownFormat = errors.New(f("unknown board file format"))
	// ErrNegativeColor reports a square color below zero.
	ErrNegativeColor = errors.New(f("square color must not be negative"))
)

// Format is a board file encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, &ConfigError{File: path, Err: ErrUnknownFormat}
}

// Board is the on-disk form of a run. Omitted fields leave the matching
// flag values alone.
type Board struct {
	SquareColors   [][]int  `json:"square_colors,omitempty" yaml:"square_colors,omitempty"`
	FleaName       string   `json:"flea_name,omitempty" yaml:"flea_name,omitempty"`
	NumFleas       *int     `json:"num_fleas,omitempty" yaml:"num_fleas,omitempty"`
	FleaRows       []int    `json:"flea_rows,omitempty" yaml:"flea_rows,omitempty"`
	FleaCols       []int    `json:"flea_cols,omitempty" yaml:"flea_cols,omitempty"`
	InitDirections []string `json:"init_directions,omitempty" yaml:"init_directions,omitempty"`
}

// ConfigError ties an error to the board file that caused it.
type ConfigError struct {
	File  string
	Field string
	Err   error
}

func (err *ConfigError) Error() string {
	if err.Field == "" {
		return f("%v: %v", err.File, err.Err)
	}
	return f("%v: %v: %v", err.File, err.Field, err.Err)
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

// Load reads a board file from fs, choosing the format by extension.
func Load(fs billy.Filesystem, path string) (*Board, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	board, err := Decode(file, format)
	if err != nil {
		return nil, &ConfigError{File: path, Err: err}
	}
	return board, nil
}

// Decode parses one board in the given format.
func Decode(r io.Reader, format Format) (*Board, error) {
	board := &Board{}
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(board); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(board); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}
	return board, nil
}

// Save writes b to fs in the format matching path.
func Save(fs billy.Filesystem, path string, b *Board) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	switch format {
	case JSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(b)
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(b)
		if err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return &ConfigError{File: path, Err: err}
	}

	file, err := fs.Create(path)
	if err != nil {
		return err
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// FromSimulation captures the current board and flea placement of sim.
// Headings are saved from before the rule's start turn, which loading
// applies again. Halted fleas are saved facing up since a board cannot
// start them halted.
func FromSimulation(sim *fleas.Simulation) *Board {
	colors := sim.Board()
	b := &Board{
		SquareColors: make([][]int, len(colors)),
		FleaName:     sim.Rule().Name,
	}
	for r, row := range colors {
		b.SquareColors[r] = make([]int, len(row))
		for c, v := range row {
			b.SquareColors[r][c] = int(v)
		}
	}
	agents := sim.Fleas()
	n := len(agents)
	b.NumFleas = &n
	for _, a := range agents {
		b.FleaRows = append(b.FleaRows, a.Row)
		b.FleaCols = append(b.FleaCols, a.Col)
		h := sim.Rule().StartTurn.Undo(a.Heading)
		if a.Halted() {
			h = flea.Up
		}
		b.InitDirections = append(b.InitDirections, h.String())
	}
	return b
}

// Apply overlays the board onto cfg. Square colors fix the grid size; the
// rule's color count is checked later by fleas.New.
func (b *Board) Apply(cfg *fleas.Config) error {
	if b.SquareColors != nil {
		colors, err := b.colors()
		if err != nil {
			return err
		}
		cfg.Rows = len(colors)
		cfg.Cols = len(colors[0])
		cfg.Colors = colors
	}
	if b.FleaName != "" {
		cfg.Rule = b.FleaName
	}
	if b.NumFleas != nil {
		cfg.NumFleas = *b.NumFleas
	}
	if b.FleaRows != nil {
		cfg.FleaRows = centered(b.FleaRows)
	}
	if b.FleaCols != nil {
		cfg.FleaCols = centered(b.FleaCols)
	}
	if b.InitDirections != nil {
		cfg.Headings = make([]flea.Heading, len(b.InitDirections))
		for i, name := range b.InitDirections {
			h, err := flea.ParseHeading(name)
			if err != nil {
				return &ConfigError{Field: "init_directions", Err: err}
			}
			cfg.Headings[i] = h
		}
	}
	return nil
}

func (b *Board) colors() ([][]core.Color, error) {
	rows := len(b.SquareColors)
	if rows == 0 || len(b.SquareColors[0]) == 0 {
		return nil, &ConfigError{Field: "square_colors", Err: core.ErrEmptyGrid}
	}
	cols := len(b.SquareColors[0])
	out := make([][]core.Color, rows)
	for r, row := range b.SquareColors {
		if len(row) != cols {
			return nil, &ConfigError{Field: "square_colors", Err: &core.DimensionError{
				Rows: rows, Cols: cols, GotRows: rows, GotCols: len(row),
			}}
		}
		out[r] = make([]core.Color, cols)
		for c, v := range row {
			if v < 0 {
				return nil, &ConfigError{Field: "square_colors", Err: &core.CellError{Row: r, Col: c, Err: ErrNegativeColor}}
			}
			if v >= core.MaxColors {
				return nil, &ConfigError{Field: "square_colors", Err: &core.CellError{
					Row: r, Col: c, Err: &core.ColorError{Color: v, NumColors: core.MaxColors},
				}}
			}
			out[r][c] = core.Color(v)
		}
	}
	return out, nil
}

func centered(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = fleas.CenterAlias(v)
	}
	return out
}
