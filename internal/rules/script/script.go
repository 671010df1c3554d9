// Package script loads flea rules written in Starlark.
//
// A rule file sets a few globals and defines turn():
//
//	name = "rl"
//	num_colors = 2
//	cycle_size = 2          # optional
//	color_map = {0: 1}      # optional, unmapped colors keep their color
//	start_turn = "right"    # optional
//
//	def turn(color):
//	    return "right" if color == 0 else "left"
//
// turn() may return "left", "right", "180", "none", "straight", "stop" or
// None. It is evaluated once per color when the file is loaded, so stepping
// never re-enters the interpreter.
package script

import (
	"errors"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/swansonk14/graphing-fleas/internal/core"
	"github.com/swansonk14/graphing-fleas/internal/flea"
	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

var (
	// ErrMissingField reports a required global the script did not set.
	ErrMissingField = errors.New(f("missing field"))
	// ErrFieldType reports a global of the wrong type.
	ErrFieldType = errors.New(f("wrong field type"))
)

// ScriptError ties an error to the rule file that caused it.
type ScriptError struct {
	File  string
	Field string
	Err   error
}

func (err *ScriptError) Error() string {
	if err.Field == "" {
		return f("%v: %v", err.File, err.Err)
	}
	return f("%v: %v: %v", err.File, err.Field, err.Err)
}

func (err *ScriptError) Unwrap() error {
	return err.Err
}

// Load reads and parses a rule file from fs.
func Load(fs billy.Filesystem, path string) (*flea.Rule, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	src, err := io.ReadAll(file)
	if err != nil {
		return nil, &ScriptError{File: path, Err: err}
	}
	return Parse(path, src)
}

// LoadAndRegister loads a rule file and adds it to the flea registry,
// returning the name it was registered under.
func LoadAndRegister(fs billy.Filesystem, path string) (string, error) {
	rule, err := Load(fs, path)
	if err != nil {
		return "", err
	}
	if err := flea.Register(rule.Name, rule); err != nil {
		return "", &ScriptError{File: path, Err: err}
	}
	return rule.Name, nil
}

// Parse executes src and converts its globals into a validated Rule.
func Parse(filename string, src []byte) (*flea.Rule, error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return nil, &ScriptError{File: filename, Err: err}
	}

	fail := func(field string, err error) (*flea.Rule, error) {
		return nil, &ScriptError{File: filename, Field: field, Err: err}
	}

	rule := &flea.Rule{}

	name, ok := globals["name"]
	if !ok {
		return fail("name", ErrMissingField)
	}
	if rule.Name, ok = starlark.AsString(name); !ok || rule.Name == "" {
		return fail("name", ErrFieldType)
	}

	numColors, ok := globals["num_colors"]
	if !ok {
		return fail("num_colors", ErrMissingField)
	}
	if rule.NumColors, err = starlark.AsInt32(numColors); err != nil {
		return fail("num_colors", ErrFieldType)
	}
	if rule.NumColors < 1 || rule.NumColors > core.MaxColors {
		return fail("num_colors", core.ErrColorCount)
	}

	if v, ok := globals["cycle_size"]; ok && v != starlark.None {
		if rule.CycleSize, err = starlark.AsInt32(v); err != nil {
			return fail("cycle_size", ErrFieldType)
		}
	}

	if v, ok := globals["color_map"]; ok && v != starlark.None {
		dict, ok := v.(*starlark.Dict)
		if !ok {
			return fail("color_map", ErrFieldType)
		}
		rule.ColorMap = make(map[core.Color]core.Color, dict.Len())
		for _, item := range dict.Items() {
			from, err := colorValue(item[0], rule.NumColors)
			if err != nil {
				return fail("color_map", err)
			}
			to, err := colorValue(item[1], rule.NumColors)
			if err != nil {
				return fail("color_map", err)
			}
			rule.ColorMap[from] = to
		}
	}

	if v, ok := globals["start_turn"]; ok && v != starlark.None {
		if rule.StartTurn, err = turnValue(v); err != nil {
			return fail("start_turn", err)
		}
	}

	turn, ok := globals["turn"]
	if !ok {
		return fail("turn", ErrMissingField)
	}
	fn, ok := turn.(starlark.Callable)
	if !ok {
		return fail("turn", ErrFieldType)
	}
	rule.Turns = make([]flea.TurnAction, rule.NumColors)
	for c := range rule.Turns {
		rc, err := starlark.Call(thread, fn, starlark.Tuple{starlark.MakeInt(c)}, nil)
		if err != nil {
			return fail("turn", err)
		}
		if rule.Turns[c], err = turnValue(rc); err != nil {
			return fail("turn", err)
		}
	}

	if err := rule.Validate(); err != nil {
		return nil, &ScriptError{File: filename, Err: err}
	}
	return rule, nil
}

func colorValue(v starlark.Value, numColors int) (core.Color, error) {
	c, err := starlark.AsInt32(v)
	if err != nil {
		return 0, ErrFieldType
	}
	if c < 0 || c >= numColors {
		return 0, &core.ColorError{Color: c, NumColors: numColors}
	}
	return core.Color(c), nil
}

func turnValue(v starlark.Value) (flea.TurnAction, error) {
	if v == starlark.None {
		return flea.None, nil
	}
	s, ok := starlark.AsString(v)
	if !ok {
		return flea.None, ErrFieldType
	}
	return flea.ParseTurnAction(s)
}
