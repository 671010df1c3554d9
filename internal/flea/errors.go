package flea

import (
	"errors"

	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

var (
	// ErrUnknownRule reports a rule name missing from the registry.
	ErrUnknownRule = errors.New(f("unknown rule"))
	// ErrDuplicateRule reports a second registration under the same name.
	ErrDuplicateRule = errors.New(f("rule already registered"))
	// ErrInvalidRule reports a rule whose definition is inconsistent.
	ErrInvalidRule = errors.New(f("invalid rule"))
	// ErrInvalidHeading reports an unrecognised heading name.
	ErrInvalidHeading = errors.New(f("invalid heading"))
	// ErrInvalidTurn reports an unrecognised turn action name.
	ErrInvalidTurn = errors.New(f("invalid turn action"))
	// ErrPosition reports a requested start position outside the grid.
	ErrPosition = errors.New(f("position out of range"))
)

// UnknownRuleError names the missing rule and the ones that exist.
type UnknownRuleError struct {
	Name      string
	Available []string
}

func (err *UnknownRuleError) Error() string {
	return f("%v %q, available rules are %v", ErrUnknownRule, err.Name, err.Available)
}

func (err *UnknownRuleError) Is(target error) bool {
	return target == ErrUnknownRule
}

// RuleError attaches the rule name to a definition problem.
type RuleError struct {
	Name string
	Err  error
}

func (err *RuleError) Error() string {
	return f("rule %q: %v", err.Name, err.Err)
}

func (err *RuleError) Unwrap() error {
	return err.Err
}
