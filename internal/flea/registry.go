package flea

import (
	"maps"
	"slices"
)

var rules = map[string]*Rule{}

// Register validates r and adds it to the catalog under name. An empty
// r.Name is filled in from name.
func Register(name string, r *Rule) error {
	if name == "" || r == nil {
		return &RuleError{Name: name, Err: ErrInvalidRule}
	}
	if _, ok := rules[name]; ok {
		return &RuleError{Name: name, Err: ErrDuplicateRule}
	}
	if r.Name == "" {
		r.Name = name
	}
	if err := r.Validate(); err != nil {
		return err
	}
	rules[name] = r
	return nil
}

// MustRegister is Register for the built-in catalog, which must be valid.
func MustRegister(name string, r *Rule) {
	if err := Register(name, r); err != nil {
		panic(err)
	}
}

// Lookup resolves a rule name.
func Lookup(name string) (*Rule, error) {
	r, ok := rules[name]
	if !ok {
		return nil, &UnknownRuleError{Name: name, Available: Names()}
	}
	return r, nil
}

// Names lists every registered rule, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(rules))
}
