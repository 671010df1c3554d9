// Package rules registers the built-in flea species with the flea registry.
//
// Import it for its side effects:
//
//	import _ "github.com/swansonk14/graphing-fleas/internal/rules"
//
// The arithmetic species only compute something when the board is seeded
// with the layouts built by package compute.
package rules

// Registry keys of the built-in species.
const (
	Langtons       = "langtons"
	Triangle       = "triangle"
	OneDimVisitor  = "1d_visit"
	TwoDimVisitor  = "2d_visit"
	BitFlipper     = "bit_flipper"
	AddOne         = "add_one"
	TwosComplement = "twos_complement"
	Adder          = "adder"
	FastAdder      = "fast_adder"
)
