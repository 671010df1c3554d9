// Command compute seeds an arithmetic flea board from a number, runs it
// until the flea halts and prints the answer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/swansonk14/graphing-fleas/internal/compute"
)

func main() {
	kind := flag.String("compute_type", compute.TypeBitFlip, "computation, one of "+strings.Join(compute.Types, ", "))
	base := flag.Int("base", 2, "base the inputs are written in")
	input1 := flag.String("input_1", "", "first operand")
	input2 := flag.String("input_2", "", "second operand (add only)")
	width := flag.Int("width", 0, "pad the operand to this many bits")
	limit := flag.Int("limit", 1_000_000, "give up after this many steps")
	flag.Parse()

	bits, err := compute.ParseInput(*input1, *base, *width)
	if err != nil {
		log.Fatalf("input_1: %v", err)
	}
	if *kind == compute.TypeAdd {
		if _, err := compute.ParseInput(*input2, *base, *width); err != nil {
			log.Fatalf("input_2: %v", err)
		}
	}
	layout, err := compute.ForType(*kind, bits)
	if err != nil {
		log.Fatalf("%v", err)
	}
	res, err := layout.Evaluate(*limit)
	if errors.Is(err, compute.ErrStepLimit) {
		log.Fatalf("%s(%s): %v after %d steps", *kind, bits, err, res.Steps)
	}
	if err != nil {
		log.Fatalf("%s(%s): %v", *kind, bits, err)
	}

	fmt.Printf("%s(%s) = %s in %d steps\n", *kind, bits, res.Bits, res.Steps)
	if *base != 2 {
		v, _ := strconv.ParseUint(res.Bits, 2, 64)
		fmt.Printf("%s (base %d)\n", strconv.FormatUint(v, *base), *base)
	}
}
