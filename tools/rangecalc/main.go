package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/rangeindex/packages/progression"
	"github.com/iotaledger/rangeindex/packages/rangeindex"
)

func main() {
	a := flag.StringP("a", "a", "", "the left operand as start:stop:step")
	b := flag.StringP("b", "b", "", "the right operand as start:stop:step")
	op := flag.String("op", "intersect", "the operation: intersect, union, add, sub, mul, div, floordiv")
	scalar := flag.Int64("scalar", 0, "the scalar operand for the arithmetic operations")
	unsorted := flag.Bool("unsorted", false, "do not sort the result of a union")

	flag.Parse()

	left, err := parseRange(*a)
	if err != nil {
		log.Fatalf("invalid left operand: %s", err)
	}

	switch *op {
	case "intersect":
		right, parseErr := parseRange(*b)
		if parseErr != nil {
			log.Fatalf("invalid right operand: %s", parseErr)
		}
		printRange(left.Intersect(right, true))
	case "union":
		right, parseErr := parseRange(*b)
		if parseErr != nil {
			log.Fatalf("invalid right operand: %s", parseErr)
		}
		hint := rangeindex.SortAscending
		if *unsorted {
			hint = rangeindex.SortNone
		}
		printResult(left.Union(right, hint))
	case "add", "sub", "mul", "div", "floordiv":
		result, applyErr := left.ApplyScalar(*scalar, parseOp(*op))
		if applyErr != nil {
			log.Fatalf("failed to apply %s: %s", *op, applyErr)
		}
		printResult(result)
	default:
		log.Fatalf("unknown operation: %s", *op)
	}
}

func parseOp(name string) (op progression.Op) {
	switch name {
	case "add":
		return progression.OpAdd
	case "sub":
		return progression.OpSub
	case "mul":
		return progression.OpMul
	case "div":
		return progression.OpDiv
	default:
		return progression.OpFloorDiv
	}
}

func parseRange(definition string) (parsedRange *rangeindex.RangeIndex, err error) {
	parts := strings.Split(definition, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("expected at most start:stop:step, got %q", definition)
	}

	parameters := make([]*int64, 3)
	for i, part := range parts {
		if part == "" {
			continue
		}
		value, parseErr := strconv.ParseInt(part, 10, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid parameter %q: %w", part, parseErr)
		}
		parameters[i] = &value
	}

	return rangeindex.FromBounds(parameters[0], parameters[1], parameters[2], "")
}

func printRange(result *rangeindex.RangeIndex) {
	fmt.Printf("%s\n  values: %v\n", result, result.Materialize())
}

func printResult(result rangeindex.Result) {
	switch {
	case result.IsRange():
		printRange(result.Range())
	case result.IsDense():
		fmt.Printf("%s\n  values: %v\n", result.Dense(), result.Dense().Values())
	case result.IsDenseFloat():
		fmt.Printf("%s\n  values: %v\n", result.DenseFloat(), result.DenseFloat().Values())
	}
}
