package calc

import (
	"fmt"
	"strings"
)

// Op is a binary operator.
type Op uint8

const (
	// OpPlus adds the right operand to the left (+).
	OpPlus Op = iota + 1

	// OpMinus subtracts the right operand from the left (-).
	OpMinus

	// OpEqual reports whether both operands are equal (==).
	OpEqual

	// OpNotEqual reports whether the operands differ (!=).
	OpNotEqual

	// OpLess reports whether the left operand is smaller (<).
	OpLess

	// OpLessEqual reports whether the left operand is smaller or equal (<=).
	OpLessEqual

	// OpGreater reports whether the left operand is larger (>).
	OpGreater

	// OpGreaterEqual reports whether the left operand is larger or equal (>=).
	OpGreaterEqual

	// OpCompare orders the operands, yielding -1, 0 or 1 (<=>).
	OpCompare
)

var opSymbols = map[Op]string{
	OpPlus:         "+",
	OpMinus:        "-",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpCompare:      "<=>",
}

var opWords = map[string]Op{
	"plus":  OpPlus,
	"minus": OpMinus,
	"eq":    OpEqual,
	"ne":    OpNotEqual,
	"lt":    OpLess,
	"le":    OpLessEqual,
	"gt":    OpGreater,
	"ge":    OpGreaterEqual,
	"cmp":   OpCompare,
}

// String returns the operator symbol.
func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return "?"
}

// IsArithmetic reports whether o produces a value rather than a comparison.
func (o Op) IsArithmetic() bool {
	return o == OpPlus || o == OpMinus
}

// ParseOp parses an operator symbol or its word form (plus, lt, cmp, ...).
func ParseOp(s string) (Op, error) {
	for op, sym := range opSymbols {
		if s == sym {
			return op, nil
		}
	}
	if op, ok := opWords[strings.ToLower(s)]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}
