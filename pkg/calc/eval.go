package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a binary expression over two typed operands.
type Expr struct {
	Left  Value
	Op    Op
	Right Value
}

// String renders e in the form accepted by ParseExpr.
func (e Expr) String() string {
	return fmt.Sprintf("%s %s %s %s %s", e.Left.Kind(), e.Left, e.Op, e.Right.Kind(), e.Right)
}

// ParseExpr parses "<kind> <value> <op> <kind> <value>".
func ParseExpr(text string) (Expr, error) {
	fields := strings.Fields(text)
	if len(fields) != 5 {
		return Expr{}, fmt.Errorf("%w: expected <kind> <value> <op> <kind> <value>, got %d tokens", ErrSyntax, len(fields))
	}

	left, err := parseOperand(fields[0], fields[1])
	if err != nil {
		return Expr{}, fmt.Errorf("left operand: %w", err)
	}
	op, err := ParseOp(fields[2])
	if err != nil {
		return Expr{}, err
	}
	right, err := parseOperand(fields[3], fields[4])
	if err != nil {
		return Expr{}, fmt.Errorf("right operand: %w", err)
	}

	return Expr{Left: left, Op: op, Right: right}, nil
}

func parseOperand(kindText, valueText string) (Value, error) {
	kind, err := ParseKind(kindText)
	if err != nil {
		return Value{}, err
	}
	return ParseValue(kind, valueText)
}

// ResultKind tells which field of a Result is meaningful.
type ResultKind uint8

const (
	// ResultValue carries a time or duration in Value.
	ResultValue ResultKind = iota + 1

	// ResultBool carries a comparison outcome in Bool.
	ResultBool

	// ResultOrder carries -1, 0 or 1 in Order.
	ResultOrder
)

// Result is the outcome of an evaluation.
type Result struct {
	Kind  ResultKind
	Value Value
	Bool  bool
	Order int
}

// String renders the result: a canonical time or duration, "true"/"false",
// or "-1"/"0"/"1" for <=>.
func (r Result) String() string {
	switch r.Kind {
	case ResultValue:
		return r.Value.String()
	case ResultBool:
		return strconv.FormatBool(r.Bool)
	case ResultOrder:
		return strconv.Itoa(r.Order)
	default:
		return "<none>"
	}
}

// Eval parses and evaluates text.
func Eval(text string) (Result, error) {
	e, err := ParseExpr(text)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(e)
}

// Evaluate computes e. Arithmetic never fails once both operands are valid.
func Evaluate(e Expr) (Result, error) {
	if !e.Left.IsValid() || !e.Right.IsValid() {
		return Result{}, fmt.Errorf("%w: invalid operand", ErrSyntax)
	}

	if e.Op.IsArithmetic() {
		return Result{Kind: ResultValue, Value: arithmetic(e.Left, e.Op, e.Right)}, nil
	}

	if e.Left.Kind() != e.Right.Kind() {
		return Result{}, fmt.Errorf("%w: cannot compare %s with %s", ErrKindMismatch, e.Left.Kind(), e.Right.Kind())
	}

	order := compare(e.Left, e.Right)
	switch e.Op {
	case OpCompare:
		return Result{Kind: ResultOrder, Order: order}, nil
	case OpEqual:
		return boolResult(order == 0), nil
	case OpNotEqual:
		return boolResult(order != 0), nil
	case OpLess:
		return boolResult(order < 0), nil
	case OpLessEqual:
		return boolResult(order <= 0), nil
	case OpGreater:
		return boolResult(order > 0), nil
	case OpGreaterEqual:
		return boolResult(order >= 0), nil
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownOp, e.Op)
	}
}

func boolResult(b bool) Result {
	return Result{Kind: ResultBool, Bool: b}
}

// arithmetic dispatches on the operand kinds. Callers guarantee op is
// OpPlus or OpMinus.
func arithmetic(l Value, op Op, r Value) Value {
	plus := op == OpPlus

	switch l.kind {
	case KindClock:
		if r.kind == KindClock {
			if plus {
				return ClockValue(l.clock.Plus(r.clock))
			}
			return ClockValue(l.clock.Minus(r.clock))
		}
		if plus {
			return ClockValue(l.clock.PlusDuration(r.dur))
		}
		return ClockValue(l.clock.MinusDuration(r.dur))

	default:
		if r.kind == KindClock {
			if plus {
				return DurationValue(l.dur.PlusClockTime(r.clock))
			}
			return DurationValue(l.dur.MinusClockTime(r.clock))
		}
		if plus {
			return DurationValue(l.dur.Plus(r.dur))
		}
		return DurationValue(l.dur.Minus(r.dur))
	}
}

func compare(l, r Value) int {
	if l.kind == KindClock {
		return l.clock.Compare(r.clock)
	}
	return l.dur.Compare(r.dur)
}
