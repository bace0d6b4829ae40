package calc

import (
	"errors"
	"testing"

	"github.com/daytime-project/daytime-go/pkg/daytime"
)

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"t":        KindClock,
		"time":     KindClock,
		"Clock":    KindClock,
		"d":        KindDuration,
		"dur":      KindDuration,
		"DURATION": KindDuration,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseKind("week"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(week) error = %v, want ErrUnknownKind", err)
	}
}

func TestValueAccessors(t *testing.T) {
	cv := ClockValue(daytime.MustClockTime(1, 2, 3))
	if _, ok := cv.Duration(); ok {
		t.Error("clock value reported a duration")
	}
	if ct, ok := cv.Clock(); !ok || ct.String() != "01:02:03" {
		t.Errorf("Clock() = %s, %v", ct, ok)
	}
	if cv.Seconds() != 3723 {
		t.Errorf("Seconds() = %d, want 3723", cv.Seconds())
	}

	dv := DurationValue(daytime.MustDuration(30, 0, 0))
	if d, ok := dv.Duration(); !ok || d.String() != "30:00:00" {
		t.Errorf("Duration() = %s, %v", d, ok)
	}
	if dv.Equal(cv) {
		t.Error("values of different kinds compared equal")
	}

	var zero Value
	if zero.IsValid() || zero.String() != "<invalid>" {
		t.Errorf("zero Value = %q, valid=%v", zero, zero.IsValid())
	}
}

func TestValueFromSeconds(t *testing.T) {
	v, err := ValueFromSeconds(KindDuration, 172800)
	if err != nil {
		t.Fatalf("ValueFromSeconds() error = %v", err)
	}
	if v.String() != "48:00:00" {
		t.Errorf("ValueFromSeconds() = %s", v)
	}

	if _, err := ValueFromSeconds(KindClock, 172800); !errors.Is(err, daytime.ErrRange) {
		t.Errorf("ValueFromSeconds(clock, 172800) error = %v, want ErrRange", err)
	}
	if _, err := ValueFromSeconds(Kind(9), 1); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ValueFromSeconds(9) error = %v, want ErrUnknownKind", err)
	}
}

func TestParseOp(t *testing.T) {
	for op, sym := range opSymbols {
		got, err := ParseOp(sym)
		if err != nil || got != op {
			t.Errorf("ParseOp(%q) = %v, %v; want %v", sym, got, err, op)
		}
	}
	if _, err := ParseOp("*"); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("ParseOp(*) error = %v, want ErrUnknownOp", err)
	}
	if Op(0).String() != "?" {
		t.Errorf("Op(0).String() = %q", Op(0).String())
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op    Op
		sym   string
		arith bool
	}{
		{OpPlus, "+", true},
		{OpMinus, "-", true},
		{OpEqual, "==", false},
		{OpNotEqual, "!=", false},
		{OpLess, "<", false},
		{OpLessEqual, "<=", false},
		{OpGreater, ">", false},
		{OpGreaterEqual, ">=", false},
		{OpCompare, "<=>", false},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.sym {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.sym)
		}
		if got := tt.op.IsArithmetic(); got != tt.arith {
			t.Errorf("%s.IsArithmetic() = %v, want %v", tt.sym, got, tt.arith)
		}
	}
	if got := Op(0).String(); got != "?" {
		t.Errorf("Op(0).String() = %q, want ?", got)
	}
}
