package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daytime-project/daytime-go/pkg/daytime"
)

// Expression errors.
var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnknownKind  = errors.New("unknown operand kind")
	ErrUnknownOp    = errors.New("unknown operator")
	ErrKindMismatch = errors.New("operand kinds do not match")
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	// KindClock is a daytime.ClockTime operand.
	KindClock Kind = iota + 1

	// KindDuration is a daytime.Duration operand.
	KindDuration
)

// String returns the kind keyword used in expressions.
func (k Kind) String() string {
	switch k {
	case KindClock:
		return "time"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// ParseKind parses an operand kind keyword.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "t", "time", "clock":
		return KindClock, nil
	case "d", "dur", "duration":
		return KindDuration, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Value holds either a ClockTime or a Duration. The zero Value is invalid.
type Value struct {
	kind  Kind
	clock daytime.ClockTime
	dur   daytime.Duration
}

// ClockValue wraps a ClockTime.
func ClockValue(t daytime.ClockTime) Value {
	return Value{kind: KindClock, clock: t}
}

// DurationValue wraps a Duration.
func DurationValue(d daytime.Duration) Value {
	return Value{kind: KindDuration, dur: d}
}

// ParseValue parses text as a value of the given kind.
func ParseValue(kind Kind, text string) (Value, error) {
	switch kind {
	case KindClock:
		t, err := daytime.ParseClockTime(text)
		if err != nil {
			return Value{}, err
		}
		return ClockValue(t), nil
	case KindDuration:
		d, err := daytime.ParseDuration(text)
		if err != nil {
			return Value{}, err
		}
		return DurationValue(d), nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// ValueFromSeconds builds a value of the given kind from its raw seconds,
// applying the same range checks as the daytime constructors.
func ValueFromSeconds(kind Kind, n int64) (Value, error) {
	switch kind {
	case KindClock:
		t, err := daytime.ClockTimeFromSeconds(n)
		if err != nil {
			return Value{}, err
		}
		return ClockValue(t), nil
	case KindDuration:
		d, err := daytime.DurationFromSeconds(n)
		if err != nil {
			return Value{}, err
		}
		return DurationValue(d), nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool {
	return v.kind == KindClock || v.kind == KindDuration
}

// Clock returns the ClockTime held by v.
func (v Value) Clock() (daytime.ClockTime, bool) {
	return v.clock, v.kind == KindClock
}

// Duration returns the Duration held by v.
func (v Value) Duration() (daytime.Duration, bool) {
	return v.dur, v.kind == KindDuration
}

// Seconds returns the raw seconds of the held value.
func (v Value) Seconds() int64 {
	if v.kind == KindClock {
		return v.clock.SecondsSinceMidnight()
	}
	return v.dur.TotalSeconds()
}

// String returns the canonical text of the held value.
func (v Value) String() string {
	switch v.kind {
	case KindClock:
		return v.clock.String()
	case KindDuration:
		return v.dur.String()
	default:
		return "<invalid>"
	}
}

// Equal reports whether v and o have the same kind and value.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.Seconds() == o.Seconds()
}
