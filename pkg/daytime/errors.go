package daytime

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a construction failure.
type ErrorKind uint8

const (
	// FormatError reports input that is not shaped like h:mm:ss or contains
	// a field that is not an integer literal.
	FormatError ErrorKind = iota + 1

	// RangeError reports a numeric component outside its permitted range.
	RangeError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case FormatError:
		return "FORMAT"
	case RangeError:
		return "RANGE"
	default:
		return "UNKNOWN"
	}
}

// Sentinels for errors.Is. A *Error unwraps to the sentinel of its kind.
var (
	ErrFormat = errors.New("invalid format")
	ErrRange  = errors.New("value out of range")
)

// Error is returned by every constructor and parser in this package.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Field names the offending component: "seconds", "hours", "minutes"
	// or "input" for whole-string format failures.
	Field string

	// Input is the rejected value as text.
	Input string

	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("daytime: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("daytime: %s %q: %s", e.Field, e.Input, e.Reason)
}

// Unwrap returns ErrFormat or ErrRange according to the kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case FormatError:
		return ErrFormat
	case RangeError:
		return ErrRange
	default:
		return nil
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func formatErr(input, reason string) error {
	return &Error{Kind: FormatError, Field: "input", Input: input, Reason: reason}
}

func rangeErr(field string, value int64, reason string) error {
	return &Error{Kind: RangeError, Field: field, Input: fmt.Sprint(value), Reason: reason}
}
