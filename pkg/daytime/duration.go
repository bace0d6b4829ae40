package daytime

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// Duration is a non-negative span of whole seconds. Unlike ClockTime it is
// not bounded by a day. The zero value is an empty span.
type Duration struct {
	seconds int64
}

// DurationFromSeconds returns a span of n seconds. n must not be negative.
func DurationFromSeconds(n int64) (Duration, error) {
	if n < 0 {
		return Duration{}, rangeErr("seconds", n, "duration must not be negative")
	}
	return Duration{seconds: n}, nil
}

// NewDurationHM returns a span of h hours and m minutes.
func NewDurationHM(h, m int64) (Duration, error) {
	return NewDuration(h, m, 0)
}

// NewDuration returns a span of h hours, m minutes and s seconds.
// Hours are unbounded; minutes and seconds must be within 0-59.
func NewDuration(h, m, s int64) (Duration, error) {
	if err := checkDurationHours(h); err != nil {
		return Duration{}, err
	}
	if err := checkMinute(m); err != nil {
		return Duration{}, err
	}
	if err := checkSecond(s); err != nil {
		return Duration{}, err
	}
	return Duration{seconds: h*SecondsPerHour + m*SecondsPerMinute + s}, nil
}

// ParseDuration parses "h:mm:ss" where the hour field may exceed 23.
func ParseDuration(s string) (Duration, error) {
	f, err := splitFields(s)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(f[0], f[1], f[2])
}

// MustParseDuration is like ParseDuration but panics on error.
// Use only in tests or for constants known to be valid.
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustDuration is like NewDuration but panics on error.
func MustDuration(h, m, s int64) Duration {
	d, err := NewDuration(h, m, s)
	if err != nil {
		panic(err)
	}
	return d
}

// DurationOf converts a time.Duration, truncating toward zero to whole seconds.
func DurationOf(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, &Error{Kind: RangeError, Field: "seconds", Input: d.String(), Reason: "duration must not be negative"}
	}
	return Duration{seconds: int64(d / time.Second)}, nil
}

// Std converts d to a time.Duration, saturating at the largest
// representable time.Duration.
func (d Duration) Std() time.Duration {
	if d.seconds > int64(math.MaxInt64/time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d.seconds) * time.Second
}

// Hours returns the whole hours in d. It is not reduced modulo 24.
func (d Duration) Hours() int64 {
	return d.seconds / SecondsPerHour
}

// Minutes returns the minute component (0-59).
func (d Duration) Minutes() int {
	return int(d.seconds % SecondsPerHour / SecondsPerMinute)
}

// Seconds returns the second component (0-59).
func (d Duration) Seconds() int {
	return int(d.seconds % SecondsPerMinute)
}

// TotalSeconds returns the length of d in seconds.
func (d Duration) TotalSeconds() int64 {
	return d.seconds
}

// IsZero reports whether d is an empty span.
func (d Duration) IsZero() bool {
	return d.seconds == 0
}

// String returns "HH:MM:SS"; hours grow past two digits as needed.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours(), d.Minutes(), d.Seconds())
}

// Equal reports whether d and o are the same length.
func (d Duration) Equal(o Duration) bool {
	return d.seconds == o.seconds
}

// Compare returns -1, 0 or +1 ordering d and o by length.
func (d Duration) Compare(o Duration) int {
	return cmp.Compare(d.seconds, o.seconds)
}

// Shorter reports whether d is shorter than o.
func (d Duration) Shorter(o Duration) bool {
	return d.seconds < o.seconds
}

// Longer reports whether d is longer than o.
func (d Duration) Longer(o Duration) bool {
	return d.seconds > o.seconds
}

// Hash returns a hash consistent with Equal.
func (d Duration) Hash() uint64 {
	return uint64(d.seconds)
}

// Plus returns d + o, saturating at math.MaxInt64 seconds.
func (d Duration) Plus(o Duration) Duration {
	if d.seconds > math.MaxInt64-o.seconds {
		return Duration{seconds: math.MaxInt64}
	}
	return Duration{seconds: d.seconds + o.seconds}
}

// Minus returns d - o, or zero if o is longer than d.
func (d Duration) Minus(o Duration) Duration {
	if o.seconds >= d.seconds {
		return Duration{}
	}
	return Duration{seconds: d.seconds - o.seconds}
}

// PlusClockTime extends d by t's seconds since midnight.
func (d Duration) PlusClockTime(t ClockTime) Duration {
	return d.Plus(t.SinceMidnight())
}

// MinusClockTime shortens d by t's seconds since midnight, clamping at zero.
func (d Duration) MinusClockTime(t ClockTime) Duration {
	return d.Minus(t.SinceMidnight())
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
