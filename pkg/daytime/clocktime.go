package daytime

import (
	"cmp"
	"fmt"
	"time"
)

// ClockTime is a time of day on a 24-hour clock with one second resolution.
// The zero value is midnight.
type ClockTime struct {
	seconds int64
}

// Midnight is 00:00:00.
var Midnight = ClockTime{}

// ClockTimeFromSeconds returns the time n seconds after midnight.
// n must be within [0, 86400).
func ClockTimeFromSeconds(n int64) (ClockTime, error) {
	if n < 0 || n >= SecondsPerDay {
		return ClockTime{}, rangeErr("seconds", n, "seconds must be within a single day")
	}
	return ClockTime{seconds: n}, nil
}

// ClockTimeFromHours returns the full hour h.
func ClockTimeFromHours(h int) (ClockTime, error) {
	return clockTimeFromFields(int64(h), 0, 0)
}

// NewClockTimeHM returns h:m:00.
func NewClockTimeHM(h, m int) (ClockTime, error) {
	return clockTimeFromFields(int64(h), int64(m), 0)
}

// NewClockTime returns h:m:s. Each component is validated against its
// natural range: hours 0-23, minutes and seconds 0-59.
func NewClockTime(h, m, s int) (ClockTime, error) {
	return clockTimeFromFields(int64(h), int64(m), int64(s))
}

// ParseClockTime parses "h:mm:ss". Field widths are not enforced, so
// "7:5:0" and "07:05:00" are the same time.
func ParseClockTime(s string) (ClockTime, error) {
	f, err := splitFields(s)
	if err != nil {
		return ClockTime{}, err
	}
	return clockTimeFromFields(f[0], f[1], f[2])
}

// MustParseClockTime is like ParseClockTime but panics on error.
// Use only in tests or for constants known to be valid.
func MustParseClockTime(s string) ClockTime {
	t, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// MustClockTime is like NewClockTime but panics on error.
func MustClockTime(h, m, s int) ClockTime {
	t, err := NewClockTime(h, m, s)
	if err != nil {
		panic(err)
	}
	return t
}

// ClockTimeOf returns the wall clock reading of t in t's location.
// Sub-second precision is dropped.
func ClockTimeOf(t time.Time) ClockTime {
	h, m, s := t.Clock()
	return ClockTime{seconds: int64(h*SecondsPerHour + m*SecondsPerMinute + s)}
}

func clockTimeFromFields(h, m, s int64) (ClockTime, error) {
	if err := checkHour(h); err != nil {
		return ClockTime{}, err
	}
	if err := checkMinute(m); err != nil {
		return ClockTime{}, err
	}
	if err := checkSecond(s); err != nil {
		return ClockTime{}, err
	}
	return ClockTime{seconds: h*SecondsPerHour + m*SecondsPerMinute + s}, nil
}

// Hours returns the hour component (0-23).
func (t ClockTime) Hours() int {
	return int(t.seconds / SecondsPerHour)
}

// Minutes returns the minute component (0-59).
func (t ClockTime) Minutes() int {
	return int(t.seconds % SecondsPerHour / SecondsPerMinute)
}

// Seconds returns the second component (0-59).
func (t ClockTime) Seconds() int {
	return int(t.seconds % SecondsPerMinute)
}

// SecondsSinceMidnight returns the total number of seconds since midnight.
func (t ClockTime) SecondsSinceMidnight() int64 {
	return t.seconds
}

// SinceMidnight returns the span from midnight to t.
func (t ClockTime) SinceMidnight() Duration {
	return Duration{seconds: t.seconds}
}

// String returns the canonical "HH:MM:SS" form.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours(), t.Minutes(), t.Seconds())
}

// Equal reports whether t and o denote the same time of day.
func (t ClockTime) Equal(o ClockTime) bool {
	return t.seconds == o.seconds
}

// Compare returns -1, 0 or +1 ordering t and o from midnight onwards.
func (t ClockTime) Compare(o ClockTime) int {
	return cmp.Compare(t.seconds, o.seconds)
}

// Before reports whether t is earlier in the day than o.
func (t ClockTime) Before(o ClockTime) bool {
	return t.seconds < o.seconds
}

// After reports whether t is later in the day than o.
func (t ClockTime) After(o ClockTime) bool {
	return t.seconds > o.seconds
}

// Hash returns a hash consistent with Equal.
func (t ClockTime) Hash() uint64 {
	return uint64(t.seconds)
}

// Plus adds two times of day, wrapping past midnight.
func (t ClockTime) Plus(o ClockTime) ClockTime {
	return ClockTime{seconds: (t.seconds + o.seconds) % SecondsPerDay}
}

// PlusDuration advances t by d, wrapping as many days as d spans.
func (t ClockTime) PlusDuration(d Duration) ClockTime {
	return ClockTime{seconds: (t.seconds + d.seconds%SecondsPerDay) % SecondsPerDay}
}

// Minus returns the time of day o seconds before t, wrapping to the
// previous day when o is later than t.
func (t ClockTime) Minus(o ClockTime) ClockTime {
	diff := t.seconds - o.seconds
	if diff < 0 {
		diff += SecondsPerDay
	}
	return ClockTime{seconds: diff}
}

// MinusDuration moves t back by d, wrapping as many days as d spans.
func (t ClockTime) MinusDuration(d Duration) ClockTime {
	diff := t.seconds - d.seconds%SecondsPerDay
	if diff < 0 {
		diff += SecondsPerDay
	}
	return ClockTime{seconds: diff}
}

// MarshalText implements encoding.TextMarshaler.
func (t ClockTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ClockTime) UnmarshalText(text []byte) error {
	v, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
