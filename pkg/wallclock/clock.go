// Package wallclock connects daytime values to a real or simulated clock.
package wallclock

import (
	"time"

	"github.com/daytime-project/daytime-go/pkg/daytime"
)

//go:generate mockery --name Clock --with-expecter --output mocks --outpkg mocks

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the host clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// TimeOfDay returns the current wall clock time of c.
func TimeOfDay(c Clock) daytime.ClockTime {
	return daytime.ClockTimeOf(c.Now())
}

// Until returns how long until target next shows on the clock. It is zero
// when the clock reads target right now.
func Until(c Clock, target daytime.ClockTime) daytime.Duration {
	return target.Minus(TimeOfDay(c)).SinceMidnight()
}

// Since returns how long ago ref last showed on the clock.
func Since(c Clock, ref daytime.ClockTime) daytime.Duration {
	return TimeOfDay(c).Minus(ref).SinceMidnight()
}

var (
	_ Clock = System{}
	_ Clock = Fixed{}
)
