package commands

import (
	"fmt"
	"io"

	"github.com/daytime-project/daytime-go/pkg/daytime"
	"github.com/daytime-project/daytime-go/pkg/wallclock"
)

// RunNow prints the current time of day.
func RunNow(c wallclock.Clock, w io.Writer) {
	fmt.Fprintln(w, wallclock.TimeOfDay(c))
}

// RunUntil prints how long until the next occurrence of target.
func RunUntil(c wallclock.Clock, target string, w io.Writer) error {
	t, err := daytime.ParseClockTime(target)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s until %s (now %s)\n", wallclock.Until(c, t), t, wallclock.TimeOfDay(c))
	return nil
}

// RunSince prints how long ago the most recent occurrence of ref was.
func RunSince(c wallclock.Clock, ref string, w io.Writer) error {
	t, err := daytime.ParseClockTime(ref)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s since %s (now %s)\n", wallclock.Since(c, t), t, wallclock.TimeOfDay(c))
	return nil
}
