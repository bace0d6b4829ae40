package daytime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit sizes in seconds.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

// maxDurationHours is the largest hour count whose total still fits in int64
// with 59 minutes and 59 seconds added.
const maxDurationHours = (math.MaxInt64 - (SecondsPerHour - 1)) / SecondsPerHour

var fieldNames = [3]string{"hours", "minutes", "seconds"}

// splitFields splits "h:mm:ss" into its three integer components.
// White space around each field is ignored. Field widths are not enforced
// and a sign is accepted so that negative components are reported as range
// errors by the caller.
func splitFields(s string) ([3]int64, error) {
	var out [3]int64

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return out, formatErr(s, "expected h:mm:ss")
	}

	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return out, formatErr(s, "expected h:mm:ss")
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return out, &Error{Kind: RangeError, Field: fieldNames[i], Input: p, Reason: "value does not fit in 64 bits"}
			}
			return out, formatErr(s, fmt.Sprintf("%s field %q is not an integer", fieldNames[i], p))
		}
		out[i] = n
	}
	return out, nil
}

func checkHour(h int64) error {
	if h < 0 || h >= 24 {
		return rangeErr("hours", h, "hours must be within 0-23")
	}
	return nil
}

func checkDurationHours(h int64) error {
	if h < 0 {
		return rangeErr("hours", h, "hours must not be negative")
	}
	if h > maxDurationHours {
		return rangeErr("hours", h, "hours exceed the representable span")
	}
	return nil
}

func checkMinute(m int64) error {
	if m < 0 || m >= 60 {
		return rangeErr("minutes", m, "minutes must be within 0-59")
	}
	return nil
}

func checkSecond(s int64) error {
	if s < 0 || s >= 60 {
		return rangeErr("seconds", s, "seconds must be within 0-59")
	}
	return nil
}
