// Package daytime provides two immutable value types for wall clock arithmetic.
//
// ClockTime is a point on a 24-hour clock, stored as seconds since midnight
// in [0, 86400). Duration is a non-negative span of whole seconds with no
// upper bound other than int64.
//
// # Construction
//
// Every constructor validates its input and returns a *Error on violation:
//
//	t, err := daytime.NewClockTime(23, 59, 59)
//	d, err := daytime.ParseDuration("48:00:00")
//
// Errors carry an ErrorKind. Match them with errors.Is:
//
//	if errors.Is(err, daytime.ErrRange) { ... }
//
// # Text Format
//
// Both types parse "h:mm:ss" with any number of digits per field and render
// the canonical "HH:MM:SS" form. Duration hours are never truncated, so
// 172800 seconds renders as "48:00:00".
//
// # Arithmetic
//
// ClockTime arithmetic wraps around midnight:
//
//	23:59:59 + 00:00:02 = 00:00:01
//	00:00:00 - 00:00:01 = 23:59:59
//
// Duration arithmetic clamps at zero and saturates at math.MaxInt64 seconds.
// Arithmetic never fails.
//
// Values are plain comparable structs. They are safe for concurrent use and
// may be used as map keys.
package daytime
