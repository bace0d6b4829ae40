// Package calc evaluates binary expressions over daytime values.
//
// An expression names the kind of each operand explicitly:
//
//	time 23:59:59 + duration 0:0:2     => 00:00:01
//	duration 23:00:00 + time 2:00:00   => 25:00:00
//	time 08:00:00 < time 09:30:00      => true
//	duration 1:00:00 <=> duration 0:30:00 => 1
//
// Kinds may be abbreviated to "t" and "d". Arithmetic follows the daytime
// rules: the left operand's kind decides the result kind, times wrap at
// midnight and durations clamp at zero. Comparisons require operands of the
// same kind.
package calc
