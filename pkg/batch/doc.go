// Package batch runs files of daytime expressions with expected results.
//
// A batch file is YAML:
//
//	name: shift arithmetic
//	cases:
//	  - name: wraps past midnight
//	    expr: time 23:59:59 + duration 0:0:2
//	    expect: "00:00:01"
//	  - name: no 25 o'clock
//	    expr: time 25:00:00 + duration 0:0:0
//	    error: range
//
// expect is compared against the rendered result; times and durations are
// compared by value, so "0:0:1" matches "00:00:01". error names the expected
// failure: format, range, syntax or kind.
//
// The Runner evaluates cases concurrently but reports them in file order.
package batch
