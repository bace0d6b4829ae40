// Package commands implements the daytime CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/daytime-project/daytime-go/pkg/calc"
)

// RunParse parses text as the given kind and prints its canonical form and
// components.
func RunParse(kind, text string, w io.Writer) error {
	k, err := calc.ParseKind(kind)
	if err != nil {
		return err
	}
	v, err := calc.ParseValue(k, text)
	if err != nil {
		return err
	}
	formatValue(w, v)
	return nil
}

func formatValue(w io.Writer, v calc.Value) {
	fmt.Fprintf(w, "%s %s\n", v.Kind(), v)
	if t, ok := v.Clock(); ok {
		fmt.Fprintf(w, "  hours:          %d\n", t.Hours())
		fmt.Fprintf(w, "  minutes:        %d\n", t.Minutes())
		fmt.Fprintf(w, "  seconds:        %d\n", t.Seconds())
		fmt.Fprintf(w, "  since midnight: %d s\n", t.SecondsSinceMidnight())
		return
	}
	d, _ := v.Duration()
	fmt.Fprintf(w, "  hours:          %d\n", d.Hours())
	fmt.Fprintf(w, "  minutes:        %d\n", d.Minutes())
	fmt.Fprintf(w, "  seconds:        %d\n", d.Seconds())
	fmt.Fprintf(w, "  total:          %d s\n", d.TotalSeconds())
}

// joinArgs accepts an expression split across arguments or passed as one.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
