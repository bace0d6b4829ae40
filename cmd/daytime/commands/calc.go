package commands

import (
	"fmt"
	"io"

	"github.com/daytime-project/daytime-go/pkg/calc"
	"github.com/daytime-project/daytime-go/pkg/log"
	"github.com/daytime-project/daytime-go/pkg/wire"
)

// RunCalc evaluates one expression, prints the result and logs a CLI event
// under runID. The evaluation error, if any, is returned after logging.
func RunCalc(runID string, args []string, w io.Writer, events log.Logger) error {
	text := joinArgs(args)

	expr, err := calc.ParseExpr(text)
	var res calc.Result
	if err == nil {
		res, err = calc.Evaluate(expr)
	}

	if events != nil {
		events.Log(log.NewRecordEvent(log.SourceCLI, wire.NewRecord(runID, "calc", text, expr, res, err)))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, res)
	return nil
}
