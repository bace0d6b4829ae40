package log

import (
	"testing"

	"github.com/daytime-project/daytime-go/pkg/calc"
	"github.com/daytime-project/daytime-go/pkg/wire"
)

func testRecord(t *testing.T, runID, text string) *wire.Record {
	t.Helper()
	expr, err := calc.ParseExpr(text)
	if err != nil {
		return wire.NewRecord(runID, "", text, calc.Expr{}, calc.Result{}, err)
	}
	res, err := calc.Evaluate(expr)
	return wire.NewRecord(runID, "", text, expr, res, err)
}
