package commands

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/daytime-project/daytime-go/pkg/calc"
	"github.com/daytime-project/daytime-go/pkg/log"
	"github.com/daytime-project/daytime-go/pkg/wire"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func testEvent(t *testing.T, ts time.Time, runID string, source log.Source, text string) log.Event {
	t.Helper()
	expr, err := calc.ParseExpr(text)
	var res calc.Result
	if err == nil {
		res, err = calc.Evaluate(expr)
	}
	e := log.NewRecordEvent(source, wire.NewRecord(runID, "", text, expr, res, err))
	e.Timestamp = ts
	return e
}

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}
