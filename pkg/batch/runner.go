package batch

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daytime-project/daytime-go/pkg/calc"
	"github.com/daytime-project/daytime-go/pkg/daytime"
	"github.com/daytime-project/daytime-go/pkg/log"
	"github.com/daytime-project/daytime-go/pkg/wire"
)

// DefaultWorkers bounds concurrent evaluations when Runner.Workers is zero.
const DefaultWorkers = 4

// Runner evaluates batch files.
type Runner struct {
	// Workers bounds concurrent evaluations.
	Workers int

	// Events receives one event per case. Nil disables event logging.
	Events log.Logger

	// Logger receives operational messages. Nil uses slog.Default().
	Logger *slog.Logger

	// NewRunID generates run IDs. Nil uses uuid.NewString.
	NewRunID func() string
}

// Outcome is the result of one case.
type Outcome struct {
	File   string
	Case   Case
	Record *wire.Record
	Passed bool
}

// Report collects the outcomes of a run in file and case order.
type Report struct {
	RunID    string
	Started  time.Time
	Elapsed  time.Duration
	Outcomes []Outcome
}

// Passed returns the number of passing cases.
func (r *Report) Passed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failing cases.
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Passed()
}

// Records returns the wire records of all outcomes.
func (r *Report) Records() []*wire.Record {
	out := make([]*wire.Record, len(r.Outcomes))
	for i, o := range r.Outcomes {
		out[i] = o.Record
	}
	return out
}

// Run evaluates every case of every file. It returns an error only when ctx
// is cancelled; failing cases are reported in the Report. After a
// cancellation the Report holds only the cases that completed.
func (r *Runner) Run(ctx context.Context, files ...*File) (*Report, error) {
	newID := r.NewRunID
	if newID == nil {
		newID = uuid.NewString
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	events := r.Events
	if events == nil {
		events = log.NoopLogger{}
	}
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	report := &Report{RunID: newID(), Started: time.Now()}

	type job struct {
		file string
		c    Case
	}
	var jobs []job
	for _, f := range files {
		for _, c := range f.Cases {
			jobs = append(jobs, job{file: f.Name, c: c})
		}
	}
	report.Outcomes = make([]Outcome, len(jobs))

	logger.Info("batch run started", "run_id", report.RunID, "files", len(files), "cases", len(jobs), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, j := range jobs {
		i, j := i, j
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := runCase(report.RunID, j.file, j.c)
			report.Outcomes[i] = out
			events.Log(log.NewRecordEvent(log.SourceBatch, out.Record))
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	report.Elapsed = time.Since(report.Started)
	if err != nil {
		report.Outcomes = slices.DeleteFunc(report.Outcomes, func(o Outcome) bool { return o.Record == nil })
		logger.Warn("batch run aborted", "run_id", report.RunID, "completed", len(report.Outcomes), "error", err)
		return report, err
	}

	logger.Info("batch run finished", "run_id", report.RunID,
		"passed", report.Passed(), "failed", report.Failed(), "elapsed", report.Elapsed)
	return report, nil
}

func runCase(runID, file string, c Case) Outcome {
	expr, err := calc.ParseExpr(c.Expr)
	var res calc.Result
	if err == nil {
		res, err = calc.Evaluate(expr)
	}

	rec := wire.NewRecord(runID, c.Name, c.Expr, expr, res, err)

	passed := err == nil
	switch {
	case c.Error != "":
		passed = matchesError(err, c.Error)
	case c.Expect != "":
		passed = err == nil && matchesExpect(res, c.Expect)
	}

	if c.Expect != "" || c.Error != "" {
		rec.Expect = c.Expect
		if c.Error != "" {
			rec.Expect = "error: " + c.Error
		}
		rec.Passed = &passed
	}

	return Outcome{File: file, Case: c, Record: rec, Passed: passed}
}

func matchesExpect(res calc.Result, expect string) bool {
	if res.Kind == calc.ResultValue {
		want, err := calc.ParseValue(res.Value.Kind(), expect)
		return err == nil && want.Equal(res.Value)
	}
	return res.String() == expect
}

func matchesError(err error, kind string) bool {
	if err == nil {
		return false
	}
	switch kind {
	case ErrorFormat:
		return errors.Is(err, daytime.ErrFormat)
	case ErrorRange:
		return errors.Is(err, daytime.ErrRange)
	case ErrorSyntax:
		return errors.Is(err, calc.ErrSyntax) || errors.Is(err, calc.ErrUnknownOp) || errors.Is(err, calc.ErrUnknownKind)
	case ErrorKind:
		return errors.Is(err, calc.ErrKindMismatch)
	default:
		return false
	}
}
