package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/daytime-project/daytime-go/pkg/batch"
	"github.com/daytime-project/daytime-go/pkg/log"
	"github.com/daytime-project/daytime-go/pkg/wire"
)

// BatchOptions configures the batch command.
type BatchOptions struct {
	Workers int
	Output  string // CBOR record stream, empty to skip
	Format  string // text or json
	Events  log.Logger
	Logger  *slog.Logger
}

// RunBatch loads and runs the batch files, prints the report and returns the
// number of failed cases.
func RunBatch(ctx context.Context, paths []string, opts BatchOptions, w io.Writer) (int, error) {
	switch opts.Format {
	case "", "text", "json":
	default:
		return 0, fmt.Errorf("unknown format: %s (supported: text, json)", opts.Format)
	}

	events := opts.Events
	if events == nil {
		events = log.NoopLogger{}
	}
	runID := uuid.NewString()

	files := make([]*batch.File, 0, len(paths))
	for _, p := range paths {
		f, err := batch.Load(p)
		if err != nil {
			events.Log(log.NewErrorEvent(log.SourceBatch, runID, err))
			return 0, err
		}
		files = append(files, f)
	}

	r := &batch.Runner{
		Workers:  opts.Workers,
		Events:   events,
		Logger:   opts.Logger,
		NewRunID: func() string { return runID },
	}
	report, err := r.Run(ctx, files...)
	if err != nil {
		events.Log(log.NewErrorEvent(log.SourceBatch, runID,
			fmt.Errorf("run aborted after %d cases: %w", len(report.Outcomes), err)))
		return 0, err
	}

	if opts.Output != "" {
		if err := writeRecords(opts.Output, report.Records()); err != nil {
			return 0, err
		}
	}

	if opts.Format == "json" {
		err = printReportJSON(w, report)
	} else {
		printReport(w, report)
	}
	return report.Failed(), err
}

func writeRecords(path string, records []*wire.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := wire.NewEncoder(f)
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return f.Close()
}

func printReport(w io.Writer, report *batch.Report) {
	for _, o := range report.Outcomes {
		status := "PASS"
		if !o.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s %s/%s: %s = %s", status, o.File, o.Case.Name, o.Case.Expr, o.Record.Outcome())
		if !o.Passed && o.Record.Expect != "" {
			fmt.Fprintf(w, " (want %s)", o.Record.Expect)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nrun %s: %d passed, %d failed in %s\n",
		report.RunID, report.Passed(), report.Failed(), report.Elapsed.Round(time.Microsecond))
}

type jsonOutcome struct {
	File    string `json:"file"`
	Case    string `json:"case"`
	Expr    string `json:"expr"`
	Outcome string `json:"outcome"`
	Expect  string `json:"expect,omitempty"`
	Passed  bool   `json:"passed"`
}

type jsonReport struct {
	RunID     string        `json:"run_id"`
	Started   string        `json:"started"`
	ElapsedMS int64         `json:"elapsed_ms"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Outcomes  []jsonOutcome `json:"outcomes"`
}

func printReportJSON(w io.Writer, report *batch.Report) error {
	out := jsonReport{
		RunID:     report.RunID,
		Started:   report.Started.UTC().Format("2006-01-02T15:04:05.000000Z"),
		ElapsedMS: report.Elapsed.Milliseconds(),
		Passed:    report.Passed(),
		Failed:    report.Failed(),
		Outcomes:  make([]jsonOutcome, 0, len(report.Outcomes)),
	}
	for _, o := range report.Outcomes {
		out.Outcomes = append(out.Outcomes, jsonOutcome{
			File:    o.File,
			Case:    o.Case.Name,
			Expr:    o.Case.Expr,
			Outcome: o.Record.Outcome(),
			Expect:  o.Record.Expect,
			Passed:  o.Passed,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
