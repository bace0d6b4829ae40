package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/daytime-project/daytime-go/pkg/log"
)

// exportEvent is the JSON shape of an exported event.
type exportEvent struct {
	Timestamp string `json:"timestamp"`
	RunID     string `json:"run_id"`
	Source    string `json:"source"`
	Category  string `json:"category"`
	Case      string `json:"case,omitempty"`
	Expr      string `json:"expr,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Expect    string `json:"expect,omitempty"`
	Passed    *bool  `json:"passed,omitempty"`
	Message   string `json:"message,omitempty"`
}

func toExport(event log.Event) exportEvent {
	out := exportEvent{
		Timestamp: event.Timestamp.UTC().Format(timestampLayout),
		RunID:     event.RunID,
		Source:    event.Source.String(),
		Category:  event.Category.String(),
		Message:   event.Message,
	}
	if rec := event.Record; rec != nil {
		out.Case = rec.Name
		out.Expr = rec.Expr
		out.Outcome = rec.Outcome()
		out.Expect = rec.Expect
		out.Passed = rec.Passed
	}
	return out
}

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toExport(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "run_id", "source", "category", "case", "expr", "outcome", "expect", "passed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		e := toExport(event)
		passed := ""
		if e.Passed != nil {
			passed = strconv.FormatBool(*e.Passed)
		}
		outcome := e.Outcome
		if outcome == "" {
			outcome = e.Message
		}
		row := []string{e.Timestamp, e.RunID, e.Source, e.Category, e.Case, e.Expr, outcome, e.Expect, passed}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
