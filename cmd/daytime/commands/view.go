package commands

import (
	"fmt"
	"io"

	"github.com/daytime-project/daytime-go/pkg/log"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// ParseSourceFlag parses a source name for the -source flag.
func ParseSourceFlag(s string) (*log.Source, error) {
	if s == "" {
		return nil, nil
	}
	src, err := log.ParseSource(s)
	if err != nil {
		return nil, err
	}
	return &src, nil
}

// ParseCategoryFlag parses a category name for the -category flag.
func ParseCategoryFlag(s string) (*log.Category, error) {
	if s == "" {
		return nil, nil
	}
	c, err := log.ParseCategory(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timestampLayout)
	fmt.Fprintf(w, "%s [run:%s] %-5s %s\n", ts, shortenRunID(event.RunID), event.Source, event.Category)

	if rec := event.Record; rec != nil {
		if rec.Name != "" {
			fmt.Fprintf(w, "  Case: %s\n", rec.Name)
		}
		fmt.Fprintf(w, "  Expr: %s\n", rec.Expr)
		fmt.Fprintf(w, "  Result: %s\n", rec.Outcome())
		if rec.Expect != "" {
			fmt.Fprintf(w, "  Expect: %s\n", rec.Expect)
		}
		if rec.Passed != nil {
			fmt.Fprintf(w, "  Passed: %v\n", *rec.Passed)
		}
	}
	if event.Message != "" {
		fmt.Fprintf(w, "  Message: %s\n", event.Message)
	}

	fmt.Fprintln(w)
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// RunView prints every event matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
