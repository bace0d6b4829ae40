package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/daytime-project/daytime-go/pkg/log"
)

// Stats holds aggregate statistics about an event log.
type Stats struct {
	TotalEvents      int
	EventsBySource   map[log.Source]int
	EventsByCategory map[log.Category]int
	Runs             map[string]*RunSummary
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunSummary holds statistics for a single run.
type RunSummary struct {
	Source    log.Source
	FirstSeen time.Time
	Events    int
	Passed    int
	Failed    int
	Errors    int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func collectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsBySource:   make(map[log.Source]int),
		EventsByCategory: make(map[log.Category]int),
		Runs:             make(map[string]*RunSummary),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsBySource[event.Source]++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			run = &RunSummary{Source: event.Source, FirstSeen: event.Timestamp}
			stats.Runs[event.RunID] = run
		}
		run.Events++
		if event.Category == log.CategoryError {
			run.Errors++
		}
		if rec := event.Record; rec != nil && rec.Passed != nil {
			if *rec.Passed {
				run.Passed++
			} else {
				run.Failed++
			}
		}
	}
	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)
	if stats.TotalEvents == 0 {
		return
	}
	fmt.Fprintf(w, "Time range:   %s - %s\n",
		stats.TimeRange.Start.UTC().Format(timestampLayout),
		stats.TimeRange.End.UTC().Format(timestampLayout))

	fmt.Fprintln(w, "\nBy source:")
	for _, s := range []log.Source{log.SourceCLI, log.SourceBatch, log.SourceREPL} {
		if n := stats.EventsBySource[s]; n > 0 {
			fmt.Fprintf(w, "  %-6s %d\n", s, n)
		}
	}

	fmt.Fprintln(w, "\nBy category:")
	for _, c := range []log.Category{log.CategoryEval, log.CategoryCheck, log.CategoryError} {
		if n := stats.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %-6s %d\n", c, n)
		}
	}

	ids := make([]string, 0, len(stats.Runs))
	for id := range stats.Runs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return stats.Runs[ids[i]].FirstSeen.Before(stats.Runs[ids[j]].FirstSeen)
	})

	fmt.Fprintf(w, "\nRuns: %d\n", len(ids))
	for _, id := range ids {
		r := stats.Runs[id]
		fmt.Fprintf(w, "  %s %-5s events=%d passed=%d failed=%d errors=%d\n",
			shortenRunID(id), r.Source, r.Events, r.Passed, r.Failed, r.Errors)
	}
}
