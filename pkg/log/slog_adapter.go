package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger.
// Useful for development when you want to see evaluations in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn for errors and failed checks.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("source", event.Source.String()),
		slog.String("category", event.Category.String()),
	}

	level := slog.LevelDebug
	if event.Category == CategoryError {
		level = slog.LevelWarn
	}

	if rec := event.Record; rec != nil {
		if rec.Name != "" {
			attrs = append(attrs, slog.String("case", rec.Name))
		}
		attrs = append(attrs,
			slog.String("expr", rec.Expr),
			slog.String("outcome", rec.Outcome()),
		)
		if rec.Expect != "" {
			attrs = append(attrs, slog.String("expect", rec.Expect))
		}
		if rec.Passed != nil {
			attrs = append(attrs, slog.Bool("passed", *rec.Passed))
			if !*rec.Passed {
				level = slog.LevelWarn
			}
		}
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("message", event.Message))
	}

	a.logger.LogAttrs(context.Background(), level, "daytime event", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
