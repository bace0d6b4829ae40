// Command daytime parses, compares and does arithmetic on times of day and
// durations.
//
// Usage:
//
//	daytime <command> [flags] [args]
//
// Commands:
//
//	parse    Show the canonical form and components of a value
//	calc     Evaluate one expression
//	now      Print the current time of day
//	until    Print the duration until the next occurrence of a time
//	since    Print the duration since the last occurrence of a time
//	batch    Run YAML batch files of expressions
//	view     View an event log in human-readable format
//	export   Export an event log to JSONL or CSV
//	stats    Show statistics about an event log
//	repl     Start the interactive shell
//
// Examples:
//
//	daytime calc time 23:30:0 + duration 1:0:0
//	daytime until 7:0:0
//	daytime batch -workers 8 -o records.cbor nightly.yaml
//	DAYTIME_EVENT_LOG=events.dlog daytime repl
//	daytime view -category error events.dlog
//
// Configuration is read from DAYTIME_LOG_LEVEL, DAYTIME_LOG_FORMAT,
// DAYTIME_WORKERS, DAYTIME_EVENT_LOG and DAYTIME_PROMPT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/daytime-project/daytime-go/cmd/daytime/commands"
	"github.com/daytime-project/daytime-go/cmd/daytime/interactive"
	"github.com/daytime-project/daytime-go/internal/config"
	"github.com/daytime-project/daytime-go/pkg/log"
	"github.com/daytime-project/daytime-go/pkg/wallclock"
)

const usage = `daytime - time of day and duration calculator

Usage:
  daytime <command> [flags] [args]

Commands:
  parse    Show the canonical form and components of a value
  calc     Evaluate one expression
  now      Print the current time of day
  until    Print the duration until the next occurrence of a time
  since    Print the duration since the last occurrence of a time
  batch    Run YAML batch files of expressions
  view     View an event log in human-readable format
  export   Export an event log to JSONL or CSV
  stats    Show statistics about an event log
  repl     Start the interactive shell

Use "daytime <command> -help" for more information about a command.
`

// app holds what every command shares.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	events log.Logger
	close  func()
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code := a.run(cmd, args)
	a.close()
	os.Exit(code)
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: cfg.Level()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger, events: log.NewSlogAdapter(logger), close: func() {}}

	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, fmt.Errorf("failed to open event log: %w", err)
		}
		a.events = log.NewMultiLogger(fl, a.events)
		a.close = func() {
			if err := fl.Close(); err != nil {
				logger.Warn("closing event log", "path", cfg.EventLog, "error", err)
			}
		}
		logger.Debug("event log enabled", "path", cfg.EventLog)
	}
	return a, nil
}

func (a *app) run(cmd string, args []string) int {
	switch cmd {
	case "parse":
		return a.runParse(args)
	case "calc":
		return a.runCalc(args)
	case "now":
		commands.RunNow(wallclock.System{}, os.Stdout)
		return 0
	case "until", "since":
		return a.runClock(cmd, args)
	case "batch":
		return a.runBatch(args)
	case "view":
		return runView(args)
	case "export":
		return runExport(args)
	case "stats":
		return runStats(args)
	case "repl":
		return a.runREPL()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		return 1
	}
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

func (a *app) runParse(args []string) int {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `daytime parse - Show the canonical form and components of a value

Usage:
  daytime parse [flags] <h:mm:ss>

Flags:
`)
		fs.PrintDefaults()
	}

	kind := fs.String("kind", "time", "Value kind (time, duration)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one value required")
		fs.Usage()
		return 1
	}

	if err := commands.RunParse(*kind, fs.Arg(0), os.Stdout); err != nil {
		return fail(err)
	}
	return 0
}

func (a *app) runCalc(args []string) int {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `daytime calc - Evaluate one expression

Usage:
  daytime calc <kind> <h:mm:ss> <op> <kind> <h:mm:ss>

Kinds: time (t), duration (d)
Operators: + - == != < <= > >= <=>
`)
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expression required")
		fs.Usage()
		return 1
	}

	if err := commands.RunCalc(uuid.NewString(), fs.Args(), os.Stdout, a.events); err != nil {
		return fail(err)
	}
	return 0
}

func (a *app) runClock(cmd string, args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: daytime %s <h:mm:ss>\n", cmd)
		return 1
	}

	run := commands.RunUntil
	if cmd == "since" {
		run = commands.RunSince
	}
	if err := run(wallclock.System{}, args[0], os.Stdout); err != nil {
		return fail(err)
	}
	return 0
}

func (a *app) runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `daytime batch - Run YAML batch files of expressions

Usage:
  daytime batch [flags] <file.yaml>...

Exits with status 2 when any case fails.

Flags:
`)
		fs.PrintDefaults()
	}

	workers := fs.Int("workers", a.cfg.Workers, "Concurrent evaluations")
	output := fs.String("o", "", "Write CBOR records to this file")
	format := fs.String("format", "text", "Report format (text, json)")
	timeout := fs.Duration("timeout", 0, "Abort the run after this long (0 for no limit)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one batch file required")
		fs.Usage()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	failed, err := commands.RunBatch(ctx, fs.Args(), commands.BatchOptions{
		Workers: *workers,
		Output:  *output,
		Format:  *format,
		Events:  a.events,
		Logger:  a.logger,
	}, os.Stdout)
	if err != nil {
		return fail(err)
	}
	if failed > 0 {
		return 2
	}
	return 0
}

func (a *app) runREPL() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	sh, err := interactive.New(interactive.Config{
		Prompt: a.cfg.Prompt,
		Events: a.events,
	})
	if err != nil {
		return fail(err)
	}

	a.logger.Debug("repl started", "session_id", sh.SessionID())

	sh.Run(ctx)
	return 0
}

func runView(args []string) int {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `daytime view - View an event log in human-readable format

Usage:
  daytime view [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}

	runID := fs.String("run", "", "Filter by run or session ID")
	source := fs.String("source", "", "Filter by source (cli, batch, repl)")
	category := fs.String("category", "", "Filter by category (eval, check, error)")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		return 1
	}

	filter := log.Filter{RunID: *runID}

	var err error
	if filter.Source, err = commands.ParseSourceFlag(*source); err != nil {
		return fail(err)
	}
	if filter.Category, err = commands.ParseCategoryFlag(*category); err != nil {
		return fail(err)
	}
	if filter.TimeStart, err = parseTimeFlag(*timeStart); err != nil {
		return fail(err)
	}
	if filter.TimeEnd, err = parseTimeFlag(*timeEnd); err != nil {
		return fail(err)
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		return fail(err)
	}
	return 0
}

func parseTimeFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return &t, nil
}

func runExport(args []string) int {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `daytime export - Export an event log to JSONL or CSV

Usage:
  daytime export [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		return 1
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		return fail(err)
	}
	return 0
}

func runStats(args []string) int {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `daytime stats - Show statistics about an event log

Usage:
  daytime stats <file.dlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		return 1
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		return fail(err)
	}
	return 0
}
