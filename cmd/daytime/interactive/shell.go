// Package interactive provides the daytime read-eval-print loop.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/daytime-project/daytime-go/cmd/daytime/commands"
	"github.com/daytime-project/daytime-go/pkg/calc"
	"github.com/daytime-project/daytime-go/pkg/log"
	"github.com/daytime-project/daytime-go/pkg/wallclock"
	"github.com/daytime-project/daytime-go/pkg/wire"
)

// lastToken stands for the previous result inside an expression.
const lastToken = "_"

// Config configures a Shell.
type Config struct {
	// Prompt defaults to "daytime> ".
	Prompt string

	// Events receives one REPL event per evaluated expression.
	Events log.Logger

	// Clock backs now, until and since. Defaults to the system clock.
	Clock wallclock.Clock

	// SessionID tags logged events. Defaults to a new UUID.
	SessionID string
}

// Shell evaluates expressions and commands typed by the user.
type Shell struct {
	cfg   Config
	rl    *readline.Instance
	last  calc.Value
	evals int
}

// New creates a Shell reading from the terminal.
func New(cfg Config) (*Shell, error) {
	s := newShell(cfg)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.cfg.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	return s, nil
}

func newShell(cfg Config) *Shell {
	if cfg.Prompt == "" {
		cfg.Prompt = "daytime> "
	}
	if cfg.Events == nil {
		cfg.Events = log.NoopLogger{}
	}
	if cfg.Clock == nil {
		cfg.Clock = wallclock.System{}
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	return &Shell{cfg: cfg}
}

func completer() *readline.PrefixCompleter {
	kinds := func() []readline.PrefixCompleterInterface {
		return []readline.PrefixCompleterInterface{readline.PcItem("time"), readline.PcItem("duration")}
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("parse", kinds()...),
		readline.PcItem("now"),
		readline.PcItem("until"),
		readline.PcItem("since"),
		readline.PcItem("last"),
		readline.PcItem("quit"),
		readline.PcItem("time"),
		readline.PcItem("duration"),
	)
}

// SessionID returns the ID attached to logged events.
func (s *Shell) SessionID() string {
	return s.cfg.SessionID
}

// Run reads lines until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	out := s.rl.Stdout()
	fmt.Fprintf(out, "daytime session %s (type 'help' for commands)\n", s.cfg.SessionID)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return
		}

		if !s.Execute(line, out) {
			fmt.Fprintln(out, "Exiting...")
			return
		}
	}
}

// Execute handles one input line, writing any output to w. It returns false
// when the line asks to leave the shell.
func (s *Shell) Execute(line string, w io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" || strings.HasPrefix(input, "#") {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		printHelp(w)

	case "quit", "exit", "q":
		return false

	case "now":
		commands.RunNow(s.cfg.Clock, w)

	case "until", "since":
		if len(args) != 1 {
			fmt.Fprintf(w, "Usage: %s <h:mm:ss>\n", cmd)
			return true
		}
		run := commands.RunUntil
		if cmd == "since" {
			run = commands.RunSince
		}
		if err := run(s.cfg.Clock, args[0], w); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}

	case "parse", "p":
		if len(args) != 2 {
			fmt.Fprintln(w, "Usage: parse <time|duration> <h:mm:ss>")
			return true
		}
		if err := commands.RunParse(args[0], args[1], w); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}

	case "last":
		if !s.last.IsValid() {
			fmt.Fprintln(w, "No result yet")
			return true
		}
		fmt.Fprintf(w, "%s %s\n", s.last.Kind(), s.last)

	default:
		s.evaluate(parts, w)
	}
	return true
}

// evaluate runs an expression, substituting the previous result for "_".
func (s *Shell) evaluate(parts []string, w io.Writer) {
	fields := make([]string, 0, len(parts)+2)
	for _, p := range parts {
		if p != lastToken {
			fields = append(fields, p)
			continue
		}
		if !s.last.IsValid() {
			fmt.Fprintln(w, "Error: no previous result for _")
			return
		}
		fields = append(fields, s.last.Kind().String(), s.last.String())
	}
	text := strings.Join(fields, " ")

	expr, err := calc.ParseExpr(text)
	var res calc.Result
	if err == nil {
		res, err = calc.Evaluate(expr)
	}

	s.evals++
	name := fmt.Sprintf("repl-%d", s.evals)
	s.cfg.Events.Log(log.NewRecordEvent(log.SourceREPL, wire.NewRecord(s.cfg.SessionID, name, text, expr, res, err)))

	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if res.Kind == calc.ResultValue {
		s.last = res.Value
	}
	fmt.Fprintln(w, res)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `
daytime Commands:
  Expressions:
    <kind> <h:mm:ss> <op> <kind> <h:mm:ss>
        kind: time (t) or duration (d)
        op:   + - == != < <= > >= <=>
    _                  - Previous result, usable as an operand
    last               - Show the previous result

  Values:
    parse <kind> <v>   - Show a value's canonical form and components

  Wall clock:
    now                - Current time of day
    until <h:mm:ss>    - Time until the next occurrence
    since <h:mm:ss>    - Time since the last occurrence

  General:
    help               - Show this help
    quit               - Exit

  Examples:
    time 23:30:0 + duration 1:0:0
    _ - time 0:15:0`)
}
