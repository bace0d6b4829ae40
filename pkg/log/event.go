package log

import (
	"fmt"
	"strings"
	"time"

	"github.com/daytime-project/daytime-go/pkg/wire"
)

// Event is one entry of the evaluation log.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the batch run or REPL session (UUID).
	RunID string `cbor:"2,keyasint"`

	// Source is the tool that produced the event.
	Source Source `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Record is the evaluated expression, if any.
	Record *wire.Record `cbor:"5,keyasint,omitempty"`

	// Message carries free text for errors not tied to an expression,
	// such as a batch file that failed to load.
	Message string `cbor:"6,keyasint,omitempty"`
}

// NewRecordEvent wraps a record, deriving the category from its outcome.
func NewRecordEvent(source Source, rec *wire.Record) Event {
	return Event{
		Timestamp: time.Now(),
		RunID:     rec.RunID,
		Source:    source,
		Category:  CategoryFor(rec),
		Record:    rec,
	}
}

// NewErrorEvent records a failure that is not tied to an expression, such as
// a batch file that could not be loaded.
func NewErrorEvent(source Source, runID string, err error) Event {
	return Event{
		Timestamp: time.Now(),
		RunID:     runID,
		Source:    source,
		Category:  CategoryError,
		Message:   err.Error(),
	}
}

// Source identifies the producer of an event.
type Source uint8

const (
	// SourceCLI is a one-shot command such as "daytime calc".
	SourceCLI Source = 0
	// SourceBatch is the batch runner.
	SourceBatch Source = 1
	// SourceREPL is the interactive shell.
	SourceREPL Source = 2
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceCLI:
		return "CLI"
	case SourceBatch:
		return "BATCH"
	case SourceREPL:
		return "REPL"
	default:
		return "UNKNOWN"
	}
}

// ParseSource parses a source name, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "cli":
		return SourceCLI, nil
	case "batch":
		return SourceBatch, nil
	case "repl":
		return SourceREPL, nil
	default:
		return 0, fmt.Errorf("unknown source: %s (valid: cli, batch, repl)", s)
	}
}

// Category classifies events.
type Category uint8

const (
	// CategoryEval is a successful evaluation without an expectation.
	CategoryEval Category = 0
	// CategoryCheck is an evaluation compared against an expectation.
	CategoryCheck Category = 1
	// CategoryError is a failed evaluation or a tool error.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryEval:
		return "EVAL"
	case CategoryCheck:
		return "CHECK"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "eval":
		return CategoryEval, nil
	case "check":
		return CategoryCheck, nil
	case "error":
		return CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category: %s (valid: eval, check, error)", s)
	}
}

// CategoryFor derives the category of a record. A checked record whose
// error was expected is still a CHECK.
func CategoryFor(rec *wire.Record) Category {
	switch {
	case rec.Passed != nil:
		return CategoryCheck
	case rec.Error != "":
		return CategoryError
	default:
		return CategoryEval
	}
}
