// Package log records evaluation events for daytime tooling.
//
// Every expression evaluated by the batch runner or the REPL can be
// captured as an Event. This is separate from operational logging (slog):
// the event log is a machine-readable trace that the daytime CLI can view,
// filter and export afterwards.
//
// # Basic Usage
//
//	// Console output during development
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Binary trace file
//	fileLogger, _ := log.NewFileLogger("evals.dlog")
//
//	// Both
//	logger = log.NewMultiLogger(logger, fileLogger)
//
// # File Format
//
// Log files are a concatenation of CBOR encoded events, conventionally with
// the .dlog extension. Events embed wire.Record values, so operands are
// re-validated when read back.
package log
