// Package logging assembles structured slog loggers for subscore.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes context helpers so every line emitted during one CLI invocation
// carries the same correlation id. A no-op logger is available for tests and
// for library callers that do not want output.
package logging
