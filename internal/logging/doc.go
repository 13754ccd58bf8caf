// Package logging builds the slog loggers used across renderpub: a
// console handler with aligned key=value fields for interactive use
// and a JSON handler for log files, plus small attribute helpers so
// call sites stay terse.
package logging
