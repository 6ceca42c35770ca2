// Package logging assembles the structured slog loggers used across the
// sync pipeline.
//
// It owns the console and JSON handlers, level parsing, and the
// standardized field keys (component, run_id, source, path) so every
// package emits log lines with the same shape. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
