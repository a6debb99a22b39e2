// Package logging builds the structured slog loggers used by the CLI and
// pipeline.
//
// Two output formats are supported: a compact console format for interactive
// use (colorized when stdout is a terminal) and JSON for machine consumption.
// Attribute helpers mirror the slog constructors so call sites stay terse.
package logging
