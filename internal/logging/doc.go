// Package logging assembles the structured slog loggers used across the
// enrichment pipeline.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes attr aliases plus shared field name constants so every stage emits
// progress and fault lines with the same shape. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
