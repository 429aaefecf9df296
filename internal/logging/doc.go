// Package logging builds the slog loggers used by cdinventory.
//
// Loggers write either a compact console line format or JSON to a single file,
// rotated by size through lumberjack. An interactive session tags every line
// with a session_id so runs can be told apart in the shared log. NewNop serves
// tests and code paths that have no log directory configured.
package logging
