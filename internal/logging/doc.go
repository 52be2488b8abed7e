// Package logging assembles the structured slog loggers used by the CLI and
// the export engine.
//
// Console output is slog text with short timestamps; json output uses ts/level/msg
// keys suitable for log shippers. The "auto" format picks console when writing
// to a terminal.
package logging
