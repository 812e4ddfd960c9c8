// Package logging builds the slog logger used across subjectid.
//
// Two output formats are supported: a human-oriented console handler with
// level coloring on terminals, and line-delimited JSON for machine
// consumption. Level and format come from configuration; when a log
// directory is configured the logger also appends to subjectid.log there.
package logging
