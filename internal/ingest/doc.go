// Package ingest extracts raw name lists from user-supplied files.
//
// Three formats are supported: CSV (comma- or newline-separated, first
// column of tabular data), plain text (comma- or newline-separated), and
// XLSX workbooks, where the name column is located by a case-insensitive
// priority match over Name, Subject, then Trial. The parser validates
// extension and file size up front, drops blank cells, and caps the result
// at the configured maximum; everything else is handed to the pipeline raw,
// which owns normalization and rejection.
package ingest
