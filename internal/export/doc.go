// Package export serializes a finished name-to-identifier table to CSV or
// XLSX. Both writers emit the same two columns, Name and ID, in table order
// or sorted by name. The XLSX writer styles the header row and sizes columns
// to their content, mirroring what a spreadsheet user expects to open.
package export
