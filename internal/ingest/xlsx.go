package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// columnCandidates are the accepted workbook header names, in priority
// order. Matching is case-insensitive against the trimmed header cell.
var columnCandidates = []string{"Name", "Subject", "Trial"}

// ColumnCandidates returns the recognized workbook header names in priority
// order.
func ColumnCandidates() []string {
	return append([]string(nil), columnCandidates...)
}

// parseXLSX extracts names from the first sheet of a workbook. The name
// column is located by matching the header row against the candidate list;
// cells below it are collected in row order, blanks skipped.
func parseXLSX(path string) (Result, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w: sheet %q is empty (expected a header row with one of %s)",
			ErrNoNameColumn, sheets[0], strings.Join(columnCandidates, ", "))
	}

	index, header := matchColumn(rows[0])
	if index < 0 {
		return Result{}, fmt.Errorf("%w: sheet %q has none of the columns %s",
			ErrNoNameColumn, sheets[0], strings.Join(columnCandidates, ", "))
	}

	var names []string
	for _, row := range rows[1:] {
		if index >= len(row) {
			continue
		}
		if value, ok := keepCell(row[index]); ok {
			names = append(names, value)
		}
	}

	return Result{Names: names, Format: FormatXLSX, Column: header}, nil
}

// matchColumn returns the index and original header text of the highest
// priority candidate present in the header row, or -1 when none match.
func matchColumn(header []string) (int, string) {
	for _, candidate := range columnCandidates {
		for i, cell := range header {
			if strings.EqualFold(strings.TrimSpace(cell), candidate) {
				return i, strings.TrimSpace(cell)
			}
		}
	}
	return -1, ""
}
