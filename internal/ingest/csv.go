package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// parseCSV extracts names from CSV content. Layout is guessed from
// separator frequency: when commas dominate newlines the content is treated
// as tabular with a header row and names in the first column; otherwise each
// line (or comma-separated token) is one name.
func parseCSV(content string) (Result, error) {
	hasComma := strings.Contains(content, ",")
	hasNewline := strings.Contains(content, "\n")

	switch {
	case hasComma && hasNewline:
		if strings.Count(content, ",") > strings.Count(content, "\n") {
			names, err := parseCSVTable(content)
			if err != nil {
				return Result{}, err
			}
			return Result{Names: names, Format: FormatCSV}, nil
		}
		return Result{Names: splitLines(content), Format: FormatCSV}, nil
	case hasComma:
		return Result{Names: splitCommas(content), Format: FormatCSV}, nil
	default:
		return Result{Names: splitLines(content), Format: FormatCSV}, nil
	}
}

func parseCSVTable(content string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var names []string
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(record) == 0 {
			continue
		}
		if value, ok := keepCell(record[0]); ok {
			names = append(names, value)
		}
	}
	return names, nil
}

func splitLines(content string) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		if value, ok := keepCell(strings.TrimRight(line, "\r")); ok {
			names = append(names, value)
		}
	}
	return names
}

func splitCommas(content string) []string {
	var names []string
	for _, token := range strings.Split(content, ",") {
		if value, ok := keepCell(token); ok {
			names = append(names, value)
		}
	}
	return names
}
