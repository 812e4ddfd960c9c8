package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"subjectid/internal/pipeline"
	"subjectid/internal/textutil"
)

// Column headers in every export, matching the original mapping layout.
const (
	NameColumn = "Name"
	IDColumn   = "ID"
)

// Format selects the output serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates an output format token.
func ParseFormat(token string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(token))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (valid: csv, xlsx)", token)
	}
}

// Options adjusts serialization behavior.
type Options struct {
	// Delimiter separates CSV fields. Zero means comma.
	Delimiter rune
	// SortByName orders rows by name instead of table order.
	SortByName bool
}

// DefaultFilename returns the conventional output name for a format,
// sanitized for the filesystem.
func DefaultFilename(format Format) string {
	return textutil.SanitizeFileName("subject_id_mapping." + string(format))
}

// Write serializes records to w in the given format.
func Write(w io.Writer, format Format, records []pipeline.Record, opts Options) error {
	records = orderRecords(records, opts)
	switch format {
	case FormatCSV:
		return writeCSV(w, records, opts)
	case FormatXLSX:
		return writeXLSX(w, records)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// ToFile serializes records to a file at path, creating or truncating it.
func ToFile(path string, format Format, records []pipeline.Record, opts Options) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Write(file, format, records, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func orderRecords(records []pipeline.Record, opts Options) []pipeline.Record {
	if !opts.SortByName {
		return records
	}
	sorted := append([]pipeline.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
