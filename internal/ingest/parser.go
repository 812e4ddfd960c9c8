package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat marks a file whose extension is not one of
	// .csv, .txt, or .xlsx.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrTooLarge marks an input file over the configured size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrNoNameColumn marks a workbook without any recognized name column.
	ErrNoNameColumn = errors.New("no name column")
)

// Format identifies a supported input file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatXLSX Format = "xlsx"
)

// Limits bounds what ParseFile will accept. Zero values mean unlimited.
type Limits struct {
	// MaxNames truncates the extracted list; the full count is still
	// reported on the result.
	MaxNames int
	// MaxBytes rejects files larger than this before parsing.
	MaxBytes int64
}

// Result carries the extracted names plus provenance for reporting.
type Result struct {
	// Names is the ordered raw name list, blank cells removed.
	Names []string
	// Format is the detected input format.
	Format Format
	// Column is the matched workbook column header, XLSX only.
	Column string
	// Total is the count before MaxNames truncation.
	Total int
	// Truncated reports whether MaxNames dropped entries.
	Truncated bool
}

// DetectFormat maps a filename to its input format by extension.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".txt":
		return FormatTXT, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: .csv, .txt, .xlsx)", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// ParseFile validates and parses the file at path, returning the raw names
// it contains.
func ParseFile(path string, limits Limits) (Result, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Result{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%s is a directory", path)
	}
	if limits.MaxBytes > 0 && info.Size() > limits.MaxBytes {
		return Result{}, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, info.Size(), limits.MaxBytes)
	}

	var result Result
	switch format {
	case FormatXLSX:
		result, err = parseXLSX(path)
	default:
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return Result{}, fmt.Errorf("read file: %w", readErr)
		}
		switch format {
		case FormatCSV:
			result, err = parseCSV(string(content))
		case FormatTXT:
			result = parseTXT(string(content))
		}
	}
	if err != nil {
		return Result{}, err
	}

	result.Total = len(result.Names)
	if limits.MaxNames > 0 && len(result.Names) > limits.MaxNames {
		result.Names = result.Names[:limits.MaxNames]
		result.Truncated = true
	}
	return result, nil
}

// keepCell trims a raw cell and reports whether it holds anything.
func keepCell(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
