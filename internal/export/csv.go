package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"subjectid/internal/pipeline"
)

func writeCSV(w io.Writer, records []pipeline.Record, opts Options) error {
	writer := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}

	if err := writer.Write([]string{NameColumn, IDColumn}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write([]string{record.Name, record.Identifier}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
