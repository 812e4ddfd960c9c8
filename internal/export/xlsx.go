package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"subjectid/internal/pipeline"
)

// SheetName is the worksheet holding the exported mapping.
const SheetName = "Subject Mapping"

const (
	minColumnWidth = 8
	maxColumnWidth = 50
)

func writeXLSX(w io.Writer, records []pipeline.Record) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName(book.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := book.SetSheetRow(SheetName, "A1", &[]any{NameColumn, IDColumn}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := book.SetSheetRow(SheetName, cell, &[]any{record.Name, record.Identifier}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	headerStyle, err := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("build header style: %w", err)
	}
	if err := book.SetCellStyle(SheetName, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	if err := sizeColumns(book, records); err != nil {
		return err
	}

	if err := book.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// sizeColumns widens each column to its longest value plus padding, within
// bounds, so exports open readable without manual resizing.
func sizeColumns(book *excelize.File, records []pipeline.Record) error {
	nameWidth := len(NameColumn)
	idWidth := len(IDColumn)
	for _, record := range records {
		if n := len(record.Name); n > nameWidth {
			nameWidth = n
		}
		if n := len(record.Identifier); n > idWidth {
			idWidth = n
		}
	}

	for column, width := range map[string]int{"A": nameWidth, "B": idWidth} {
		padded := width + 2
		if padded < minColumnWidth {
			padded = minColumnWidth
		}
		if padded > maxColumnWidth {
			padded = maxColumnWidth
		}
		if err := book.SetColWidth(SheetName, column, column, float64(padded)); err != nil {
			return fmt.Errorf("size column %s: %w", column, err)
		}
	}
	return nil
}
