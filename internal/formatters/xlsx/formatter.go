// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/formatters/shared"
	"fullname-parser/internal/personname"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the records
const SheetName = "names"

// Formatter implements Excel workbook output
type Formatter struct{}

// NewFormatter creates a new xlsx formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "xlsx"
}

func (f *Formatter) Description() string {
	return "Excel workbook with one row per name (binary, write to a file)"
}

func (f *Formatter) FileExtension() string {
	return ".xlsx"
}

// Format returns the workbook bytes as a string
func (f *Formatter) Format(records []personname.Record, options formatters.FormatterOptions) (string, error) {
	book := excelize.NewFile()
	defer book.Close()

	// Rename the default sheet rather than adding a second one
	if err := book.SetSheetName(book.GetSheetName(0), SheetName); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	row := 1
	if !options.NoHeader {
		headerStyle, err := book.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		if err != nil {
			return "", fmt.Errorf("failed to create header style: %w", err)
		}

		header := make([]interface{}, len(personname.FieldNames))
		for i, name := range personname.FieldNames {
			header[i] = name
		}
		if err := book.SetSheetRow(SheetName, "A1", &header); err != nil {
			return "", fmt.Errorf("failed to write header: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := book.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
			return "", fmt.Errorf("failed to style header: %w", err)
		}
		row++
	}

	for _, record := range records {
		values := record.Values()
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = shared.SanitizeFormula(v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := book.SetSheetRow(SheetName, cell, &cells); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	for i := range personname.FieldNames {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := book.SetColWidth(SheetName, col, col, 20); err != nil {
			return "", fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
