// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"strings"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/formatters/shared"
	"fullname-parser/internal/personname"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values, one row per name"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(records []personname.Record, options formatters.FormatterOptions) (string, error) {
	delimiter := options.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}
	sep := string(delimiter)

	var rows []string
	if !options.NoHeader {
		rows = append(rows, strings.Join(personname.FieldNames, sep))
	}

	for _, record := range records {
		values := record.Values()
		for i, v := range values {
			values[i] = f.escapeCSVField(v, sep)
		}
		rows = append(rows, strings.Join(values, sep))
	}

	if len(rows) == 0 {
		return "", nil
	}
	return strings.Join(rows, "\n") + "\n", nil
}

// escapeCSVField quotes a field containing the delimiter, a quote, or a line break
func (f *Formatter) escapeCSVField(field, sep string) string {
	field = shared.SanitizeFormula(field)

	if strings.Contains(field, sep) || strings.ContainsAny(field, "\"\n\r") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
