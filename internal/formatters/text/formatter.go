// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/formatters/shared"
	"fullname-parser/internal/personname"

	"github.com/fatih/color"
)

// maxColumnWidth caps a column so one long name cannot stretch the table
const maxColumnWidth = 40

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable aligned table with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(records []personname.Record, options formatters.FormatterOptions) (string, error) {
	if len(records) == 0 {
		return "No names to display.\n", nil
	}

	widths := f.columnWidths(records)
	var builder strings.Builder

	if !options.NoHeader {
		f.appendHeaders(&builder, widths, options)
	}

	for _, record := range records {
		f.appendRow(&builder, record, widths, options)
	}

	if options.Verbose {
		f.appendSummary(&builder, shared.Summarize(records), options)
	}

	return builder.String(), nil
}

// columnWidths sizes each column to its longest value
func (f *Formatter) columnWidths(records []personname.Record) []int {
	widths := make([]int, len(personname.FieldNames))
	for i, name := range personname.FieldNames {
		widths[i] = len(name)
	}
	for _, record := range records {
		for i, v := range record.Values() {
			if n := utf8.RuneCountInString(v); n > widths[i] {
				widths[i] = min(n, maxColumnWidth)
			}
		}
	}
	return widths
}

// appendHeaders adds column headers and a separator line
func (f *Formatter) appendHeaders(builder *strings.Builder, widths []int, options formatters.FormatterOptions) {
	cells := make([]string, len(personname.FieldNames))
	total := 0
	for i, name := range personname.FieldNames {
		cells[i] = pad(strings.ToUpper(strings.ReplaceAll(name, "_", " ")), widths[i])
		total += widths[i] + 1
	}

	f.writeLine(builder, "white", strings.Join(cells, " "), options)
	f.writeLine(builder, "white", strings.Repeat("-", total-1), options)
}

// appendRow adds one record; names that could not be decomposed are highlighted
func (f *Formatter) appendRow(builder *strings.Builder, record personname.Record, widths []int, options formatters.FormatterOptions) {
	values := record.Values()
	if record.IsEmpty() {
		cells := []string{pad(truncate(values[0], widths[0]), widths[0]), "(not decomposed)"}
		f.writeLine(builder, "yellow", strings.Join(cells, " "), options)
		return
	}

	columnColors := []string{"white", "magenta", "green", "green", "cyan", "magenta"}
	cells := make([]string, len(values))
	for i, v := range values {
		cell := pad(truncate(v, widths[i]), widths[i])
		if !options.NoColor {
			cell = f.colors[columnColors[i]].Sprint(cell)
		}
		cells[i] = cell
	}
	builder.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
	builder.WriteString("\n")
}

// appendSummary adds component counts after the table
func (f *Formatter) appendSummary(builder *strings.Builder, s shared.Summary, options formatters.FormatterOptions) {
	builder.WriteString("\n")
	f.writeLine(builder, "white", fmt.Sprintf("%d names, %d decomposed, %d not decomposed", s.Total, s.Decomposed, s.Empty), options)
	fmt.Fprintf(builder, "  with prefix: %d\n  with middle: %d\n  with suffix: %d\n", s.WithPrefix, s.WithMiddle, s.WithSuffix)
}

func (f *Formatter) writeLine(builder *strings.Builder, colorName, line string, options formatters.FormatterOptions) {
	line = strings.TrimRight(line, " ")
	if !options.NoColor {
		line = f.colors[colorName].Sprint(line)
	}
	builder.WriteString(line)
	builder.WriteString("\n")
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncate shortens s to width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
