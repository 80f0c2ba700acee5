// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/formatters/shared"
	"fullname-parser/internal/personname"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// Format writes an array of records, or a document with a summary in verbose mode
func (f *Formatter) Format(records []personname.Record, options formatters.FormatterOptions) (string, error) {
	var payload interface{}
	if options.Verbose {
		payload = shared.NewDocument(records, true)
	} else {
		payload = shared.NewDocument(records, false).Records
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(jsonData) + "\n", nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
