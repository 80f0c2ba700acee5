// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"fullname-parser/internal/personname"
)

// Document is the top-level structure for YAML output and verbose JSON output
type Document struct {
	Records []personname.Record `json:"records" yaml:"records"`
	Summary *Summary            `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Summary counts which components were recovered across a set of records
type Summary struct {
	Total      int `json:"total" yaml:"total"`
	Decomposed int `json:"decomposed" yaml:"decomposed"`
	Empty      int `json:"empty" yaml:"empty"`
	WithPrefix int `json:"with_prefix" yaml:"with_prefix"`
	WithMiddle int `json:"with_middle" yaml:"with_middle"`
	WithSuffix int `json:"with_suffix" yaml:"with_suffix"`
}

// Summarize counts record components
func Summarize(records []personname.Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.IsEmpty() {
			s.Empty++
			continue
		}
		s.Decomposed++
		if r.Prefix != "" {
			s.WithPrefix++
		}
		if r.Middle != "" {
			s.WithMiddle++
		}
		if r.Suffix != "" {
			s.WithSuffix++
		}
	}
	return s
}

// NewDocument wraps records, attaching a summary in verbose mode
func NewDocument(records []personname.Record, verbose bool) Document {
	if records == nil {
		records = []personname.Record{}
	}
	doc := Document{Records: records}
	if verbose {
		summary := Summarize(records)
		doc.Summary = &summary
	}
	return doc
}

// SanitizeFormula neutralizes spreadsheet formula prefixes so a name cannot
// execute when the output is opened in a spreadsheet
func SanitizeFormula(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		return "'" + field
	}
	return field
}
