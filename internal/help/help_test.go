// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"bytes"
	"testing"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/personname"

	"github.com/stretchr/testify/assert"
)

func TestShowGeneralHelp(t *testing.T) {
	var buf bytes.Buffer
	NewSystem(&buf, true).ShowGeneralHelp()

	out := buf.String()
	assert.Contains(t, out, "fullname-parser - Person Name Decomposition Tool")
	for _, flag := range []string{"--input", "--output-dir", "--format", "--delimiter", "--dictionary", "--profile", "--workers"} {
		assert.Contains(t, out, flag)
	}
	assert.NotContains(t, out, "\x1b[", "no-color help should not contain escape codes")
}

func TestShowFormats(t *testing.T) {
	var buf bytes.Buffer
	NewSystem(&buf, true).ShowFormats([]formatters.FormatInfo{
		{Name: "csv", Extension: ".csv", Description: "Comma separated values"},
		{Name: "xlsx", Extension: ".xlsx", Description: "Excel workbook", Binary: true},
	})

	out := buf.String()
	assert.Contains(t, out, "csv")
	assert.Contains(t, out, "Excel workbook (file output only)")
	assert.NotContains(t, out, "Comma separated values (file output only)")
}

func TestShowProfiles(t *testing.T) {
	var buf bytes.Buffer
	h := NewSystem(&buf, true)

	h.ShowProfiles(nil, func(string) string { return "" })
	assert.Contains(t, buf.String(), "No profiles defined")

	buf.Reset()
	descriptions := map[string]string{"export": "Spreadsheets"}
	h.ShowProfiles([]string{"export", "plain"}, func(name string) string { return descriptions[name] })
	assert.Contains(t, buf.String(), "  - export: Spreadsheets\n")
	assert.Contains(t, buf.String(), "  - plain\n")
}

func TestShowDictionary(t *testing.T) {
	var buf bytes.Buffer
	NewSystem(&buf, true).ShowDictionary(personname.Dictionary{
		Prefixes: []personname.PrefixGroup{
			{Canonical: "Dr.", Synonyms: []string{"dr", "doctor"}},
			{Synonyms: []string{"mr"}},
			{Canonical: " ", Synonyms: []string{"the"}},
		},
		LineSuffixes:         []string{"Jr.", "III"},
		ProfessionalSuffixes: []string{"MD"},
	})

	out := buf.String()
	assert.Contains(t, out, "dr, doctor")
	assert.Contains(t, out, "(as typed)")
	assert.Contains(t, out, "(dropped)")
	assert.Contains(t, out, "Jr., III")
	assert.Contains(t, out, "COMPOUND MARKERS:\n  (empty)")
}
