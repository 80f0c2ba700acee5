// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullname-parser/internal/formatters"
	_ "fullname-parser/internal/formatters/csv"
	_ "fullname-parser/internal/formatters/json"
	_ "fullname-parser/internal/formatters/text"
	_ "fullname-parser/internal/formatters/xlsx"
	_ "fullname-parser/internal/formatters/yaml"
	"fullname-parser/internal/personname"
)

func TestDefaultRegistry_List(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "text", "xlsx", "yaml"}, formatters.List())
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := formatters.Export("sarif", nil, formatters.FormatterOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available formats: csv, json, text, xlsx, yaml")
}

func TestExport_CSV(t *testing.T) {
	records := []personname.Record{personname.Parse("Mark Peter Williams")}

	out, err := formatters.Export("csv", records, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "full_name,prefix,first,middle,last,suffix\nMark Peter Williams,,Mark,Peter,Williams,\n", out)
}

func TestGetFormatInfo(t *testing.T) {
	info := formatters.GetFormatInfo("xlsx")
	assert.Equal(t, ".xlsx", info.Extension)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", info.MimeType)
	assert.True(t, info.Binary)

	assert.Equal(t, "text/csv", formatters.GetFormatInfo("csv").MimeType)
	assert.False(t, formatters.GetFormatInfo("json").Binary)
	assert.Equal(t, formatters.FormatInfo{}, formatters.GetFormatInfo("missing"))

	assert.Len(t, formatters.GetSupportedFormats(), 5)
}
