// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/personname"
)

func TestFormat_Workbook(t *testing.T) {
	records := []personname.Record{
		{FullName: "Lt. Col. Erich von Stroheim", Prefix: "Lt. Col.", First: "Erich", Last: "Von Stroheim"},
		{FullName: "=SUM(A1)"},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{})
	require.NoError(t, err)

	book, err := excelize.OpenReader(strings.NewReader(out))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{SheetName}, book.GetSheetList())

	rows, err := book.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, personname.FieldNames, rows[0])
	assert.Equal(t, []string{"Lt. Col. Erich von Stroheim", "Lt. Col.", "Erich", "", "Von Stroheim"}, rows[1])
	assert.Equal(t, "'=SUM(A1)", rows[2][0])
}

func TestFormat_NoHeader(t *testing.T) {
	records := []personname.Record{{FullName: "Adam", First: "Adam"}}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{NoHeader: true})
	require.NoError(t, err)

	book, err := excelize.OpenReader(strings.NewReader(out))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Adam", rows[0][0])
}
