// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/personname"
)

func TestFormat(t *testing.T) {
	records := []personname.Record{
		{FullName: "Anthony Von Fange III, PhD", First: "Anthony", Last: "Von Fange", Suffix: "III, PhD"},
		{FullName: `Jimmy "Bubba" Smith`},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{})
	require.NoError(t, err)

	expected := "full_name,prefix,first,middle,last,suffix\n" +
		`"Anthony Von Fange III, PhD",,Anthony,,Von Fange,"III, PhD"` + "\n" +
		`"Jimmy ""Bubba"" Smith",,,,,` + "\n"
	assert.Equal(t, expected, out)
}

func TestFormat_DelimiterAndNoHeader(t *testing.T) {
	records := []personname.Record{
		{FullName: "John Smith MD, PhD", First: "John", Last: "Smith", Suffix: "MD, PhD"},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{Delimiter: ';', NoHeader: true})
	require.NoError(t, err)
	assert.Equal(t, "John Smith MD, PhD;;John;;Smith;MD, PhD\n", out)
}

func TestFormat_FormulaInjection(t *testing.T) {
	records := []personname.Record{{FullName: "=HYPERLINK(\"x\")", First: "@cmd"}}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{NoHeader: true})
	require.NoError(t, err)
	assert.Equal(t, `"'=HYPERLINK(""x"")",,'@cmd,,,`+"\n", out)
}

func TestFormat_Empty(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{NoHeader: true})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = NewFormatter().Format(nil, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "full_name,prefix,first,middle,last,suffix\n", out)
}
