// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullname-parser/internal/formatters"
	"fullname-parser/internal/personname"
)

func TestFormat(t *testing.T) {
	records := []personname.Record{
		{FullName: "Patricia J. Peña", First: "Patricia", Middle: "J.", Last: "Peña"},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{})
	require.NoError(t, err)

	expected := `records:
    - full_name: Patricia J. Peña
      prefix: ""
      first: Patricia
      middle: J.
      last: Peña
      suffix: ""
`
	assert.Equal(t, expected, out)
}

func TestFormat_NoRecords(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "records: []\n", out)
}
