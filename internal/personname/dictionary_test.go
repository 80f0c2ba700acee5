// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	d := DefaultDictionary()

	require.NoError(t, d.Validate())
	assert.NotEmpty(t, d.Prefixes)
	assert.Contains(t, d.LineSuffixes, "Jr")
	assert.Contains(t, d.ProfessionalSuffixes, "Ph.D.")
	assert.Contains(t, d.CompoundMarkers, "von")

	// Callers get their own copy
	d.LineSuffixes[0] = "changed"
	assert.NotEqual(t, "changed", DefaultDictionary().LineSuffixes[0])
}

func TestLoadDictionary_OverlayReplacesTables(t *testing.T) {
	doc := `
line_suffixes: ['jr', 'sr']
prefixes:
  - canonical: ''
    synonyms: ['mr', 'mister']
`
	d, err := LoadDictionary(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"jr", "sr"}, d.LineSuffixes)
	assert.Equal(t, []PrefixGroup{{Canonical: "", Synonyms: []string{"mr", "mister"}}}, d.Prefixes)

	defaults := DefaultDictionary()
	assert.Equal(t, defaults.ProfessionalSuffixes, d.ProfessionalSuffixes)
	assert.Equal(t, defaults.CompoundMarkers, d.CompoundMarkers)
}

func TestLoadDictionary_EmptyDocument(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultDictionary(), d)
}

func TestLoadDictionary_Errors(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		errContains string
	}{
		{"malformed yaml", "line_suffixes: [jr", "error parsing dictionary"},
		{"blank entry", "line_suffixes: ['jr', ' ']", "line_suffixes[1]: blank entry"},
		{"group without synonyms", "prefixes:\n  - canonical: 'Dr.'\n", "prefixes[0]: no synonyms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDictionary(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadDictionaryFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "names.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compound_markers: ['ap', 'ab']\n"), 0600))

	d, err := LoadDictionaryFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ap", "ab"}, d.CompoundMarkers)

	_, err = LoadDictionaryFile(filepath.Join(tempDir, "missing.yaml"))
	assert.ErrorContains(t, err, "error reading dictionary file")
}

func TestDictionary_Merge(t *testing.T) {
	base := Dictionary{
		LineSuffixes:    []string{"Jr"},
		CompoundMarkers: []string{"de"},
	}
	merged := base.Merge(Dictionary{CompoundMarkers: []string{"von"}})

	assert.Equal(t, []string{"Jr"}, merged.LineSuffixes)
	assert.Equal(t, []string{"von"}, merged.CompoundMarkers)
	assert.Equal(t, []string{"de"}, base.CompoundMarkers)
}
