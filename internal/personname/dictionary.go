// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Embedded built-in dictionary
//
//go:embed data/dictionary.yaml
var dictionaryYAML []byte

// vowels drives the two-letter casing rule and is not configurable.
var vowels = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// PrefixGroup maps a set of honorific spellings to the form shown in output.
// An empty Canonical keeps the token as the user typed it; a Canonical of
// only whitespace removes the token without adding to the prefix.
type PrefixGroup struct {
	Canonical string   `yaml:"canonical"`
	Synonyms  []string `yaml:"synonyms"`
}

// Dictionary holds the lookup tables the parser works from.
type Dictionary struct {
	Prefixes             []PrefixGroup `yaml:"prefixes"`
	LineSuffixes         []string      `yaml:"line_suffixes"`
	ProfessionalSuffixes []string      `yaml:"professional_suffixes"`
	CompoundMarkers      []string      `yaml:"compound_markers"`
}

var (
	// Built-in tables, decoded once
	builtinDictionary Dictionary
	builtinOnce       sync.Once
	builtinErr        error
)

// loadBuiltinDictionary decodes the embedded tables
// Uses sync.Once to ensure thread-safe lazy loading
func loadBuiltinDictionary() (Dictionary, error) {
	builtinOnce.Do(func() {
		if err := yaml.Unmarshal(dictionaryYAML, &builtinDictionary); err != nil {
			builtinErr = fmt.Errorf("failed to decode embedded dictionary: %w", err)
			return
		}
		builtinErr = builtinDictionary.Validate()
	})
	return builtinDictionary, builtinErr
}

// DefaultDictionary returns a copy of the built-in tables.
func DefaultDictionary() Dictionary {
	d, err := loadBuiltinDictionary()
	if err != nil {
		panic(err)
	}
	return d.Clone()
}

// LoadDictionary decodes a YAML dictionary. Tables missing from the document
// keep their built-in values; tables present replace them wholesale.
func LoadDictionary(r io.Reader) (Dictionary, error) {
	var overlay Dictionary
	if err := yaml.NewDecoder(r).Decode(&overlay); err != nil && !errors.Is(err, io.EOF) {
		return Dictionary{}, fmt.Errorf("error parsing dictionary: %w", err)
	}

	d := DefaultDictionary().Merge(overlay)
	if err := d.Validate(); err != nil {
		return Dictionary{}, err
	}
	return d, nil
}

// LoadDictionaryFile reads a YAML dictionary from disk.
func LoadDictionaryFile(path string) (Dictionary, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Dictionary{}, fmt.Errorf("error reading dictionary file: %w", err)
	}
	return LoadDictionary(bytes.NewReader(data))
}

// Merge returns d with every non-empty table of overlay substituted in.
func (d Dictionary) Merge(overlay Dictionary) Dictionary {
	out := d.Clone()
	if len(overlay.Prefixes) > 0 {
		out.Prefixes = clonePrefixes(overlay.Prefixes)
	}
	if len(overlay.LineSuffixes) > 0 {
		out.LineSuffixes = slices.Clone(overlay.LineSuffixes)
	}
	if len(overlay.ProfessionalSuffixes) > 0 {
		out.ProfessionalSuffixes = slices.Clone(overlay.ProfessionalSuffixes)
	}
	if len(overlay.CompoundMarkers) > 0 {
		out.CompoundMarkers = slices.Clone(overlay.CompoundMarkers)
	}
	return out
}

// Clone returns a deep copy.
func (d Dictionary) Clone() Dictionary {
	return Dictionary{
		Prefixes:             clonePrefixes(d.Prefixes),
		LineSuffixes:         slices.Clone(d.LineSuffixes),
		ProfessionalSuffixes: slices.Clone(d.ProfessionalSuffixes),
		CompoundMarkers:      slices.Clone(d.CompoundMarkers),
	}
}

// Validate rejects blank entries, which would match every token.
func (d Dictionary) Validate() error {
	var errs []error
	for i, group := range d.Prefixes {
		if len(group.Synonyms) == 0 {
			errs = append(errs, fmt.Errorf("prefixes[%d]: no synonyms", i))
		}
		for _, s := range group.Synonyms {
			if strings.TrimSpace(s) == "" {
				errs = append(errs, fmt.Errorf("prefixes[%d]: blank synonym", i))
			}
		}
	}
	errs = append(errs, checkBlank("line_suffixes", d.LineSuffixes)...)
	errs = append(errs, checkBlank("professional_suffixes", d.ProfessionalSuffixes)...)
	errs = append(errs, checkBlank("compound_markers", d.CompoundMarkers)...)

	if len(errs) > 0 {
		return fmt.Errorf("invalid dictionary: %w", errors.Join(errs...))
	}
	return nil
}

func checkBlank(table string, entries []string) []error {
	var errs []error
	for i, e := range entries {
		if strings.TrimSpace(e) == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: blank entry", table, i))
		}
	}
	return errs
}

func clonePrefixes(groups []PrefixGroup) []PrefixGroup {
	if groups == nil {
		return nil
	}
	out := make([]PrefixGroup, len(groups))
	for i, g := range groups {
		out[i] = PrefixGroup{Canonical: g.Canonical, Synonyms: slices.Clone(g.Synonyms)}
	}
	return out
}
