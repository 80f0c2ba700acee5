// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"fullname-parser/internal/observability"
)

// Parser decomposes full names using one Dictionary. A Parser never changes
// after construction; the With* methods return a new Parser.
type Parser struct {
	dict Dictionary

	// Lookup indexes compiled from dict
	prefixIndex   map[string]int // normalized synonym -> index into dict.Prefixes
	lineIndex     map[string]int // normalized suffix -> index into dict.LineSuffixes
	lineWordRegex []*regexp.Regexp
	compounds     map[string]bool
	credentials   *SuffixMatcher

	observer *observability.StandardObserver
}

// Option configures a Parser.
type Option func(*Parser)

// WithDictionary replaces the built-in tables.
func WithDictionary(d Dictionary) Option {
	return func(p *Parser) {
		p.dict = d.Clone()
	}
}

// WithObserver enables operation logging.
func WithObserver(observer *observability.StandardObserver) Option {
	return func(p *Parser) {
		p.observer = observer
	}
}

// NewParser creates a parser over the built-in dictionary unless an option
// supplies another one.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.dict.Prefixes == nil && p.dict.LineSuffixes == nil &&
		p.dict.ProfessionalSuffixes == nil && p.dict.CompoundMarkers == nil {
		p.dict = DefaultDictionary()
	}
	p.compile()
	return p
}

var (
	defaultParser     *Parser
	defaultParserOnce sync.Once
)

// Default returns the shared parser over the built-in dictionary.
func Default() *Parser {
	defaultParserOnce.Do(func() {
		defaultParser = NewParser()
	})
	return defaultParser
}

// Parse decomposes name with the built-in dictionary.
func Parse(name string) Record {
	return Default().Parse(name)
}

// compile builds the lookup indexes for the dictionary
func (p *Parser) compile() {
	p.prefixIndex = make(map[string]int)
	for i, group := range p.dict.Prefixes {
		for _, syn := range group.Synonyms {
			key := normalizePrefix(syn)
			if _, exists := p.prefixIndex[key]; !exists {
				p.prefixIndex[key] = i
			}
		}
	}

	p.lineIndex = make(map[string]int)
	p.lineWordRegex = make([]*regexp.Regexp, len(p.dict.LineSuffixes))
	for i, s := range p.dict.LineSuffixes {
		key := toLower(s)
		if _, exists := p.lineIndex[key]; !exists {
			p.lineIndex[key] = i
		}
		p.lineWordRegex[i] = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(s) + `(?:$|[^\p{L}\p{N}_])`)
	}

	p.compounds = make(map[string]bool, len(p.dict.CompoundMarkers))
	for _, c := range p.dict.CompoundMarkers {
		p.compounds[toLower(c)] = true
	}

	p.credentials = NewSuffixMatcher(p.dict.ProfessionalSuffixes)
}

// Dictionary returns a copy of the parser's tables.
func (p *Parser) Dictionary() Dictionary {
	return p.dict.Clone()
}

// Prefixes returns a copy of the honorific prefix groups.
func (p *Parser) Prefixes() []PrefixGroup {
	return clonePrefixes(p.dict.Prefixes)
}

// LineSuffixes returns a copy of the lineage suffixes.
func (p *Parser) LineSuffixes() []string {
	return slices.Clone(p.dict.LineSuffixes)
}

// ProfessionalSuffixes returns a copy of the professional suffixes.
func (p *Parser) ProfessionalSuffixes() []string {
	return slices.Clone(p.dict.ProfessionalSuffixes)
}

// CompoundMarkers returns a copy of the compound surname markers.
func (p *Parser) CompoundMarkers() []string {
	return slices.Clone(p.dict.CompoundMarkers)
}

// WithDictionary returns a parser using d; p is unchanged.
func (p *Parser) WithDictionary(d Dictionary) *Parser {
	return NewParser(WithDictionary(d), WithObserver(p.observer))
}

// WithPrefixes returns a parser with the prefix groups replaced.
func (p *Parser) WithPrefixes(groups []PrefixGroup) *Parser {
	d := p.dict.Clone()
	d.Prefixes = clonePrefixes(groups)
	return p.WithDictionary(d)
}

// WithLineSuffixes returns a parser with the lineage suffixes replaced.
func (p *Parser) WithLineSuffixes(suffixes []string) *Parser {
	d := p.dict.Clone()
	d.LineSuffixes = slices.Clone(suffixes)
	return p.WithDictionary(d)
}

// WithProfessionalSuffixes returns a parser with the professional suffixes replaced.
func (p *Parser) WithProfessionalSuffixes(suffixes []string) *Parser {
	d := p.dict.Clone()
	d.ProfessionalSuffixes = slices.Clone(suffixes)
	return p.WithDictionary(d)
}

// WithCompoundMarkers returns a parser with the compound markers replaced.
func (p *Parser) WithCompoundMarkers(markers []string) *Parser {
	d := p.dict.Clone()
	d.CompoundMarkers = slices.Clone(markers)
	return p.WithDictionary(d)
}

// Parse decomposes one full name. It never fails: input that cannot be
// segmented yields a record with empty components.
func (p *Parser) Parse(name string) Record {
	return p.Analyze(name).Record
}

// Analyze decomposes one full name and reports how the record was produced.
func (p *Parser) Analyze(name string) Analysis {
	var finish func(bool, map[string]interface{})
	var finishStep func(bool, string)
	if p.observer.Level() != observability.ObservabilityOff {
		finish = p.observer.StartTiming("personname", "parse", "")
		if p.observer.DebugObserver != nil {
			finishStep = p.observer.DebugObserver.StartStep("personname", "parse", strings.TrimSpace(name))
		}
	}

	analysis := p.analyze(name)

	if finishStep != nil {
		r := analysis.Record
		p.observer.DebugObserver.LogMetric("personname", "input_length", len(r.FullName))
		finishStep(true, fmt.Sprintf("method=%s prefix=%q first=%q middle=%q last=%q suffix=%q",
			analysis.Method, r.Prefix, r.First, r.Middle, r.Last, r.Suffix))
	}
	if finish != nil {
		finish(true, map[string]interface{}{
			"method":       string(analysis.Method),
			"input_length": len(analysis.Record.FullName),
		})
	}
	return analysis
}
