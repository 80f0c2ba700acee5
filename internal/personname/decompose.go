// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"strings"
)

// outcome tags the result of one decomposition attempt. Only analyze
// inspects it; an ambiguous outcome is always resolved by fallback.
type outcome int

const (
	outcomeParsed outcome = iota
	outcomeAmbiguous
)

// parseState accumulates the components of one call
type parseState struct {
	original string // trimmed, normalized input
	prefix   string
	suffix   string
	first    string
	middle   string
	last     string
}

func (st *parseState) record(fullName string) Record {
	return Record{
		FullName: fullName,
		Prefix:   st.prefix,
		First:    st.first,
		Middle:   st.middle,
		Last:     st.last,
		Suffix:   st.suffix,
	}
}

// analyze runs the decomposition pipeline:
// nickname check, professional suffix split, prefix and lineage stripping,
// first/middle segmentation, surname composition.
func (p *Parser) analyze(name string) Analysis {
	fullName := strings.TrimSpace(name)
	empty := Record{FullName: fullName}

	st := &parseState{original: normalizeInput(name)}

	if hasNickname(st.original) {
		return Analysis{Record: empty, Method: MethodNickname}
	}

	rest, result := p.splitProfessionalSuffix(st)
	if result == outcomeAmbiguous {
		return p.fallback(st, fullName)
	}

	tokens := p.stripAffixes(st, breakWords(rest))
	tokens = repack(tokens)

	if p.segment(st, tokens) == outcomeAmbiguous {
		return p.fallback(st, fullName)
	}

	return Analysis{Record: st.record(fullName), Method: MethodParsed}
}

// splitProfessionalSuffix moves trailing credentials into the suffix and
// returns the part of the name before them.
func (p *Parser) splitProfessionalSuffix(st *parseState) (string, outcome) {
	name := st.original

	boundary := p.credentials.FirstIndex(name)
	if boundary < 0 {
		return name, outcomeParsed
	}

	tail := name[boundary:]
	words := breakWords(tail)
	if len(words) > 1 {
		// Everything after the first credential must itself be a credential
		for _, w := range words {
			if !p.credentials.IsCredential(w) {
				return name, outcomeAmbiguous
			}
		}
	}

	st.suffix = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(tail), ","))
	return name[:boundary], outcomeParsed
}

// stripAffixes peels honorifics off the front and lineage suffixes off the back.
func (p *Parser) stripAffixes(st *parseState, tokens []string) []string {
	for len(tokens) > 0 {
		canonical, ok := p.matchPrefix(tokens[0])
		if !ok {
			break
		}
		if canonical != "" {
			st.prefix = appendWord(st.prefix, canonical)
		}
		tokens = tokens[1:]
	}

	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		matched, ok := p.matchLineSuffix(last, st.original)
		if !ok {
			break
		}
		if st.suffix == "" {
			st.suffix = matched
		} else {
			st.suffix = matched + ", " + st.suffix
		}
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) == 0 {
		st.prefix = ""
		st.suffix = ""
	}
	return tokens
}

func normalizePrefix(word string) string {
	return strings.ReplaceAll(toLower(word), ".", "")
}

// matchPrefix returns the display form for an honorific token, which is
// empty for honorifics that are dropped
func (p *Parser) matchPrefix(word string) (string, bool) {
	i, ok := p.prefixIndex[normalizePrefix(word)]
	if !ok {
		return "", false
	}
	canonical := p.dict.Prefixes[i].Canonical
	if canonical == "" {
		return word, true
	}
	return strings.TrimSpace(canonical), true
}

// matchLineSuffix reports whether word is a lineage suffix. Senior and Junior
// are only suffixes in names of four or more words that carry no other
// lineage marker; otherwise they are read as a surname.
func (p *Parser) matchLineSuffix(word, name string) (string, bool) {
	typed := strings.TrimRight(word, ",")
	normalized := strings.ReplaceAll(toLower(typed), ".", "")

	i, ok := p.lineIndex[normalized]
	if !ok {
		return "", false
	}

	if normalized == "senior" || normalized == "junior" {
		if len(strings.Fields(name)) < 4 {
			return "", false
		}
		for j, re := range p.lineWordRegex {
			if j != i && re.MatchString(name) {
				return "", false
			}
		}
	}
	return typed, true
}

func (p *Parser) isCompound(word string) bool {
	return p.compounds[toLower(word)]
}

// segment assigns the remaining tokens to first, middle and last name.
func (p *Parser) segment(st *parseState, tokens []string) outcome {
	end := len(tokens)

	index := 0
	for ; index < end-1; index++ {
		word := tokens[index]

		// A compound marker opens the surname, except as the very first word (Von Fabella)
		if index != 0 && p.isCompound(word) {
			break
		}

		switch {
		case isInitial(word):
			// A leading initial is the first name (R. Jason Smith); later ones are middle initials
			if index == 0 {
				st.first = appendWord(st.first, toUpper(word))
			} else {
				st.middle = appendWord(st.middle, toUpper(word))
			}
		case st.first == "":
			st.first = FixCase(word)
		case st.middle == "":
			st.middle = FixCase(word)
		default:
			return outcomeAmbiguous
		}
	}

	return p.composeSurname(st, tokens, index)
}

// composeSurname builds the last name from compound markers plus exactly one base word.
func (p *Parser) composeSurname(st *parseState, tokens []string, from int) outcome {
	switch len(tokens) {
	case 0:
		st.first = ""
		return outcomeParsed
	case 1:
		// A single word is taken as a first name
		st.first = FixCase(tokens[0])
		return outcomeParsed
	}

	baseSet := false
	for _, word := range tokens[from:] {
		switch {
		case p.isCompound(word):
			st.last = appendWord(st.last, FixCase(word))
		case !baseSet:
			st.last = appendWord(st.last, FixCase(word))
			baseSet = true
		default:
			return outcomeAmbiguous
		}
	}
	return outcomeParsed
}

// fallback handles ambiguous input: an original of exactly three words is
// split blindly into first, middle and last; anything else yields an empty
// record. Prefix and suffix already separated are kept.
func (p *Parser) fallback(st *parseState, fullName string) Analysis {
	words := breakWords(st.original)
	if len(words) != 3 {
		return Analysis{Record: Record{FullName: fullName}, Method: MethodFallbackEmpty}
	}

	return Analysis{
		Record: Record{
			FullName: fullName,
			Prefix:   st.prefix,
			First:    strings.TrimSpace(words[0]),
			Middle:   strings.TrimSpace(words[1]),
			Last:     strings.TrimSpace(words[2]),
			Suffix:   st.suffix,
		},
		Method: MethodFallbackSplit,
	}
}
