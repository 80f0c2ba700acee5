// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalizeInput trims and composes the input so accented letters count as one rune
func normalizeInput(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// breakWords splits a name on whitespace, dropping lone commas
func breakWords(name string) []string {
	fields := strings.Fields(name)
	words := fields[:0]
	for _, w := range fields {
		if w != "," {
			words = append(words, w)
		}
	}
	return words
}

// repack drops fragments that are not real words: trailing commas are removed
// and a single non-letter character is discarded.
func repack(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimRight(strings.TrimSpace(t), ",")
		if utf8.RuneCountInString(t) == 1 && !isAlpha(t) {
			continue
		}
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}

// isInitial reports a single letter, with an optional trailing period
func isInitial(word string) bool {
	runes := []rune(word)
	return len(runes) == 1 || (len(runes) == 2 && runes[1] == '.')
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isAllUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isAllLower(s string) bool {
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// Casers carry state, so each call builds its own.

func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// upperFirst uppercases the first rune and leaves the rest untouched
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return toUpper(string(r)) + s[size:]
}

// appendWord space-joins word onto acc
func appendWord(acc, word string) string {
	if acc == "" {
		return word
	}
	return acc + " " + word
}
