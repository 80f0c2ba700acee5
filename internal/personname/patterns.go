// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// Text wrapped in parentheses or double quotes
	nicknamePattern = regexp.MustCompile(`["(].*?[")]`)

	// Wrapped text that is a credential qualifier rather than a nickname
	notNicknames = map[string]bool{"(hons)": true}

	// Internal upper/lower case changes (McDonald, MacElroy)
	camelCasePattern = regexp.MustCompile(`\p{L}(\p{Lu}*\p{Ll}\p{Ll}*\p{Lu}|\p{Ll}*\p{Lu}\p{Lu}*\p{Ll})\p{L}*`)
)

// hasNickname reports a quoted or parenthesized span that is not allow-listed
func hasNickname(name string) bool {
	match := nicknamePattern.FindString(name)
	if match == "" {
		return false
	}
	return !notNicknames[toLower(match)]
}

func isCamelCase(word string) bool {
	return camelCasePattern.MatchString(word)
}

// SuffixMatcher locates professional credentials inside a name. It is
// compiled once per parser and safe for concurrent use.
type SuffixMatcher struct {
	pattern *regexp.Regexp
	exact   map[string]bool
	tokens  []string
}

// NewSuffixMatcher compiles the credential tokens into a single matcher.
// Case and periods are significant (MEng is a credential, Meng a surname).
// Tokens are tried longest first.
func NewSuffixMatcher(tokens []string) *SuffixMatcher {
	m := &SuffixMatcher{
		exact:  make(map[string]bool, len(tokens)),
		tokens: BySpecificity(tokens),
	}
	if len(m.tokens) == 0 {
		return m
	}

	quoted := make([]string, len(m.tokens))
	for i, t := range m.tokens {
		m.exact[t] = true
		quoted[i] = regexp.QuoteMeta(t)
	}

	// Preceded by whitespace or comma, followed by end of text or a non-word rune
	m.pattern = regexp.MustCompile(`[,\s]+(` + strings.Join(quoted, "|") + `)(?:$|[^\p{L}\p{N}_])`)
	return m
}

// Tokens returns the compiled tokens in matching order.
func (m *SuffixMatcher) Tokens() []string {
	return slices.Clone(m.tokens)
}

// FirstIndex returns the byte offset where the earliest credential begins, or -1.
func (m *SuffixMatcher) FirstIndex(name string) int {
	if m.pattern == nil {
		return -1
	}
	if m.exact[name] {
		return 0
	}
	loc := m.pattern.FindStringSubmatchIndex(name)
	if loc == nil {
		return -1
	}
	return loc[2]
}

// IsCredential reports whether a single word is itself a known credential.
func (m *SuffixMatcher) IsCredential(word string) bool {
	word = strings.TrimRight(word, ",")
	return m.FirstIndex(word) >= 0
}

// BySpecificity de-duplicates tokens and orders them longest first,
// keeping authoring order among tokens of equal length.
func BySpecificity(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})
	return out
}
