// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"strings"
	"unicode/utf8"
)

// FixCase re-capitalizes a single name token.
//
//   - pieces split by periods (J.P.) or hyphens (Kimura-Fay) are capitalized
//     individually, leaving camel-case pieces alone
//   - one letter is uppercased
//   - two letters follow the vowel/consonant rule: both vowels or both
//     consonants are uppercased (AO, BJ), vowel+consonant or consonant+vowel
//     capitalizes the first only (Ed, Da, Ly)
//   - three or more letters that are all upper or all lower case become
//     capitalized; mixed case (McDonald, DelPiero) passes through
func FixCase(word string) string {
	if strings.Contains(word, ".") {
		word = capitalizeParts(".", word)
	}
	if strings.Contains(word, "-") {
		word = capitalizeParts("-", word)
	}

	switch n := utf8.RuneCountInString(word); {
	case n == 1:
		return toUpper(word)
	case n == 2:
		return fixTwoLetters(word)
	case n >= 3 && (isAllUpper(word) || isAllLower(word)):
		return upperFirst(toLower(word))
	}
	return word
}

func fixTwoLetters(word string) string {
	runes := []rune(toLower(word))
	if len(runes) < 2 {
		return toUpper(word)
	}
	firstVowel := vowels[runes[0]]
	secondVowel := vowels[runes[1]]

	switch {
	case firstVowel && secondVowel:
		return toUpper(word)
	case firstVowel:
		return upperFirst(toLower(word))
	case secondVowel || runes[1] == 'y':
		return upperFirst(toLower(word))
	default:
		return toUpper(word)
	}
}

// capitalizeParts capitalizes each separator-delimited piece
func capitalizeParts(sep, word string) string {
	parts := strings.Split(word, sep)
	for i, part := range parts {
		if !isCamelCase(part) {
			parts[i] = upperFirst(toLower(part))
		}
	}
	return strings.Join(parts, sep)
}
