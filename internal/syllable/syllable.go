// Package syllable estimates the number of syllables in an English word.
//
// The estimate is a heuristic: a word is matched against an exception
// table, stripped of known one-syllable affixes, split into vowel groups,
// and then corrected by two tables of patterns that are known to be over-
// or under-counted. It is wrong for some words and is meant to stay that
// way, since readability scores computed from it must be reproducible.
package syllable

import (
	"regexp"
	"strings"
)

// ComplexThreshold is the syllable count at which a word is complex.
const ComplexThreshold = 3

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	nonLetter       = regexp.MustCompile(`[^a-z]`)
	vowelGroup      = regexp.MustCompile(`[aeiouy]+`)
)

// Estimate returns the estimated number of syllables in word. It returns 0
// for a word with no letters or digits and at least 1 otherwise.
func Estimate(word string) int {
	if word == "" {
		return 0
	}

	word = nonAlphanumeric.ReplaceAllString(strings.ToLower(word), "")
	if word == "" {
		return 0
	}

	if n, ok := exceptions[word]; ok {
		return n
	}

	word, count := stripAffixes(word)
	word = nonLetter.ReplaceAllString(word, "")

	// Every run of vowels is a candidate syllable.
	count += len(vowelGroup.FindAllStringIndex(word, -1))

	for _, r := range subtractive {
		if r.matches(word) {
			count--
		}
	}
	for _, r := range additive {
		if r.matches(word) {
			count++
		}
	}

	if count < 1 {
		count = 1
	}
	return count
}

// IsComplex reports whether word has ComplexThreshold or more syllables.
func IsComplex(word string) bool {
	return Estimate(word) >= ComplexThreshold
}

func stripAffixes(word string) (string, int) {
	count := 0
	for _, r := range affixes {
		var n int
		word, n = r.strip(word)
		count += n
	}
	return word, count
}
