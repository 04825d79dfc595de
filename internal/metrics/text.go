// Package metrics counts the text statistics that readability formulas
// are built from: words, sentences, letters, syllables and complex words.
//
// Words are runs of characters between single spaces. No normalization is
// applied, so every space counts: "a  b" is three words.
package metrics

import (
	"regexp"
	"strings"

	"textcompass/internal/syllable"

	"github.com/shopspring/decimal"
)

// Abbreviations whose periods do not end a sentence.
var fakeSentenceEnds = []*regexp.Regexp{
	regexp.MustCompile(`[A-Z]\.[A-Z]\.`), // U.K.
	regexp.MustCompile(`Mr\.`),
}

// CleanText prepares text for counting. It returns text unchanged.
func CleanText(text string) string {
	return text
}

// CountWords returns one more than the number of spaces in text, or 0 for
// empty text.
func CountWords(text string) int {
	if text == "" {
		return 0
	}
	return 1 + strings.Count(text, " ")
}

// CountSentences counts sentence terminators (. ! ?) after removing
// abbreviations such as "U.K." and "Mr.". Non-empty text always has at
// least one sentence.
func CountSentences(text string) int {
	if text == "" {
		return 0
	}

	for _, re := range fakeSentenceEnds {
		text = re.ReplaceAllString(text, "")
	}

	n := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			n++
		}
	}
	return max(1, n)
}

// CountLetters counts ASCII letters and digits.
func CountLetters(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		if isAlphanumeric(text[i]) {
			n++
		}
	}
	return n
}

// CountSyllables sums the syllable estimates of every word in text.
func CountSyllables(text string) int {
	total := 0
	for _, word := range splitWords(text) {
		total += syllable.Estimate(word)
	}
	return total
}

// CountComplexWords counts words with three or more syllables.
func CountComplexWords(text string) int {
	n := 0
	for _, word := range splitWords(text) {
		if syllable.IsComplex(word) {
			n++
		}
	}
	return n
}

// ComplexWordRatio returns the fraction of words in text that are complex.
// It is zero when text has no words.
func ComplexWordRatio(text string) decimal.Decimal {
	words := splitWords(text)
	return ratio(CountComplexWords(text), len(words))
}

func splitWords(text string) []string {
	return strings.Split(text, " ")
}

func ratio(n, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).Div(decimal.NewFromInt(int64(total)))
}

func isAlphanumeric(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
