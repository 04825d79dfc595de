package metrics

import (
	"textcompass/internal/syllable"

	"github.com/shopspring/decimal"
)

// Snapshot holds every count the formulas need for one text. It is
// computed once and read by all formulas scoring that text.
type Snapshot struct {
	Words        int `json:"words" yaml:"words"`
	Sentences    int `json:"sentences" yaml:"sentences"`
	Letters      int `json:"letters" yaml:"letters"`
	Syllables    int `json:"syllables" yaml:"syllables"`
	ComplexWords int `json:"complex_words" yaml:"complex_words"`

	// Tokens is the number of pieces text splits into on single spaces,
	// the denominator of the complex word ratio.
	Tokens int `json:"tokens" yaml:"tokens"`
}

// Analyze computes a Snapshot of text, estimating each word's syllables
// once.
func Analyze(text string) Snapshot {
	text = CleanText(text)
	words := splitWords(text)

	s := Snapshot{
		Words:     CountWords(text),
		Sentences: CountSentences(text),
		Letters:   CountLetters(text),
		Tokens:    len(words),
	}
	for _, word := range words {
		n := syllable.Estimate(word)
		s.Syllables += n
		if n >= syllable.ComplexThreshold {
			s.ComplexWords++
		}
	}
	return s
}

// ComplexRatio returns ComplexWords divided by Tokens, or zero when there
// are no tokens.
func (s Snapshot) ComplexRatio() decimal.Decimal {
	return ratio(s.ComplexWords, s.Tokens)
}

// Empty reports whether the snapshot was taken from empty text.
func (s Snapshot) Empty() bool {
	return s.Words == 0
}
