package formula

import (
	"errors"
	"fmt"
	"math"

	"textcompass/internal/metrics"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	easeBase        = decimal.RequireFromString("206.835")
	easeSentence    = decimal.RequireFromString("1.015")
	easeSyllable    = decimal.RequireFromString("84.6")
	gradeSentence   = decimal.RequireFromString("0.39")
	gradeSyllable   = decimal.RequireFromString("11.8")
	gradeOffset     = decimal.RequireFromString("15.59")
	fogFactor       = decimal.RequireFromString("0.4")
	colemanLetters  = decimal.RequireFromString("0.0588")
	colemanSentence = decimal.RequireFromString("0.296")
	colemanOffset   = decimal.RequireFromString("15.8")
	smogFactor      = decimal.RequireFromString("1.043")
	smogSentences   = decimal.NewFromInt(30)
	smogOffset      = decimal.RequireFromString("3.1291")
	ariLetters      = decimal.RequireFromString("4.71")
	ariSentence     = decimal.RequireFromString("0.5")
	ariOffset       = decimal.RequireFromString("21.43")
)

// Result is one formula's score for a text.
type Result struct {
	Formula Formula
	Score   decimal.Decimal
}

// FleschKincaidReadingEase scores text as
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Higher is easier.
func FleschKincaidReadingEase(text string) decimal.Decimal {
	return evaluate(FleschKincaidEase, metrics.Analyze(text))
}

// FleschKincaidGradeLevel scores text as
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
func FleschKincaidGradeLevel(text string) decimal.Decimal {
	return evaluate(FleschKincaidGrade, metrics.Analyze(text))
}

// GunningFogScore scores text as
// 0.4*((words/sentences) + 100*(complex word ratio/words)).
func GunningFogScore(text string) decimal.Decimal {
	return evaluate(GunningFog, metrics.Analyze(text))
}

// ColemanLiauIndex scores text as 0.0588*L - 0.296*S - 15.8, where L is
// letters per 100 words and S is sentences per 100 words.
func ColemanLiauIndex(text string) decimal.Decimal {
	return evaluate(ColemanLiau, metrics.Analyze(text))
}

// SmogIndex scores text as
// 1.043*sqrt(complex words*(30/sentences) + 3.1291).
func SmogIndex(text string) decimal.Decimal {
	return evaluate(Smog, metrics.Analyze(text))
}

// AutomatedReadability scores text as
// 4.71*(letters/words) + 0.5*(words/sentences) - 21.43.
func AutomatedReadability(text string) decimal.Decimal {
	return evaluate(AutomatedReadabilityIndex, metrics.Analyze(text))
}

// AverageWordsPerSentence is not supported and always returns an error.
func AverageWordsPerSentence(text string) (decimal.Decimal, error) {
	return decimal.Zero, fmt.Errorf("average words per sentence: %w", errors.ErrUnsupported)
}

// Score evaluates formula f on text.
func Score(f Formula, text string) (decimal.Decimal, error) {
	return Evaluate(f, metrics.Analyze(text))
}

// ScoreAll analyzes text once and evaluates every formula on the result.
func ScoreAll(text string) (metrics.Snapshot, []Result) {
	s := metrics.Analyze(text)
	results := make([]Result, 0, len(All()))
	for _, f := range All() {
		results = append(results, Result{Formula: f, Score: evaluate(f, s)})
	}
	return s, results
}

// Evaluate computes formula f from precomputed counts. A snapshot of empty
// text scores zero.
func Evaluate(f Formula, s metrics.Snapshot) (decimal.Decimal, error) {
	if !f.Valid() {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrUnknownFormula, int(f))
	}
	return evaluate(f, s), nil
}

func evaluate(f Formula, s metrics.Snapshot) decimal.Decimal {
	if s.Words == 0 || s.Sentences == 0 {
		return decimal.Zero
	}

	words := decimal.NewFromInt(int64(s.Words))
	sentences := decimal.NewFromInt(int64(s.Sentences))
	letters := decimal.NewFromInt(int64(s.Letters))
	syllables := decimal.NewFromInt(int64(s.Syllables))

	// Constants are multiplied in before dividing so every quotient that
	// terminates is exact.
	switch f {
	case FleschKincaidEase:
		return easeBase.
			Sub(easeSentence.Mul(words).Div(sentences)).
			Sub(easeSyllable.Mul(syllables).Div(words))

	case FleschKincaidGrade:
		return gradeSentence.Mul(words).Div(sentences).
			Add(gradeSyllable.Mul(syllables).Div(words)).
			Sub(gradeOffset)

	case GunningFog:
		// The complex term divides the complex word ratio by the word
		// count a second time: 100*(ratio/words).
		fog := fogFactor.Mul(words).Div(sentences)
		if s.Tokens > 0 {
			complexWords := decimal.NewFromInt(int64(s.ComplexWords))
			tokens := decimal.NewFromInt(int64(s.Tokens))
			fog = fog.Add(fogFactor.Mul(hundred).Mul(complexWords).Div(tokens.Mul(words)))
		}
		return fog

	case ColemanLiau:
		return colemanLetters.Mul(hundred).Mul(letters).Div(words).
			Sub(colemanSentence.Mul(hundred).Mul(sentences).Div(words)).
			Sub(colemanOffset)

	case Smog:
		// The polysyllable term is a count, not the complex word ratio.
		polysyllables := decimal.NewFromInt(int64(s.ComplexWords))
		radicand := polysyllables.Mul(smogSentences).Div(sentences).Add(smogOffset)
		return smogFactor.Mul(decimal.NewFromFloat(math.Sqrt(radicand.InexactFloat64())))

	case AutomatedReadabilityIndex:
		return ariLetters.Mul(letters).Div(words).
			Add(ariSentence.Mul(words).Div(sentences)).
			Sub(ariOffset)
	}
	return decimal.Zero
}
