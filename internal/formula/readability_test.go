package formula

import (
	"errors"
	"testing"

	"textcompass/internal/metrics"

	"github.com/shopspring/decimal"
)

func TestFormulasOnSimpleSentence(t *testing.T) {
	const text = "The cat sat."

	tests := []struct {
		name   string
		score  decimal.Decimal
		want   string
		places int32
	}{
		{"reading ease", FleschKincaidReadingEase(text), "119.19", 2},
		{"grade level", FleschKincaidGradeLevel(text), "-2.62", 2},
		{"gunning fog", GunningFogScore(text), "1.20", 2},
		{"coleman-liau", ColemanLiauIndex(text), "-8.0267", 4},
		{"smog", SmogIndex(text), "1.84", 2},
		{"ari", AutomatedReadability(text), "-5.80", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.StringFixed(tt.places); got != tt.want {
				t.Errorf("score = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReadingEaseIsExact(t *testing.T) {
	got := FleschKincaidReadingEase("The cat sat.")
	want := decimal.RequireFromString("119.19")
	if !got.Equal(want) {
		t.Errorf("FleschKincaidReadingEase = %s, want exactly %s", got, want)
	}
}

func TestGunningFogDividesRatioByWords(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		// 0.4 * (2/1 + 100 * (1/2) / 2)
		{"beautiful cat.", "10.8"},
		// 0.4 * (4/1 + 100 * (1/4) / 4)
		{"The extraordinary cat sat.", "4.1"},
		{"The cat sat.", "1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := GunningFogScore(tt.text)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("GunningFogScore(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestTerminatingScoresAreExact(t *testing.T) {
	// 6 words, 1 sentence, 20 letters: 4.71*20/6 + 0.5*6 - 21.43.
	got := AutomatedReadability("Mr. Smith went to U.K. today.")
	if got.String() != "-2.73" {
		t.Errorf("AutomatedReadability = %s, want exactly -2.73", got)
	}

	// 0.39*3/1 + 11.8*3/3 - 15.59
	grade := FleschKincaidGradeLevel("The cat sat.")
	if grade.String() != "-2.62" {
		t.Errorf("FleschKincaidGradeLevel = %s, want exactly -2.62", grade)
	}
}

func TestSmogUsesComplexCount(t *testing.T) {
	// One polysyllable in one sentence: 1.043 * sqrt(30 + 3.1291).
	got := SmogIndex("beautiful cat.")
	if s := got.StringFixed(2); s != "6.00" {
		t.Errorf("SmogIndex = %s, want 6.00", s)
	}
}

func TestGradeLevelMonotonic(t *testing.T) {
	easy := FleschKincaidGradeLevel("The cat sat.")
	hard := FleschKincaidGradeLevel("The readability sat.")
	if hard.LessThan(easy) {
		t.Errorf("longer words lowered the grade: %s < %s", hard, easy)
	}
}

func TestScoresAreStable(t *testing.T) {
	text := "Mr. Smith went to U.K. today. The weather was questionable, unfortunately."
	for _, f := range All() {
		first, err := Score(f, text)
		if err != nil {
			t.Fatalf("Score(%s) failed: %v", f, err)
		}
		second, _ := Score(f, text)
		if first.String() != second.String() {
			t.Errorf("%s not stable: %s != %s", f, first, second)
		}
	}
}

func TestScoreMatchesFormulaFunctions(t *testing.T) {
	text := "The foregoing warranties by each party are in lieu of all other warranties."
	funcs := map[Formula]func(string) decimal.Decimal{
		FleschKincaidEase:         FleschKincaidReadingEase,
		FleschKincaidGrade:        FleschKincaidGradeLevel,
		GunningFog:                GunningFogScore,
		ColemanLiau:               ColemanLiauIndex,
		Smog:                      SmogIndex,
		AutomatedReadabilityIndex: AutomatedReadability,
	}

	_, results := ScoreAll(text)
	if len(results) != len(funcs) {
		t.Fatalf("expected %d results, got %d", len(funcs), len(results))
	}
	for _, r := range results {
		want := funcs[r.Formula](text)
		if !r.Score.Equal(want) {
			t.Errorf("%s: ScoreAll = %s, direct = %s", r.Formula, r.Score, want)
		}
		got, err := Score(r.Formula, text)
		if err != nil {
			t.Fatalf("Score(%s) failed: %v", r.Formula, err)
		}
		if !got.Equal(want) {
			t.Errorf("%s: Score = %s, direct = %s", r.Formula, got, want)
		}
	}
}

func TestEmptyTextScoresZero(t *testing.T) {
	for _, f := range All() {
		got, err := Score(f, "")
		if err != nil {
			t.Fatalf("Score(%s, \"\") failed: %v", f, err)
		}
		if !got.IsZero() {
			t.Errorf("Score(%s, \"\") = %s, want 0", f, got)
		}
	}
}

func TestEvaluateUnknownFormula(t *testing.T) {
	_, err := Evaluate(Formula(42), metrics.Analyze("The cat sat."))
	if !errors.Is(err, ErrUnknownFormula) {
		t.Errorf("expected ErrUnknownFormula, got %v", err)
	}
}

func TestAverageWordsPerSentenceUnsupported(t *testing.T) {
	_, err := AverageWordsPerSentence("The cat sat.")
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("expected errors.ErrUnsupported, got %v", err)
	}
}
