package metrics

import "testing"

func TestAnalyze(t *testing.T) {
	got := Analyze("The cat sat.")
	want := Snapshot{
		Words:        3,
		Sentences:    1,
		Letters:      9,
		Syllables:    3,
		ComplexWords: 0,
		Tokens:       3,
	}
	if got != want {
		t.Errorf("Analyze = %+v, want %+v", got, want)
	}
}

func TestAnalyzeMatchesCounters(t *testing.T) {
	text := "Mr. Smith found the readability of the beautiful  report questionable. Why?"
	s := Analyze(text)

	if s.Words != CountWords(text) {
		t.Errorf("Words = %d, CountWords = %d", s.Words, CountWords(text))
	}
	if s.Sentences != CountSentences(text) {
		t.Errorf("Sentences = %d, CountSentences = %d", s.Sentences, CountSentences(text))
	}
	if s.Letters != CountLetters(text) {
		t.Errorf("Letters = %d, CountLetters = %d", s.Letters, CountLetters(text))
	}
	if s.Syllables != CountSyllables(text) {
		t.Errorf("Syllables = %d, CountSyllables = %d", s.Syllables, CountSyllables(text))
	}
	if s.ComplexWords != CountComplexWords(text) {
		t.Errorf("ComplexWords = %d, CountComplexWords = %d", s.ComplexWords, CountComplexWords(text))
	}
	if !s.ComplexRatio().Equal(ComplexWordRatio(text)) {
		t.Errorf("ComplexRatio = %s, ComplexWordRatio = %s", s.ComplexRatio(), ComplexWordRatio(text))
	}
}

func TestSnapshotEmpty(t *testing.T) {
	s := Analyze("")
	if !s.Empty() {
		t.Errorf("expected empty snapshot, got %+v", s)
	}
	if !s.ComplexRatio().IsZero() {
		t.Errorf("expected zero ratio for empty text, got %s", s.ComplexRatio())
	}
}
