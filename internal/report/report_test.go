package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"textcompass/internal/formula"
	"textcompass/internal/metrics"

	"gopkg.in/yaml.v3"
)

func sampleReport(places int) *Report {
	snap, results := formula.ScoreAll("The cat sat.")
	return New("stdin", &snap, results, places)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestNew_Places(t *testing.T) {
	r := sampleReport(2)
	if len(r.Scores) != len(formula.All()) {
		t.Fatalf("expected %d scores, got %d", len(formula.All()), len(r.Scores))
	}
	if r.Scores[0].Formula != "flesch-kincaid-ease" || r.Scores[0].Score != "119.19" {
		t.Errorf("unexpected first score: %+v", r.Scores[0])
	}

	full := sampleReport(-1)
	for _, s := range full.Scores {
		if s.Formula == "coleman-liau" && len(s.Score) <= len("-8.03") {
			t.Errorf("expected full precision for coleman-liau, got %s", s.Score)
		}
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, sampleReport(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if got.Source != "stdin" || got.Counts == nil || got.Counts.Words != 3 {
		t.Errorf("unexpected report: %+v", got)
	}
	if !strings.Contains(buf.String(), `"complex_words": 0`) {
		t.Errorf("expected snake_case count keys, got:\n%s", buf.String())
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, sampleReport(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\noutput: %s", err, buf.String())
	}
	if len(got.Scores) != 6 || got.Scores[5].Formula != "ari" || got.Scores[5].Score != "-5.80" {
		t.Errorf("unexpected scores: %+v", got.Scores)
	}
}

func TestWrite_TextOmitsEmptySections(t *testing.T) {
	r := New("", nil, []formula.Result{}, 2)
	r.AddWord("readability", 5, true)

	var buf bytes.Buffer
	if err := Write(&buf, FormatText, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Source:") || strings.Contains(out, "Sentences") {
		t.Errorf("expected only the word table, got:\n%s", out)
	}
	if !strings.Contains(out, "readability") || !strings.Contains(out, "yes") {
		t.Errorf("expected word row, got:\n%s", out)
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, sampleReport(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Source: stdin", "Sentences", "Flesch", "119.19", "-5.80"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("xml"), &Report{Counts: &metrics.Snapshot{}})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
