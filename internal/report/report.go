// Package report renders readability results for a single text as a
// table, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"textcompass/internal/formula"
	"textcompass/internal/metrics"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts text, json, yaml and yml, in any case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q (want text, json or yaml)", ErrUnknownFormat, name)
}

// ScoreLine is one formula result. Score is kept as a decimal string so
// no precision is lost in JSON or YAML.
type ScoreLine struct {
	Formula string `json:"formula" yaml:"formula"`
	Name    string `json:"name" yaml:"name"`
	Score   string `json:"score" yaml:"score"`
}

// WordLine is the syllable estimate for one word.
type WordLine struct {
	Word      string `json:"word" yaml:"word"`
	Syllables int    `json:"syllables" yaml:"syllables"`
	Complex   bool   `json:"complex" yaml:"complex"`
}

type Report struct {
	Source string            `json:"source,omitempty" yaml:"source,omitempty"`
	Counts *metrics.Snapshot `json:"counts,omitempty" yaml:"counts,omitempty"`
	Scores []ScoreLine       `json:"scores,omitempty" yaml:"scores,omitempty"`
	Words  []WordLine        `json:"words,omitempty" yaml:"words,omitempty"`
}

// New builds a report. counts may be nil. Scores are rounded to places
// decimal places; a negative places keeps every digit.
func New(source string, counts *metrics.Snapshot, results []formula.Result, places int) *Report {
	r := &Report{Source: source, Counts: counts}
	for _, res := range results {
		score := res.Score.String()
		if places >= 0 {
			score = res.Score.StringFixed(int32(places))
		}
		r.Scores = append(r.Scores, ScoreLine{
			Formula: res.Formula.String(),
			Name:    res.Formula.Title(),
			Score:   score,
		})
	}
	return r
}

// AddWord appends a syllable estimate.
func (r *Report) AddWord(word string, syllables int, isComplex bool) {
	r.Words = append(r.Words, WordLine{Word: word, Syllables: syllables, Complex: isComplex})
}

// Write renders r to w in the given format.
func Write(w io.Writer, format Format, r *Report) error {
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
}

func writeText(w io.Writer, r *Report) error {
	if r.Source != "" {
		if _, err := fmt.Fprintf(w, "Source: %s\n", r.Source); err != nil {
			return err
		}
	}

	if r.Counts != nil {
		tw := newTable()
		tw.AppendHeader(table.Row{"Count", "Value"})
		tw.AppendRows([]table.Row{
			{"Words", r.Counts.Words},
			{"Sentences", r.Counts.Sentences},
			{"Letters", r.Counts.Letters},
			{"Syllables", r.Counts.Syllables},
			{"Complex words", r.Counts.ComplexWords},
			{"Complex ratio", r.Counts.ComplexRatio().StringFixed(4)},
		})
		if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
			return err
		}
	}

	if len(r.Scores) > 0 {
		tw := newTable()
		tw.AppendHeader(table.Row{"Formula", "Score"})
		for _, s := range r.Scores {
			tw.AppendRow(table.Row{s.Name, s.Score})
		}
		if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
			return err
		}
	}

	if len(r.Words) > 0 {
		tw := newTable()
		tw.AppendHeader(table.Row{"Word", "Syllables", "Complex"})
		for _, word := range r.Words {
			mark := ""
			if word.Complex {
				mark = "yes"
			}
			tw.AppendRow(table.Row{word.Word, word.Syllables, mark})
		}
		if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
			return err
		}
	}

	return nil
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return tw
}
