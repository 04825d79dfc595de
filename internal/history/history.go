package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"textcompass/internal/formula"
	"textcompass/internal/types"
)

const timestampLayout = "20060102_150405"

// WriteLeaderboardToCSV writes a generic leaderboard to a CSV file.
func WriteLeaderboardToCSV(dir, filename string, header []string, data [][]string) error {
	if dir == "" {
		return fmt.Errorf("log directory not specified")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file %s: %w", filePath, err)
	}
	return nil
}

// WriteReadabilityLeaderboardCSV writes the readability leaderboard for f
// to a timestamped CSV file in dir.
func WriteReadabilityLeaderboardCSV(dir string, f formula.Formula, entries []types.ReadabilityEntry) error {
	return writeReadabilityLeaderboardCSV(dir, f, entries, time.Now())
}

func writeReadabilityLeaderboardCSV(dir string, f formula.Formula, entries []types.ReadabilityEntry, now time.Time) error {
	filename := fmt.Sprintf("readability_%s_%s.csv", f, now.Format(timestampLayout))
	header := []string{"Rank", "Path", "Score", "Words", "Sentences", "Syllables", "ComplexWords", "OverLimit"}
	data := make([][]string, len(entries))
	for i, entry := range entries {
		data[i] = []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.Path,
			entry.Score.String(),
			fmt.Sprintf("%d", entry.Words),
			fmt.Sprintf("%d", entry.Sentences),
			fmt.Sprintf("%d", entry.Syllables),
			fmt.Sprintf("%d", entry.ComplexWords),
			fmt.Sprintf("%t", entry.OverLimit),
		}
	}
	return WriteLeaderboardToCSV(dir, filename, header, data)
}

// WriteSummaryCSV writes the run totals to a timestamped CSV file in dir.
func WriteSummaryCSV(dir string, f formula.Formula, summary types.SummaryStats) error {
	filename := fmt.Sprintf("summary_%s_%s.csv", f, time.Now().Format(timestampLayout))
	header := []string{"Formula", "Files", "Words", "Sentences", "Syllables", "ComplexWords", "AverageScore", "OverLimit"}
	data := [][]string{{
		f.String(),
		fmt.Sprintf("%d", summary.Files),
		fmt.Sprintf("%d", summary.Words),
		fmt.Sprintf("%d", summary.Sentences),
		fmt.Sprintf("%d", summary.Syllables),
		fmt.Sprintf("%d", summary.ComplexWords),
		summary.AverageScore.StringFixed(4),
		fmt.Sprintf("%d", summary.OverLimit),
	}}
	return WriteLeaderboardToCSV(dir, filename, header, data)
}
