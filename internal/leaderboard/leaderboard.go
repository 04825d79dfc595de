package leaderboard

import (
	"fmt"
	"sort"

	"textcompass/internal/formula"
	"textcompass/internal/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// GenerateReadabilityLeaderboard ranks scored files hardest first. For
// Reading Ease a lower score is harder; for every other formula a higher
// grade is. Ties are broken by path.
func GenerateReadabilityLeaderboard(fileStats map[string]*types.FileStats, f formula.Formula, topN int, maxGrade float64) []types.ReadabilityEntry {
	limit := decimal.NewFromFloat(maxGrade)

	var entries []types.ReadabilityEntry
	for _, stats := range fileStats {
		entries = append(entries, types.ReadabilityEntry{
			Path:         stats.Path,
			Size:         stats.Size,
			Words:        stats.Snapshot.Words,
			Sentences:    stats.Snapshot.Sentences,
			Syllables:    stats.Snapshot.Syllables,
			ComplexWords: stats.Snapshot.ComplexWords,
			Score:        stats.Score,
			OverLimit:    !f.LowerIsHarder() && stats.Score.GreaterThan(limit),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Score, entries[j].Score
		if !a.Equal(b) {
			if f.LowerIsHarder() {
				return a.LessThan(b)
			}
			return a.GreaterThan(b)
		}
		return entries[i].Path < entries[j].Path
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// GenerateSummaryStats totals every scored file. Over-limit files are
// counted against all of fileStats, not just the leaderboard.
func GenerateSummaryStats(fileStats map[string]*types.FileStats, f formula.Formula, maxGrade float64) types.SummaryStats {
	limit := decimal.NewFromFloat(maxGrade)

	var summary types.SummaryStats
	total := decimal.Zero
	for _, stats := range fileStats {
		summary.Files++
		summary.Words += stats.Snapshot.Words
		summary.Sentences += stats.Snapshot.Sentences
		summary.Syllables += stats.Snapshot.Syllables
		summary.ComplexWords += stats.Snapshot.ComplexWords
		total = total.Add(stats.Score)
		if !f.LowerIsHarder() && stats.Score.GreaterThan(limit) {
			summary.OverLimit++
		}
	}

	if summary.Files > 0 {
		summary.AverageScore = total.Div(decimal.NewFromInt(int64(summary.Files)))
	}
	return summary
}

func formatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#5d5d5d")).
		PaddingLeft(1).
		PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	rankStyle = cellStyle.
		Foreground(lipgloss.Color("#878787"))

	pathStyle = cellStyle.
		Foreground(lipgloss.Color("#d75f00"))

	scoreStyle = cellStyle.
		Foreground(lipgloss.Color("#ffd700"))

	overLimitStyle = cellStyle.
		Foreground(lipgloss.Color("#ff0000"))
)

func PrintReadabilityLeaderboard(entries []types.ReadabilityEntry, f formula.Formula) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Readability Leaderboard - Hardest Files (%s)", f.Title())))

	if len(entries) == 0 {
		fmt.Println(cellStyle.Render("📭 No files with enough words to score."))
		return
	}

	for _, entry := range entries {
		rank := rankStyle.Render(fmt.Sprintf("%2d", entry.Rank))
		path := pathStyle.Render(entry.Path)
		score := scoreStyle.Render(entry.Score.StringFixed(2))
		if entry.OverLimit {
			score = overLimitStyle.Render(entry.Score.StringFixed(2) + " ⚠")
		}

		fmt.Printf("%s. %s – %s, %d words, %d sentences, %d complex words (%s)\n",
			rank, path, score, entry.Words, entry.Sentences, entry.ComplexWords, formatFileSize(entry.Size))
	}
}

func PrintSummary(summary types.SummaryStats, f formula.Formula, maxGrade float64) {
	fmt.Println(titleStyle.Render("Repository Summary"))

	fmt.Printf("  • Files scored: %s\n", cellStyle.Render(fmt.Sprintf("%d", summary.Files)))
	fmt.Printf("  • Words: %s, sentences: %s\n",
		cellStyle.Render(fmt.Sprintf("%d", summary.Words)),
		cellStyle.Render(fmt.Sprintf("%d", summary.Sentences)))
	fmt.Printf("  • Complex words: %s\n", cellStyle.Render(fmt.Sprintf("%d", summary.ComplexWords)))

	if summary.Files > 0 {
		fmt.Printf("  • Average %s: %s\n", f.Title(), scoreStyle.Render(summary.AverageScore.StringFixed(2)))
	}
	if !f.LowerIsHarder() {
		fmt.Printf("  • Files above grade %.1f: %s\n", maxGrade,
			overLimitStyle.Render(fmt.Sprintf("%d", summary.OverLimit)))
	}
}
