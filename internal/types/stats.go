package types

import (
	"textcompass/internal/metrics"

	"github.com/shopspring/decimal"
)

// FileStats is the readability of one scored file.
type FileStats struct {
	Path     string
	Size     int64
	Snapshot metrics.Snapshot
	Score    decimal.Decimal
}

// Readability leaderboard entry
type ReadabilityEntry struct {
	Rank         int
	Path         string
	Size         int64
	Words        int
	Sentences    int
	Syllables    int
	ComplexWords int
	Score        decimal.Decimal
	OverLimit    bool
}

// Totals across every scored file
type SummaryStats struct {
	Files        int
	Words        int
	Sentences    int
	Syllables    int
	ComplexWords int
	AverageScore decimal.Decimal
	OverLimit    int
}
