package analyzer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"textcompass/internal/config"
	"textcompass/internal/formula"
	"textcompass/internal/git"
	"textcompass/internal/metrics"
	"textcompass/internal/types"
	"textcompass/internal/utils"
)

type Analyzer struct {
	semaphore *utils.Semaphore
	mu        *sync.Mutex
	formula   formula.Formula
}

func New(semaphore *utils.Semaphore, mu *sync.Mutex, f formula.Formula) *Analyzer {
	return &Analyzer{
		semaphore: semaphore,
		mu:        mu,
		formula:   f,
	}
}

// analyzeText computes the counts of a file's text. Tests replace it to
// observe scoring.
var analyzeText = metrics.Analyze

// ScoreFile scores one file and stores the result in fileStats. Files with
// fewer than minWords words are skipped. Reading, counting and scoring all
// hold one semaphore permit.
func (a *Analyzer) ScoreFile(
	filePath string,
	minWords int,
	fileStats map[string]*types.FileStats,
) error {
	var (
		stats *types.FileStats
		err   error
	)
	a.semaphore.Do(func() {
		stats, err = a.score(filePath, minWords)
	})
	if err != nil || stats == nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	fileStats[filePath] = stats
	return nil
}

// ScoreFileWithConfig is ScoreFile with the file and word filters taken
// from cfg.
func (a *Analyzer) ScoreFileWithConfig(
	filePath string,
	cfg *config.Config,
	fileStats map[string]*types.FileStats,
) error {
	if cfg != nil && cfg.ShouldIgnoreFile(filePath) {
		return nil
	}

	minWords := 0
	if cfg != nil {
		minWords = cfg.MinWords
	}
	return a.ScoreFile(filePath, minWords, fileStats)
}

// score returns nil stats for a file that is too short to score.
func (a *Analyzer) score(filePath string, minWords int) (*types.FileStats, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	snapshot := analyzeText(flatten(string(data)))
	if snapshot.Empty() || snapshot.Words < minWords {
		return nil, nil
	}

	score, err := formula.Evaluate(a.formula, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to score %s: %w", filePath, err)
	}

	return &types.FileStats{
		Path:     filePath,
		Size:     int64(len(data)),
		Snapshot: snapshot,
		Score:    score,
	}, nil
}

// ScoreFiles scores files concurrently. Failures are appended to
// warningLogs instead of stopping the run. progress, if set, is called once
// per file.
func (a *Analyzer) ScoreFiles(
	files []string,
	cfg *config.Config,
	fileStats map[string]*types.FileStats,
	warningLogs *[]string,
	progress func(),
) {
	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			if err := a.ScoreFileWithConfig(file, cfg, fileStats); err != nil {
				a.mu.Lock()
				*warningLogs = append(*warningLogs, err.Error())
				a.mu.Unlock()
			}
			if progress != nil {
				progress()
			}
		}(file)
	}
	wg.Wait()
}

// CollectFiles walks root and returns the files cfg would score, sorted.
func CollectFiles(root string, cfg *config.Config) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isIgnoredDir(d.Name(), cfg) {
				return filepath.SkipDir
			}
			return nil
		}
		if cfg.ShouldScoreFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// CollectTrackedFiles returns the git tracked files under root that cfg
// would score, sorted.
func CollectTrackedFiles(root string, cfg *config.Config) ([]string, error) {
	if err := git.ValidateRepository(root); err != nil {
		return nil, err
	}

	tracked, err := git.GetTrackedFiles(root)
	if err != nil {
		return nil, err
	}

	var files []string
	for file := range tracked {
		if cfg.ShouldScoreFile(file) {
			files = append(files, file)
		}
	}

	sort.Strings(files)
	return files, nil
}

func isIgnoredDir(name string, cfg *config.Config) bool {
	for _, ignored := range cfg.IgnoredPaths {
		if name == ignored {
			return true
		}
	}
	return false
}

// flatten joins the lines of a file with single spaces so line breaks and
// indentation separate words the way spaces do.
func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
