package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ValidateRepository returns an error unless dir is inside a git work tree.
func ValidateRepository(dir string) error {
	if _, err := exec.Command("git", "-C", dir, "rev-parse", "--git-dir").Output(); err != nil {
		return fmt.Errorf("%s is not a git repository: %w", dir, err)
	}
	return nil
}

// GetTrackedFiles returns the files git tracks under dir, as paths joined
// to dir.
func GetTrackedFiles(dir string) (map[string]bool, error) {
	cmd := exec.Command("git", "-C", dir, "ls-files")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files: %w", err)
	}

	files := make(map[string]bool)
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	for _, line := range lines {
		if line != "" {
			files[filepath.Join(dir, filepath.FromSlash(line))] = true
		}
	}
	return files, nil
}
