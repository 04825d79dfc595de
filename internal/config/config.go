package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"textcompass/internal/formula"
)

type Config struct {
	Formula        formula.Formula
	Extensions     []string
	IgnoredFiles   []string
	IgnoredPaths   []string
	MaxFileSize    int
	MaxConcurrent  int
	MaxGrade       float64
	MinWords       int
	TopN           int
	CustomSettings map[string]string
}

func NewConfig() *Config {
	return &Config{
		Formula:        formula.AutomatedReadabilityIndex,
		Extensions:     []string{".txt", ".md", ".markdown", ".rst"},
		IgnoredFiles:   []string{},
		IgnoredPaths:   []string{"node_modules", ".git", "vendor", "dist", "build"},
		MaxFileSize:    5000,
		MaxConcurrent:  4,
		MaxGrade:       14.0,
		MinWords:       20,
		TopN:           15,
		CustomSettings: make(map[string]string),
	}
}

// ConfigFiles lists the file names LoadConfig looks for, in order.
var ConfigFiles = []string{
	".textcompass.rc",
	".textcompass.config",
	"textcompass.config",
	".textcompass",
}

func LoadConfig() (*Config, error) {
	config := NewConfig()

	var configFile string
	for _, file := range ConfigFiles {
		if _, err := os.Stat(file); err == nil {
			configFile = file
			break
		}
	}

	if configFile == "" {
		return config, nil // No config file found, return default config
	}

	return parseConfigFile(configFile, config)
}

func LoadConfigFromFile(filename string) (*Config, error) {
	config := NewConfig()
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}
	return parseConfigFile(filename, config)
}

func parseConfigFile(filename string, config *Config) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if err := config.parseKeyValue(key, value); err != nil {
			return config, fmt.Errorf("%s:%d: %w", filename, lineNum, err)
		}
	}

	return config, scanner.Err()
}

func (c *Config) parseKeyValue(key, value string) error {
	switch key {
	case "formula":
		f, err := formula.ParseFormula(value)
		if err != nil {
			return err
		}
		c.Formula = f
	case "extensions":
		c.Extensions = parseList(value)
	case "ignore-files":
		c.IgnoredFiles = append(c.IgnoredFiles, parseList(value)...)
	case "ignore-paths":
		c.IgnoredPaths = append(c.IgnoredPaths, parseList(value)...)
	case "max-file-size":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid max-file-size value: %s", value)
		}
		c.MaxFileSize = size
	case "max-concurrent":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid max-concurrent value: %s", value)
		}
		c.MaxConcurrent = n
	case "max-grade":
		grade, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid max-grade value: %s", value)
		}
		c.MaxGrade = grade
	case "min-words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid min-words value: %s", value)
		}
		c.MinWords = n
	case "top":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid top value: %s", value)
		}
		c.TopN = n
	default:
		c.CustomSettings[key] = value
	}
	return nil
}

func parseList(value string) []string {
	items := strings.Split(value, ",")
	var result []string

	for _, item := range items {
		cleaned := strings.TrimSpace(item)
		if cleaned != "" {
			result = append(result, cleaned)
		}
	}

	return result
}

// ShouldIgnoreFile reports whether a file is excluded by size, name
// pattern or path fragment.
func (c *Config) ShouldIgnoreFile(filePath string) bool {
	if c.MaxFileSize > 0 {
		if info, err := os.Stat(filePath); err == nil {
			if info.Size() > int64(c.MaxFileSize*1024) { // MaxFileSize is in KB
				return true
			}
		}
	}

	for _, pattern := range c.IgnoredFiles {
		if matched, _ := filepath.Match(pattern, filepath.Base(filePath)); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filePath); matched {
			return true
		}
	}

	slashed := filepath.ToSlash(filePath)
	for _, fragment := range c.IgnoredPaths {
		for _, part := range strings.Split(slashed, "/") {
			if part == fragment {
				return true
			}
		}
	}

	return false
}

// ShouldScoreFile reports whether a file has a scored extension and is not
// ignored.
func (c *Config) ShouldScoreFile(filePath string) bool {
	lower := strings.ToLower(filePath)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return !c.ShouldIgnoreFile(filePath)
		}
	}
	return false
}

func (c *Config) GetConcurrency() int {
	if c.MaxConcurrent > 0 {
		return c.MaxConcurrent
	}
	return 2 // Default
}

func GenerateConfigFile(filename string) error {
	if filename == "" {
		filename = ConfigFiles[0]
	}

	content := `# TextCompass Configuration File 🧭
# Navigate your prose readability
# Lines starting with # are comments

# Formula used for the file leaderboard:
# flesch-kincaid-ease, flesch-kincaid-grade, gunning-fog, coleman-liau, smog, ari
formula = "ari"

# File extensions to score
extensions = ".txt,.md,.markdown,.rst"

# Ignore specific files (supports wildcards)
ignore-files = "CHANGELOG.md,LICENSE*"

# Ignore any path containing one of these directories
ignore-paths = "node_modules,.git,vendor,dist,build"

# Maximum file size to score (in KB, 0 = no limit)
max-file-size = 5000

# Maximum files scored at the same time
max-concurrent = 4

# Grade above which a file is flagged
max-grade = 14

# Files with fewer words are skipped
min-words = 20

# Number of entries in the leaderboard
top = 15
`

	return os.WriteFile(filename, []byte(content), 0644)
}

func (c *Config) PrintSummary() {
	fmt.Printf("🧭 Configuration Summary:\n")
	fmt.Printf("  • Formula: %s\n", c.Formula.Title())
	fmt.Printf("  • Extensions: %s\n", strings.Join(c.Extensions, ", "))
	fmt.Printf("  • Ignored files: %d patterns\n", len(c.IgnoredFiles))
	fmt.Printf("  • Ignored paths: %d patterns\n", len(c.IgnoredPaths))
	fmt.Printf("  • Max concurrent: %d\n", c.GetConcurrency())
	fmt.Printf("  • Max grade: %.1f\n", c.MaxGrade)
	fmt.Printf("  • Min words: %d\n", c.MinWords)

	if c.MaxFileSize > 0 {
		fmt.Printf("  • Max file size: %d KB\n", c.MaxFileSize)
	}
}
