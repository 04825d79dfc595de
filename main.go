package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"textcompass/internal/analyzer"
	"textcompass/internal/config"
	"textcompass/internal/formula"
	"textcompass/internal/history"
	"textcompass/internal/leaderboard"
	"textcompass/internal/metrics"
	"textcompass/internal/report"
	"textcompass/internal/syllable"
	"textcompass/internal/types"
	"textcompass/internal/utils"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

const VERSION = "1.0.0"
const PROJECT_NAME = "TextCompass"

// ASCII compass art
const COMPASS_ART = `
    🧭 TextCompass 🧭
         N
         ↑
    W ←  +  → E
         ↓
         S

   Navigate Your Prose Readability
`

const MINI_COMPASS = `🧭`

// textOptions selects what a text report contains.
type textOptions struct {
	all       bool
	stats     bool
	syllables bool
	places    int
}

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		h        = flag.Bool("h", false, "Show help message (short)")
		version  = flag.Bool("version", false, "Show version information")
		v        = flag.Bool("v", false, "Show version information (short)")
		showLogo = flag.Bool("logo", false, "Show TextCompass ASCII art")

		// Text scoring
		formulaName = flag.String("formula", "", "Formula to score with (default from config: ari)")
		showAll     = flag.Bool("all", false, "Score the text with every formula")
		showStats   = flag.Bool("stats", false, "Show word, sentence and syllable counts")
		syllables   = flag.Bool("syllables", false, "Show the syllable estimate of each word")
		format      = flag.String("format", "text", "Output format: text, json or yaml")
		places      = flag.Int("places", 2, "Decimal places to round scores to (-1 keeps every digit)")

		// Directory scoring
		dir     = flag.String("dir", "", "Score every text file under DIR")
		tracked = flag.Bool("tracked", false, "Only score files tracked by git")
		topN    = flag.Int("top", 0, "Number of entries to show in the leaderboard (default from config: 15)")

		configFile     = flag.String("config", "", "Path to configuration file")
		generateConfig = flag.Bool("generate-config", false, "Generate a sample configuration file")
		showConfig     = flag.Bool("show-config", false, "Show current configuration and exit")

		verbose = flag.Bool("verbose", false, "Enable verbose output")
		quiet   = flag.Bool("quiet", false, "Suppress non-essential output")

		logHistory = flag.Bool("log-history", false, "Enable logging of leaderboard data to CSV files")
		logDir     = flag.String("log-dir", ".textcompass/history", "Directory to save leaderboard CSV logs")
	)

	flag.Usage = showUsage
	flag.Parse()

	if *help || *h {
		showUsage()
		return
	}

	if *version || *v {
		showVersion()
		return
	}

	if *showLogo {
		showCompassArt()
		return
	}

	if *generateConfig {
		filename := config.ConfigFiles[0]
		if err := config.GenerateConfigFile(filename); err != nil {
			log.Fatalf("Failed to generate config file: %v", err)
		}
		fmt.Printf("✅ Generated configuration file: %s\n", filename)
		return
	}

	if !*showConfig && *dir == "" && len(flag.Args()) == 0 {
		showUsage()
		return
	}

	// Load configuration
	var cfg *config.Config
	var err error

	if *configFile != "" {
		cfg, err = config.LoadConfigFromFile(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config file %s: %v", *configFile, err)
		}
	} else {
		cfg, err = config.LoadConfig()
		if err != nil {
			if !*quiet {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
			}
			cfg = config.NewConfig()
		}
	}

	if *showConfig {
		cfg.PrintSummary()
		return
	}

	f := cfg.Formula
	if *formulaName != "" {
		f, err = formula.ParseFormula(*formulaName)
		if err != nil {
			log.Fatalf("Invalid --formula: %v", err)
		}
	}

	outputFormat, err := report.ParseFormat(*format)
	if err != nil {
		log.Fatalf("Invalid --format: %v", err)
	}

	if *topN > 0 {
		cfg.TopN = *topN
	}

	if *dir != "" {
		if outputFormat != report.FormatText {
			log.Fatalf("--format %s is only supported when scoring text", outputFormat)
		}
		runDirectory(*dir, cfg, f, *tracked, *logHistory, *logDir, *verbose, *quiet)
		return
	}

	text, source, err := readInput(flag.Args(), os.Stdin)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	r, err := buildReport(text, source, f, textOptions{
		all:       *showAll,
		stats:     *showStats,
		syllables: *syllables,
		places:    *places,
	})
	if err != nil {
		log.Fatalf("Failed to score text: %v", err)
	}

	if err := report.Write(os.Stdout, outputFormat, r); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}

// readInput joins the positional arguments into one text. A single "-"
// reads stdin instead, with its whitespace flattened to single spaces.
func readInput(args []string, stdin io.Reader) (text, source string, err error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		return strings.Join(strings.Fields(string(data)), " "), "stdin", nil
	}
	return strings.Join(args, " "), "", nil
}

func buildReport(text, source string, f formula.Formula, opts textOptions) (*report.Report, error) {
	if opts.syllables {
		r := report.New(source, nil, nil, opts.places)
		for _, word := range strings.Fields(text) {
			n := syllable.Estimate(word)
			r.AddWord(word, n, n >= syllable.ComplexThreshold)
		}
		return r, nil
	}

	if opts.all {
		snap, results := formula.ScoreAll(text)
		var counts *metrics.Snapshot
		if opts.stats {
			counts = &snap
		}
		return report.New(source, counts, results, opts.places), nil
	}

	snap := metrics.Analyze(text)
	score, err := formula.Evaluate(f, snap)
	if err != nil {
		return nil, err
	}

	var counts *metrics.Snapshot
	if opts.stats {
		counts = &snap
	}
	return report.New(source, counts, []formula.Result{{Formula: f, Score: score}}, opts.places), nil
}

func runDirectory(dir string, cfg *config.Config, f formula.Formula, tracked, logHistory bool, logDir string, verbose, quiet bool) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		log.Fatalf("Failed to resolve path %s: %v", dir, err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		log.Fatalf("Directory does not exist: %s", absPath)
	}

	if !quiet {
		fmt.Print(color.CyanString(COMPASS_ART))
		fmt.Printf("%s Scoring text files in: %s\n", MINI_COMPASS, absPath)
	}

	// Show configuration summary if verbose
	if verbose && !quiet {
		cfg.PrintSummary()
		fmt.Println()
	}

	var files []string
	if tracked {
		files, err = analyzer.CollectTrackedFiles(absPath, cfg)
		if err != nil {
			log.Fatalf("Failed to get tracked files: %v", err)
		}
	} else {
		files, err = analyzer.CollectFiles(absPath, cfg)
		if err != nil {
			log.Fatalf("Failed to collect files: %v", err)
		}
	}

	if verbose && !quiet {
		fmt.Printf("📁 Found %d text files\n", len(files))
	}

	fileStats := make(map[string]*types.FileStats)
	var warningLogs []string
	var mu sync.Mutex

	var bar *progressbar.ProgressBar
	if !quiet && len(files) > 0 {
		bar = progressbar.Default(int64(len(files)))
	}

	semaphore := utils.NewSemaphore(cfg.GetConcurrency())
	a := analyzer.New(semaphore, &mu, f)
	a.ScoreFiles(files, cfg, fileStats, &warningLogs, func() {
		if bar != nil {
			bar.Add(1)
		}
	})

	if bar != nil {
		bar.Finish()
	}

	for _, stats := range fileStats {
		if rel, err := filepath.Rel(absPath, stats.Path); err == nil {
			stats.Path = rel
		}
	}

	if !quiet {
		fmt.Printf("\n%s %s\n", MINI_COMPASS, color.New(color.Bold).Sprint("Readability Navigation"))
		fmt.Printf("%s\n", strings.Repeat("─", 50))
	}

	entries := leaderboard.GenerateReadabilityLeaderboard(fileStats, f, cfg.TopN, cfg.MaxGrade)
	leaderboard.PrintReadabilityLeaderboard(entries, f)

	summary := leaderboard.GenerateSummaryStats(fileStats, f, cfg.MaxGrade)
	fmt.Println()
	leaderboard.PrintSummary(summary, f, cfg.MaxGrade)

	if logHistory {
		if err := history.WriteReadabilityLeaderboardCSV(logDir, f, entries); err != nil {
			warningLogs = append(warningLogs, fmt.Sprintf("Failed to log leaderboard: %v", err))
		} else if err := history.WriteSummaryCSV(logDir, f, summary); err != nil {
			warningLogs = append(warningLogs, fmt.Sprintf("Failed to log summary: %v", err))
		} else if !quiet {
			fmt.Printf("\n%s %s %s\n", MINI_COMPASS, color.GreenString("History saved to"), logDir)
		}
	}

	if len(warningLogs) > 0 && !quiet {
		fmt.Printf("\n%s %s\n", MINI_COMPASS, color.YellowString("Navigation Warnings:"))
		for _, warn := range warningLogs {
			fmt.Printf("  %s\n", color.New(color.FgHiBlack).Sprint(warn))
		}
	}

	if verbose {
		fmt.Printf("\n%s %s\n", MINI_COMPASS, color.GreenString("Navigation completed successfully!"))
	}
}

func showCompassArt() {
	fmt.Print(color.CyanString(`
        🧭 TextCompass 🧭

            ╭─────╮
         ╭──┤  N  ├──╮
      ╭──┤  ╰──┬──╯  ├──╮
   ╭──┤ NW   ╭─┼─╮   NE ├──╮
╭──┤ W  ├───┤ + ├───┤  E ├──╮
│  ╰──┤ SW   ╰─┼─╯   SE ├──╯│
│     ╰──┤  ╭──┴──╮  ├──╯  │
│        ╰──┤  S  ├──╯     │
│           ╰─────╯        │
╰─ Navigate Your Prose ───╯
     One Sentence at a Time

    📖 Count Syllables
    📏 Score Readability
    🗂  Rank Documents
    📈 Track Progress
`))

	fmt.Println(color.New(color.Bold).Sprint("\nTextCompass v" + VERSION))
	fmt.Println("Readability scores for plain English text")
}

func showVersion() {
	fmt.Printf("%s %s v%s\n", MINI_COMPASS, PROJECT_NAME, VERSION)
	fmt.Printf("Readability scores for plain English text\n")
	fmt.Printf("Flesch-Kincaid, Gunning Fog, Coleman-Liau, SMOG and ARI\n")
}

func showUsage() {
	fmt.Print(color.CyanString(COMPASS_ART))
	fmt.Printf("%s\n", color.New(color.Bold).Sprint("TextCompass - Navigate Your Prose Readability"))
	fmt.Printf("\n%s\n", color.BlueString("USAGE:"))
	fmt.Printf("  %s [OPTIONS] TEXT...\n", os.Args[0])
	fmt.Printf("  %s [OPTIONS] -           (read text from stdin)\n", os.Args[0])
	fmt.Printf("  %s [OPTIONS] --dir DIR\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("FORMULAS:"))
	for _, f := range formula.All() {
		fmt.Printf("  %-22s %s\n", f, f.Title())
	}
	fmt.Println()

	fmt.Printf("%s\n", color.BlueString("TEXT OPTIONS:"))
	fmt.Printf("  --formula NAME         Formula to score with (default: ari)\n")
	fmt.Printf("  --all                  Score with every formula\n")
	fmt.Printf("  --stats                Show word, sentence and syllable counts\n")
	fmt.Printf("  --syllables            Show the syllable estimate of each word\n")
	fmt.Printf("  --format FORMAT        Output format: text, json or yaml (default: text)\n")
	fmt.Printf("  --places N             Decimal places for scores, -1 for every digit (default: 2)\n\n")

	fmt.Printf("%s\n", color.BlueString("DIRECTORY OPTIONS:"))
	fmt.Printf("  --dir DIR              Score every text file under DIR\n")
	fmt.Printf("  --tracked              Only score files tracked by git\n")
	fmt.Printf("  --top N                Number of entries to show in the leaderboard (default: 15)\n\n")

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION OPTIONS:"))
	fmt.Printf("  --config FILE          Path to configuration file (.textcompass.rc)\n")
	fmt.Printf("  --generate-config      Generate a sample configuration file\n")
	fmt.Printf("  --show-config          Show current configuration and exit\n\n")

	fmt.Printf("%s\n", color.BlueString("DISPLAY OPTIONS:"))
	fmt.Printf("  --logo                 Show TextCompass ASCII art\n")
	fmt.Printf("  --verbose              Enable verbose output\n")
	fmt.Printf("  --quiet                Suppress non-essential output\n\n")

	fmt.Printf("%s\n", color.BlueString("HISTORY LOGGING OPTIONS:"))
	fmt.Printf("  --log-history          Enable logging of leaderboard data to CSV files\n")
	fmt.Printf("  --log-dir DIR          Directory to save leaderboard CSV logs (default: .textcompass/history)\n\n")

	fmt.Printf("%s\n", color.BlueString("OTHER OPTIONS:"))
	fmt.Printf("  -h, --help             Show this help message\n")
	fmt.Printf("  -v, --version          Show version information\n\n")

	fmt.Printf("%s\n", color.BlueString("EXAMPLES:"))
	fmt.Printf("  %s \"The cat sat on the mat.\"          # ARI grade of a sentence\n", os.Args[0])
	fmt.Printf("  %s --all --stats - < README.md        # Every formula plus counts\n", os.Args[0])
	fmt.Printf("  %s --formula smog --format json TEXT  # One score as JSON\n", os.Args[0])
	fmt.Printf("  %s --syllables readability            # Syllable estimate\n", os.Args[0])
	fmt.Printf("  %s --dir docs --tracked --top 5       # Hardest tracked docs\n", os.Args[0])
	fmt.Printf("  %s --generate-config                  # Create .textcompass.rc file\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION FILE:"))
	fmt.Printf("  TextCompass looks for configuration files in this order:\n")
	for i, file := range config.ConfigFiles {
		fmt.Printf("  %d. %s\n", i+1, file)
	}
	fmt.Printf("\n  Use --generate-config to create a sample configuration file.\n")
}
