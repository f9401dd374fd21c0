package main

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/aritra741/Qualytics/internal/cache"
	"github.com/aritra741/Qualytics/internal/output"
	"github.com/aritra741/Qualytics/internal/progress"
	"github.com/aritra741/Qualytics/internal/scanner"
	"github.com/aritra741/Qualytics/pkg/analyzer/metrics"
	"github.com/aritra741/Qualytics/pkg/config"
	"github.com/aritra741/Qualytics/pkg/models"
)

// diagnosticLog collects per-file parse and read failures from concurrent
// analyzer workers.
type diagnosticLog struct {
	mu       sync.Mutex
	messages []string
}

func (d *diagnosticLog) add(path string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, fmt.Sprintf("%s: %v", path, err))
}

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Compute quality metrics for files or directories",
		ArgsUsage: "[paths...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of parallel workers (0 = 2x CPU count)",
			},
			&cli.Int64Flag{
				Name:  "max-file-size",
				Usage: "Skip files larger than this many bytes (0 = no limit)",
			},
			&cli.Float64Flag{
				Name:  "fail-under",
				Usage: "Exit non-zero if any file's maintainability index falls below this value",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("workers") {
		cfg.Analysis.Workers = c.Int("workers")
	}
	if c.IsSet("max-file-size") {
		cfg.Analysis.MaxFileSize = c.Int64("max-file-size")
	}

	files, err := scanner.New(cfg).ScanPaths(getPaths(c))
	if err != nil {
		return fmt.Errorf("failed to scan paths: %w", err)
	}
	if len(files) == 0 {
		color.Yellow("No supported source files found")
		return nil
	}

	cacheEnabled := cfg.Cache.Enabled && !c.Bool("no-cache")
	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cacheEnabled)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	// Serve unchanged files from the cache; only misses get re-analyzed.
	var cached []models.FileMetrics
	hashes := make(map[string]string, len(files))
	misses := make([]string, 0, len(files))
	for _, path := range files {
		hash, err := cache.HashFile(path)
		if err != nil {
			misses = append(misses, path)
			continue
		}
		hashes[path] = hash
		if m, ok := store.Get(hash); ok {
			m.Path = path
			cached = append(cached, m)
			continue
		}
		misses = append(misses, path)
	}

	diags := &diagnosticLog{}
	fresh := analyzeFiles(c, cfg, misses, diags)

	for _, m := range fresh {
		// Parse failures are never cached, so their diagnostics reappear
		// on every run until the file is fixed.
		if m.ParseFailed {
			continue
		}
		if hash, ok := hashes[m.Path]; ok {
			store.Put(hash, m)
		}
	}

	analysis := metrics.BuildAnalysis(append(fresh, cached...))

	if err := renderAnalysis(c, cfg, analysis, diags); err != nil {
		return err
	}

	gate := cfg.Thresholds.MinMaintainability
	if c.IsSet("fail-under") {
		gate = c.Float64("fail-under")
	}
	if gate > 0 && analysis.Summary.MinMaintainability < gate {
		return cli.Exit(fmt.Sprintf("maintainability index %.2f below threshold %.2f",
			analysis.Summary.MinMaintainability, gate), 1)
	}

	return nil
}

// analyzeFiles runs the metrics analyzer over the cache misses with a
// progress bar on stderr.
func analyzeFiles(c *cli.Context, cfg *config.Config, paths []string, diags *diagnosticLog) []models.FileMetrics {
	if len(paths) == 0 {
		return nil
	}

	tracker := progress.NewTracker("Analyzing files...", len(paths))
	analyzer := metrics.New(
		metrics.WithWorkers(cfg.Analysis.Workers),
		metrics.WithMaxFileSize(cfg.Analysis.MaxFileSize),
		metrics.WithProgress(tracker.Tick),
		metrics.WithDiagnostics(diags.add),
	)
	defer analyzer.Close()

	analysis, _ := analyzer.Analyze(c.Context, paths)
	tracker.Finish()
	return analysis.Files
}

// renderAnalysis writes the per-file table plus summary in the selected
// format.
func renderAnalysis(c *cli.Context, cfg *config.Config, analysis *models.Analysis, diags *diagnosticLog) error {
	format := output.ParseFormat(c.String("format"))
	formatter, err := output.NewFormatter(format, c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	colorCells := format == output.FormatText && cfg.Output.Color && c.String("output") == ""

	headers := []string{"File", "LOC", "Complexity", "Maintainability", "Classes", "Depth", "Functions", "Avg Fn Cx"}
	rows := make([][]string, 0, len(analysis.Files))
	for _, f := range analysis.Files {
		m := f.Metrics
		cx := strconv.Itoa(m.CyclomaticComplexity)
		mi := fmt.Sprintf("%.2f", m.MaintainabilityIndex)
		if colorCells && !f.ParseFailed {
			if m.CyclomaticComplexity > cfg.Thresholds.CyclomaticComplexity {
				cx = color.RedString(cx)
			}
			if cfg.Thresholds.MinMaintainability > 0 && m.MaintainabilityIndex < cfg.Thresholds.MinMaintainability {
				mi = color.RedString(mi)
			}
		}
		path := f.Path
		if f.ParseFailed {
			path += " (parse failed)"
		}
		rows = append(rows, []string{
			path,
			strconv.Itoa(m.LinesOfCode),
			cx,
			mi,
			strconv.Itoa(m.ClassCount),
			strconv.Itoa(m.DepthOfInheritance),
			strconv.Itoa(m.MethodCount),
			fmt.Sprintf("%.2f", m.AverageMethodComplexity),
		})
	}

	s := analysis.Summary
	footer := []string{
		fmt.Sprintf("%d files", s.TotalFiles),
		strconv.Itoa(s.TotalLinesOfCode),
		fmt.Sprintf("avg %.2f", s.AvgComplexity),
		fmt.Sprintf("avg %.2f", s.AvgMaintainability),
		strconv.Itoa(s.TotalClasses),
		"",
		strconv.Itoa(s.TotalMethods),
		"",
	}

	table := output.NewTable("Quality Metrics", headers, rows, footer, analysis)
	if err := formatter.Output(table); err != nil {
		return err
	}

	if format == output.FormatText {
		if s.ParseFailures > 0 {
			color.Yellow("%d file(s) failed to parse and were recorded with zeroed metrics", s.ParseFailures)
		}
		if c.Bool("verbose") {
			for _, msg := range diags.messages {
				color.Yellow("  %s", msg)
			}
			fmt.Fprintf(formatter.Writer(), "Complexity percentiles: p50=%.1f p90=%.1f p95=%.1f\n",
				s.P50Complexity, s.P90Complexity, s.P95Complexity)
		}
	}

	return nil
}
