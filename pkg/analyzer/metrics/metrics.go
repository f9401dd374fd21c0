// Package metrics computes per-file static quality metrics — logical
// lines of code, cyclomatic complexity, Halstead volume, maintainability
// index, class structure, and function counts — from parsed syntax trees.
package metrics

import (
	"context"
	"errors"
	"os"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/aritra741/Qualytics/internal/fileproc"
	"github.com/aritra741/Qualytics/pkg/analyzer"
	"github.com/aritra741/Qualytics/pkg/ast"
	"github.com/aritra741/Qualytics/pkg/models"
	"github.com/aritra741/Qualytics/pkg/parser"
)

// Ensure Analyzer implements analyzer.FileAnalyzer.
var _ analyzer.FileAnalyzer[*models.Analysis] = (*Analyzer)(nil)

// DiagnosticFunc receives one message per file whose source failed to
// parse or read. The file still yields exactly one zeroed record.
type DiagnosticFunc func(path string, err error)

// Analyzer computes CodeMetrics for files and projects.
type Analyzer struct {
	parser      *parser.Parser
	maxFileSize int64
	workers     int
	onProgress  fileproc.ProgressFunc
	onDiagnose  DiagnosticFunc
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithMaxFileSize sets the maximum file size to analyze (0 = no limit).
func WithMaxFileSize(maxSize int64) Option {
	return func(a *Analyzer) { a.maxFileSize = maxSize }
}

// WithWorkers sets the parallel worker count (0 = default).
func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.workers = n }
}

// WithProgress sets a callback invoked after each analyzed file.
func WithProgress(fn fileproc.ProgressFunc) Option {
	return func(a *Analyzer) { a.onProgress = fn }
}

// WithDiagnostics sets the diagnostics sink for parse and read failures.
func WithDiagnostics(fn DiagnosticFunc) Option {
	return func(a *Analyzer) { a.onDiagnose = fn }
}

// New creates a metrics analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{parser: parser.New()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Close releases analyzer resources.
func (a *Analyzer) Close() {
	a.parser.Close()
}

// Compute runs every calculator over an already-parsed tree and combines
// the results into one sanitized record. The tree is read, never mutated,
// so concurrent calls over distinct trees are safe.
func Compute(root *ast.Node) models.CodeMetrics {
	loc := CountLogicalLines(root)
	complexity := CyclomaticComplexity(root)
	volume := CollectHalstead(root).Volume
	classes := AnalyzeClasses(root)
	methods := CountFunctions(root)

	avgMethodComplexity := 0.0
	if methods > 0 {
		avgMethodComplexity = float64(complexity) / float64(methods)
	}

	return models.CodeMetrics{
		LinesOfCode:             loc,
		CyclomaticComplexity:    complexity,
		MaintainabilityIndex:    MaintainabilityIndex(volume, complexity, loc),
		DepthOfInheritance:      classes.MaxDepth,
		ClassCount:              classes.Count,
		MethodCount:             methods,
		AverageMethodComplexity: avgMethodComplexity,
	}.Sanitize()
}

// AnalyzeSource analyzes source text identified by path. A syntax error
// is not an error to the caller: it is reported once through the
// diagnostics sink and the returned record is all zeros.
func (a *Analyzer) AnalyzeSource(source []byte, path string) models.FileMetrics {
	return analyzeSource(a.parser, source, path, a.onDiagnose)
}

// AnalyzeFile reads and analyzes a single file. Read errors and
// unsupported languages are returned; syntax errors degrade to a zeroed
// record as in AnalyzeSource.
func (a *Analyzer) AnalyzeFile(path string) (models.FileMetrics, error) {
	return analyzeFile(a.parser, path, a.onDiagnose)
}

// Analyze analyzes all files in parallel. Each worker owns a parser, so
// per-file runs share nothing. Files that fail to parse appear as zeroed
// records; files that cannot be read are reported to the diagnostics sink
// and omitted.
func (a *Analyzer) Analyze(ctx context.Context, files []string) (*models.Analysis, error) {
	results, errs := fileproc.MapFilesN(ctx, files, a.workers, func(psr *parser.Parser, path string) (models.FileMetrics, error) {
		if a.maxFileSize > 0 {
			if info, err := os.Stat(path); err == nil && info.Size() > a.maxFileSize {
				return models.FileMetrics{}, errFileTooLarge
			}
		}
		return analyzeFile(psr, path, a.onDiagnose)
	}, a.onProgress)

	if errs != nil && a.onDiagnose != nil {
		for _, pe := range errs.Errors {
			a.onDiagnose(pe.Path, pe.Err)
		}
	}

	return BuildAnalysis(results), nil
}

var errFileTooLarge = errors.New("file exceeds size limit")

func analyzeFile(psr *parser.Parser, path string, diagnose DiagnosticFunc) (models.FileMetrics, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return models.FileMetrics{}, err
	}
	lang := parser.DetectLanguage(path)
	if lang == parser.LangUnknown {
		return models.FileMetrics{}, parser.ErrUnsupportedLanguage
	}
	return analyzeSource(psr, source, path, diagnose), nil
}

func analyzeSource(psr *parser.Parser, source []byte, path string, diagnose DiagnosticFunc) models.FileMetrics {
	lang := parser.DetectLanguage(path)
	if lang == parser.LangUnknown {
		lang = parser.LangJavaScript
	}

	result, err := psr.Parse(source, lang, path)
	if err != nil {
		if diagnose != nil {
			diagnose(path, err)
		}
		return models.FileMetrics{
			Path:        path,
			Language:    string(lang),
			ParseFailed: true,
		}
	}

	return models.FileMetrics{
		Path:     path,
		Language: string(result.Language),
		Metrics:  Compute(result.Root),
	}
}

// BuildAnalysis sorts per-file results and derives aggregate statistics.
// Exposed so callers merging cached and fresh results can rebuild the
// summary over the full set.
func BuildAnalysis(results []models.FileMetrics) *models.Analysis {
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	analysis := &models.Analysis{Files: results}
	summary := &analysis.Summary
	summary.TotalFiles = len(results)

	var complexities, maintainabilities []float64
	for _, f := range results {
		if f.ParseFailed {
			summary.ParseFailures++
			continue
		}
		m := f.Metrics
		summary.TotalClasses += m.ClassCount
		summary.TotalMethods += m.MethodCount
		summary.TotalLinesOfCode += m.LinesOfCode
		complexities = append(complexities, float64(m.CyclomaticComplexity))
		maintainabilities = append(maintainabilities, m.MaintainabilityIndex)
	}

	if len(complexities) > 0 {
		summary.AvgComplexity = stat.Mean(complexities, nil)
		summary.AvgMaintainability = stat.Mean(maintainabilities, nil)

		sort.Float64s(complexities)
		summary.P50Complexity = stat.Quantile(0.50, stat.Empirical, complexities, nil)
		summary.P90Complexity = stat.Quantile(0.90, stat.Empirical, complexities, nil)
		summary.P95Complexity = stat.Quantile(0.95, stat.Empirical, complexities, nil)

		sort.Float64s(maintainabilities)
		summary.MinMaintainability = maintainabilities[0]
	}

	return analysis
}
