// Package models defines the serializable records produced by the
// analyzer. Every numeric field in a returned record is finite.
package models

import "math"

// CodeMetrics is the per-file quality record. A file that fails to parse
// yields the zero value of this struct.
type CodeMetrics struct {
	LinesOfCode             int     `json:"lines_of_code" toon:"lines_of_code"`
	CyclomaticComplexity    int     `json:"cyclomatic_complexity" toon:"cyclomatic_complexity"`
	MaintainabilityIndex    float64 `json:"maintainability_index" toon:"maintainability_index"`
	DepthOfInheritance      int     `json:"depth_of_inheritance" toon:"depth_of_inheritance"`
	ClassCount              int     `json:"class_count" toon:"class_count"`
	MethodCount             int     `json:"method_count" toon:"method_count"`
	AverageMethodComplexity float64 `json:"average_method_complexity" toon:"average_method_complexity"`
}

// Sanitize replaces any non-finite field with 0 and returns the record.
// Degenerate arithmetic is already guarded at each calculator, so this is
// the final boundary check before a record reaches a caller.
func (m CodeMetrics) Sanitize() CodeMetrics {
	m.MaintainabilityIndex = finite(m.MaintainabilityIndex)
	m.AverageMethodComplexity = finite(m.AverageMethodComplexity)
	return m
}

// IsZero reports whether every field is zero, the shape of a parse
// failure.
func (m CodeMetrics) IsZero() bool {
	return m == CodeMetrics{}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FileMetrics keys one CodeMetrics record by the file it describes.
type FileMetrics struct {
	Path        string      `json:"path" toon:"path"`
	Language    string      `json:"language" toon:"language"`
	Metrics     CodeMetrics `json:"metrics" toon:"metrics"`
	ParseFailed bool        `json:"parse_failed,omitempty" toon:"parse_failed"`
}

// Analysis is the full result of a project run.
type Analysis struct {
	Files   []FileMetrics `json:"files" toon:"files"`
	Summary Summary       `json:"summary" toon:"summary"`
}

// Summary aggregates metrics across analyzed files.
type Summary struct {
	TotalFiles         int     `json:"total_files" toon:"total_files"`
	ParseFailures      int     `json:"parse_failures" toon:"parse_failures"`
	TotalClasses       int     `json:"total_classes" toon:"total_classes"`
	TotalMethods       int     `json:"total_methods" toon:"total_methods"`
	TotalLinesOfCode   int     `json:"total_lines_of_code" toon:"total_lines_of_code"`
	AvgComplexity      float64 `json:"avg_complexity" toon:"avg_complexity"`
	AvgMaintainability float64 `json:"avg_maintainability" toon:"avg_maintainability"`
	P50Complexity      float64 `json:"p50_complexity" toon:"p50_complexity"`
	P90Complexity      float64 `json:"p90_complexity" toon:"p90_complexity"`
	P95Complexity      float64 `json:"p95_complexity" toon:"p95_complexity"`
	MinMaintainability float64 `json:"min_maintainability" toon:"min_maintainability"`
}
