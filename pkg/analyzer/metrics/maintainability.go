package metrics

import "math"

// MaintainabilityIndex combines Halstead volume, cyclomatic complexity,
// and logical lines of code into the normalized 0-100 maintainability
// score:
//
//	raw = 171 - 5.2*ln(volume) - 0.23*complexity - 16.2*ln(loc)
//
// rescaled so the classical ceiling of 171 maps to 100 and clamped to
// [0, 100]. The natural log of a non-positive argument is treated as 0,
// so degenerate inputs can never produce a domain error.
func MaintainabilityIndex(volume float64, complexity, linesOfCode int) float64 {
	raw := 171 - 5.2*safeLog(volume) - 0.23*float64(complexity) - 16.2*safeLog(float64(linesOfCode))
	index := raw * 100 / 171
	if index < 0 {
		return 0
	}
	if index > 100 {
		return 100
	}
	return index
}

func safeLog(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log(v)
}
