package analyzer

import "context"

// FileAnalyzer is the interface file-based analyzers implement.
type FileAnalyzer[T any] interface {
	// Analyze processes a collection of files and returns the result.
	// The context is used for cancellation.
	Analyze(ctx context.Context, files []string) (T, error)

	// Close releases any resources held by the analyzer.
	Close()
}
