package metrics

import "github.com/aritra741/Qualytics/pkg/ast"

// CountLogicalLines counts executable constructs in the tree. A single
// physical line holding two statements counts as two; a multi-line if
// counts as one.
func CountLogicalLines(root *ast.Node) int {
	return ast.Count(root, ast.IsExecutable)
}
