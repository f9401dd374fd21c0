package metrics

import "github.com/aritra741/Qualytics/pkg/ast"

// CountFunctions counts function-like constructs in the whole tree.
// Functions nested inside other functions, classes, or expressions each
// count once, independent of nesting depth.
func CountFunctions(root *ast.Node) int {
	return ast.Count(root, ast.IsFunctionLike)
}
