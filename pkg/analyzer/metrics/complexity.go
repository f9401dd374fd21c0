package metrics

import "github.com/aritra741/Qualytics/pkg/ast"

// decisionKinds are node kinds that add one decision point each.
var decisionKinds = map[ast.Kind]bool{
	ast.KindIfStatement:           true,
	ast.KindForStatement:          true,
	ast.KindForInStatement:        true,
	ast.KindForOfStatement:        true,
	ast.KindWhileStatement:        true,
	ast.KindDoWhileStatement:      true,
	ast.KindCatchClause:           true,
	ast.KindConditionalExpression: true,
	ast.KindTryStatement:          true,
	ast.KindThrowStatement:        true,
}

// shortCircuitOperators are the logical operators that branch at
// execution level even though they are syntactically expressions.
var shortCircuitOperators = map[string]bool{
	"&&": true,
	"||": true,
	"??": true,
}

// CyclomaticComplexity counts linearly independent execution paths via
// decision points, starting from the single default path. A switch case
// with a test adds one; a default clause does not.
func CyclomaticComplexity(root *ast.Node) int {
	complexity := 1
	ast.Inspect(root, func(n *ast.Node) {
		switch {
		case decisionKinds[n.Kind]:
			complexity++
		case n.Kind == ast.KindSwitchCase && !n.Default:
			complexity++
		case n.Kind == ast.KindLogicalExpression && shortCircuitOperators[n.Operator]:
			complexity++
		}
	})
	return complexity
}
