package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/aritra741/Qualytics/pkg/ast"
)

// logicalOperators are the short-circuit and nullish operators. The
// tree-sitter grammars fold them into binary_expression; the calculators
// need them distinguished as logical expressions.
var logicalOperators = map[string]bool{
	"&&": true,
	"||": true,
	"??": true,
}

// identifierTypes maps every tree-sitter identifier flavor onto the single
// Identifier kind.
var identifierTypes = map[string]bool{
	"identifier":                            true,
	"property_identifier":                   true,
	"shorthand_property_identifier":         true,
	"shorthand_property_identifier_pattern": true,
	"statement_identifier":                  true,
	"type_identifier":                       true,
	"private_property_identifier":           true,
}

// literalTypes are leaf literal tokens. Template strings are not here:
// they contain substitution expressions that must stay reachable.
var literalTypes = map[string]bool{
	"number":    true,
	"string":    true,
	"regex":     true,
	"true":      true,
	"false":     true,
	"null":      true,
	"undefined": true,
}

// convert maps a tree-sitter CST node onto the pkg/ast variant tree. Only
// named children are considered nodes; anonymous punctuation tokens carry
// no kind and are dropped. Returns nil for nodes that contribute nothing
// (comments).
func convert(n *sitter.Node, source []byte) *ast.Node {
	if n == nil {
		return nil
	}

	nodeType := n.Type()

	if identifierTypes[nodeType] {
		return &ast.Node{Kind: ast.KindIdentifier, Name: nodeText(n, source)}
	}
	if literalTypes[nodeType] {
		return &ast.Node{Kind: ast.KindLiteral, Value: nodeText(n, source)}
	}

	switch nodeType {
	case "comment":
		return nil

	case "program":
		return withChildren(&ast.Node{Kind: ast.KindProgram}, n, source)
	case "statement_block":
		return withChildren(&ast.Node{Kind: ast.KindBlockStatement}, n, source)
	case "expression_statement":
		return withChildren(&ast.Node{Kind: ast.KindExpressionStatement}, n, source)
	case "lexical_declaration", "variable_declaration":
		return withChildren(&ast.Node{Kind: ast.KindVariableDeclaration}, n, source)
	case "return_statement":
		return withChildren(&ast.Node{Kind: ast.KindReturnStatement}, n, source)
	case "if_statement":
		return withChildren(&ast.Node{Kind: ast.KindIfStatement}, n, source)
	case "for_statement":
		return withChildren(&ast.Node{Kind: ast.KindForStatement}, n, source)
	case "for_in_statement":
		// One grammar rule covers both for-in and for-of; the operator
		// token tells them apart.
		kind := ast.KindForInStatement
		if op := n.ChildByFieldName("operator"); op != nil && nodeText(op, source) == "of" {
			kind = ast.KindForOfStatement
		}
		return withChildren(&ast.Node{Kind: kind}, n, source)
	case "while_statement":
		return withChildren(&ast.Node{Kind: ast.KindWhileStatement}, n, source)
	case "do_statement":
		return withChildren(&ast.Node{Kind: ast.KindDoWhileStatement}, n, source)
	case "switch_statement":
		return withChildren(&ast.Node{Kind: ast.KindSwitchStatement}, n, source)
	case "switch_case":
		return withChildren(&ast.Node{Kind: ast.KindSwitchCase}, n, source)
	case "switch_default":
		return withChildren(&ast.Node{Kind: ast.KindSwitchCase, Default: true}, n, source)
	case "throw_statement":
		return withChildren(&ast.Node{Kind: ast.KindThrowStatement}, n, source)
	case "try_statement":
		return withChildren(&ast.Node{Kind: ast.KindTryStatement}, n, source)
	case "catch_clause":
		return withChildren(&ast.Node{Kind: ast.KindCatchClause}, n, source)
	case "break_statement":
		return withChildren(&ast.Node{Kind: ast.KindBreakStatement}, n, source)
	case "continue_statement":
		return withChildren(&ast.Node{Kind: ast.KindContinueStatement}, n, source)

	case "function_declaration", "generator_function_declaration":
		return withChildren(&ast.Node{Kind: ast.KindFunctionDeclaration, Name: fieldText(n, "name", source)}, n, source)
	case "function", "function_expression", "generator_function":
		return withChildren(&ast.Node{Kind: ast.KindFunctionExpression, Name: fieldText(n, "name", source)}, n, source)
	case "arrow_function":
		return withChildren(&ast.Node{Kind: ast.KindArrowFunction}, n, source)
	case "method_definition":
		return withChildren(&ast.Node{Kind: ast.KindMethodDefinition, Name: fieldText(n, "name", source)}, n, source)
	case "class_declaration":
		return convertClass(&ast.Node{Kind: ast.KindClassDeclaration, Name: fieldText(n, "name", source)}, n, source)
	case "class":
		return convertClass(&ast.Node{Kind: ast.KindClassExpression, Name: fieldText(n, "name", source)}, n, source)

	case "binary_expression":
		op := fieldText(n, "operator", source)
		kind := ast.KindBinaryExpression
		if logicalOperators[op] {
			kind = ast.KindLogicalExpression
		}
		return withChildren(&ast.Node{Kind: kind, Operator: op}, n, source)
	case "ternary_expression":
		return withChildren(&ast.Node{Kind: ast.KindConditionalExpression}, n, source)
	case "assignment_expression":
		return withChildren(&ast.Node{Kind: ast.KindAssignmentExpression, Operator: "="}, n, source)
	case "augmented_assignment_expression":
		return withChildren(&ast.Node{Kind: ast.KindAssignmentExpression, Operator: fieldText(n, "operator", source)}, n, source)
	case "unary_expression":
		return withChildren(&ast.Node{Kind: ast.KindUnaryExpression, Operator: fieldText(n, "operator", source)}, n, source)
	case "update_expression":
		return withChildren(&ast.Node{Kind: ast.KindUpdateExpression, Operator: fieldText(n, "operator", source)}, n, source)
	case "new_expression":
		return withChildren(&ast.Node{Kind: ast.KindNewExpression}, n, source)
	case "call_expression":
		return withChildren(&ast.Node{Kind: ast.KindCallExpression}, n, source)
	case "member_expression":
		return withChildren(&ast.Node{Kind: ast.KindMemberExpression}, n, source)
	case "subscript_expression":
		return withChildren(&ast.Node{Kind: ast.KindMemberExpression, Computed: true}, n, source)
	case "await_expression":
		return withChildren(&ast.Node{Kind: ast.KindAwaitExpression}, n, source)
	case "yield_expression":
		return withChildren(&ast.Node{Kind: ast.KindYieldExpression}, n, source)

	default:
		return withChildren(&ast.Node{Kind: ast.KindOther}, n, source)
	}
}

// withChildren converts every named child of n and appends it to dst.
func withChildren(dst *ast.Node, n *sitter.Node, source []byte) *ast.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		dst.Append(convert(n.NamedChild(i), source))
	}
	return dst
}

// convertClass converts a class node, lifting the heritage expression out
// of the child list into the Super field.
func convertClass(dst *ast.Node, n *sitter.Node, source []byte) *ast.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "class_heritage" {
			dst.Super = convert(heritageExpression(child), source)
			continue
		}
		dst.Append(convert(child, source))
	}
	return dst
}

// heritageExpression digs the extended expression out of a class_heritage
// node. The JS grammar places the expression directly under the heritage;
// the TypeScript grammars wrap it in an extends_clause with a value field.
func heritageExpression(heritage *sitter.Node) *sitter.Node {
	for i := 0; i < int(heritage.NamedChildCount()); i++ {
		child := heritage.NamedChild(i)
		switch child.Type() {
		case "extends_clause":
			if value := child.ChildByFieldName("value"); value != nil {
				return value
			}
			if child.NamedChildCount() > 0 {
				return child.NamedChild(0)
			}
			return nil
		case "implements_clause":
			// Interface implementation is not inheritance.
			continue
		default:
			return child
		}
	}
	return nil
}

// fieldText returns the source text of a named field, or "".
func fieldText(n *sitter.Node, field string, source []byte) string {
	return nodeText(n.ChildByFieldName(field), source)
}
