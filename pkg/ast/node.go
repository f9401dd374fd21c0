// Package ast defines the syntax tree consumed by the metric calculators.
//
// Nodes form a closed tagged-variant type: every node carries a Kind drawn
// from a fixed enumeration, and children are reachable only through the
// ordered Children accessor. The tree is produced once by pkg/parser, is
// acyclic, and is borrowed read-only by every calculator.
package ast

// Kind identifies the syntactic variant of a Node.
type Kind string

// Statement kinds.
const (
	KindProgram             Kind = "Program"
	KindExpressionStatement Kind = "ExpressionStatement"
	KindVariableDeclaration Kind = "VariableDeclaration"
	KindReturnStatement     Kind = "ReturnStatement"
	KindIfStatement         Kind = "IfStatement"
	KindForStatement        Kind = "ForStatement"
	KindForInStatement      Kind = "ForInStatement"
	KindForOfStatement      Kind = "ForOfStatement"
	KindWhileStatement      Kind = "WhileStatement"
	KindDoWhileStatement    Kind = "DoWhileStatement"
	KindSwitchStatement     Kind = "SwitchStatement"
	KindSwitchCase          Kind = "SwitchCase"
	KindThrowStatement      Kind = "ThrowStatement"
	KindTryStatement        Kind = "TryStatement"
	KindCatchClause         Kind = "CatchClause"
	KindBreakStatement      Kind = "BreakStatement"
	KindContinueStatement   Kind = "ContinueStatement"
	KindBlockStatement      Kind = "BlockStatement"
)

// Declaration kinds.
const (
	KindFunctionDeclaration Kind = "FunctionDeclaration"
	KindFunctionExpression  Kind = "FunctionExpression"
	KindArrowFunction       Kind = "ArrowFunction"
	KindMethodDefinition    Kind = "MethodDefinition"
	KindClassDeclaration    Kind = "ClassDeclaration"
	KindClassExpression     Kind = "ClassExpression"
)

// Expression kinds.
const (
	KindBinaryExpression      Kind = "BinaryExpression"
	KindLogicalExpression     Kind = "LogicalExpression"
	KindConditionalExpression Kind = "ConditionalExpression"
	KindAssignmentExpression  Kind = "AssignmentExpression"
	KindUnaryExpression       Kind = "UnaryExpression"
	KindUpdateExpression      Kind = "UpdateExpression"
	KindNewExpression         Kind = "NewExpression"
	KindCallExpression        Kind = "CallExpression"
	KindMemberExpression      Kind = "MemberExpression"
	KindAwaitExpression       Kind = "AwaitExpression"
	KindYieldExpression       Kind = "YieldExpression"
	KindIdentifier            Kind = "Identifier"
	KindLiteral               Kind = "Literal"
)

// KindOther is the explicit catch-all for structural nodes the calculators
// never inspect directly (object literals, JSX elements, parameter lists).
// They still participate in traversal so nothing underneath them is missed.
const KindOther Kind = "Other"

// Node is one syntax tree node. Only the fields relevant to a node's Kind
// are populated; the rest stay at their zero values.
type Node struct {
	Kind Kind

	// Name holds identifier text. For Identifier nodes it is the
	// identifier itself; for function, method, and class kinds it is the
	// declared name (empty for anonymous declarations).
	Name string

	// Value holds the raw source token of a Literal.
	Value string

	// Operator holds the operator token of binary, logical, assignment,
	// unary, and update expressions.
	Operator string

	// Computed marks bracket member access (a[b] rather than a.b).
	Computed bool

	// Default marks a switch case with no test expression.
	Default bool

	// Super holds the heritage expression of a class, nil when the class
	// has no extends clause.
	Super *Node

	// Body holds the remaining ordered children.
	Body []*Node
}

// Children returns every child node in source order. The heritage
// expression of a class precedes its body, matching where the extends
// clause appears in source.
func (n *Node) Children() []*Node {
	if n.Super == nil {
		return n.Body
	}
	kids := make([]*Node, 0, len(n.Body)+1)
	kids = append(kids, n.Super)
	return append(kids, n.Body...)
}

// Append adds child nodes, skipping nils so converters can pass optional
// fields without guarding every call.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Body = append(n.Body, c)
		}
	}
	return n
}

// SuperName returns the superclass name when the heritage expression is a
// plain identifier, and "" otherwise. Dynamic heritage expressions are
// treated the same as no superclass.
func (n *Node) SuperName() string {
	if n.Super != nil && n.Super.Kind == KindIdentifier {
		return n.Super.Name
	}
	return ""
}
