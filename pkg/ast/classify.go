package ast

// executableKinds defines what counts as one logical line of code: one
// executable construct, independent of physical line breaks.
var executableKinds = map[Kind]bool{
	KindExpressionStatement: true,
	KindVariableDeclaration: true,
	KindReturnStatement:     true,
	KindIfStatement:         true,
	KindForStatement:        true,
	KindForInStatement:      true,
	KindForOfStatement:      true,
	KindWhileStatement:      true,
	KindDoWhileStatement:    true,
	KindSwitchStatement:     true,
	KindThrowStatement:      true,
	KindTryStatement:        true,
	KindFunctionDeclaration: true,
	KindClassDeclaration:    true,
	KindBreakStatement:      true,
	KindContinueStatement:   true,
	KindAwaitExpression:     true,
	KindYieldExpression:     true,
}

// functionKinds covers every function-like construct, nested or not.
var functionKinds = map[Kind]bool{
	KindFunctionDeclaration: true,
	KindFunctionExpression:  true,
	KindArrowFunction:       true,
	KindMethodDefinition:    true,
}

// IsExecutable reports whether n counts as an executable statement.
func IsExecutable(n *Node) bool {
	return n != nil && executableKinds[n.Kind]
}

// IsFunctionLike reports whether n declares a function, method, arrow
// function, or function expression.
func IsFunctionLike(n *Node) bool {
	return n != nil && functionKinds[n.Kind]
}
