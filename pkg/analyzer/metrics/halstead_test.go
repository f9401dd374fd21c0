package metrics

import (
	"math"
	"testing"

	"github.com/aritra741/Qualytics/pkg/ast"
)

const volumeTolerance = 1e-9

func TestCollectHalsteadBinary(t *testing.T) {
	// a + b
	expr := &ast.Node{Kind: ast.KindBinaryExpression, Operator: "+"}
	expr.Append(
		&ast.Node{Kind: ast.KindIdentifier, Name: "a"},
		&ast.Node{Kind: ast.KindIdentifier, Name: "b"},
	)
	root := (&ast.Node{Kind: ast.KindProgram}).Append(
		(&ast.Node{Kind: ast.KindExpressionStatement}).Append(expr),
	)

	m := CollectHalstead(root)
	if m.DistinctOperators != 1 || m.TotalOperators != 1 {
		t.Errorf("operators = (%d, %d), want (1, 1)", m.DistinctOperators, m.TotalOperators)
	}
	if m.DistinctOperands != 2 || m.TotalOperands != 2 {
		t.Errorf("operands = (%d, %d), want (2, 2)", m.DistinctOperands, m.TotalOperands)
	}

	want := 3 * math.Log2(3)
	if math.Abs(m.Volume-want) > volumeTolerance {
		t.Errorf("Volume = %v, want %v", m.Volume, want)
	}
}

func TestCollectHalsteadCallOperator(t *testing.T) {
	// foo(1) — direct identifier calls register a call operator.
	call := &ast.Node{Kind: ast.KindCallExpression}
	call.Append(
		&ast.Node{Kind: ast.KindIdentifier, Name: "foo"},
		&ast.Node{Kind: ast.KindLiteral, Value: "1"},
	)
	root := (&ast.Node{Kind: ast.KindProgram}).Append(call)

	m := CollectHalstead(root)
	if m.DistinctOperators != 1 {
		t.Errorf("DistinctOperators = %d, want 1 (the call)", m.DistinctOperators)
	}
	if m.DistinctOperands != 2 {
		t.Errorf("DistinctOperands = %d, want 2 (foo, 1)", m.DistinctOperands)
	}
}

func TestCollectHalsteadMemberCallNoOperator(t *testing.T) {
	// obj.method() — calls through member access contribute no call operator.
	member := &ast.Node{Kind: ast.KindMemberExpression}
	member.Append(
		&ast.Node{Kind: ast.KindIdentifier, Name: "obj"},
		&ast.Node{Kind: ast.KindIdentifier, Name: "method"},
	)
	call := (&ast.Node{Kind: ast.KindCallExpression}).Append(member)
	root := (&ast.Node{Kind: ast.KindProgram}).Append(call)

	m := CollectHalstead(root)
	if m.DistinctOperators != 0 {
		t.Errorf("DistinctOperators = %d, want 0", m.DistinctOperators)
	}
}

func TestCollectHalsteadMemberProperty(t *testing.T) {
	// obj.prop — the property counts as an operand both as identifier and
	// as property access.
	member := &ast.Node{Kind: ast.KindMemberExpression}
	member.Append(
		&ast.Node{Kind: ast.KindIdentifier, Name: "obj"},
		&ast.Node{Kind: ast.KindIdentifier, Name: "prop"},
	)
	root := (&ast.Node{Kind: ast.KindProgram}).Append(member)

	m := CollectHalstead(root)
	if m.DistinctOperands != 2 {
		t.Errorf("DistinctOperands = %d, want 2", m.DistinctOperands)
	}
	if m.TotalOperands != 3 {
		t.Errorf("TotalOperands = %d, want 3 (obj, prop twice)", m.TotalOperands)
	}
}

func TestCollectHalsteadComputedMember(t *testing.T) {
	// a[b] — computed access adds no property operand.
	member := &ast.Node{Kind: ast.KindMemberExpression, Computed: true}
	member.Append(
		&ast.Node{Kind: ast.KindIdentifier, Name: "a"},
		&ast.Node{Kind: ast.KindIdentifier, Name: "b"},
	)
	root := (&ast.Node{Kind: ast.KindProgram}).Append(member)

	m := CollectHalstead(root)
	if m.TotalOperands != 2 {
		t.Errorf("TotalOperands = %d, want 2", m.TotalOperands)
	}
}

func TestCollectHalsteadConditionalAndNew(t *testing.T) {
	cond := &ast.Node{Kind: ast.KindConditionalExpression}
	cond.Append(
		&ast.Node{Kind: ast.KindIdentifier, Name: "c"},
		(&ast.Node{Kind: ast.KindNewExpression}).Append(&ast.Node{Kind: ast.KindIdentifier, Name: "X"}),
		&ast.Node{Kind: ast.KindLiteral, Value: "null"},
	)
	root := (&ast.Node{Kind: ast.KindProgram}).Append(cond)

	m := CollectHalstead(root)
	// operators: "?:" and "new"
	if m.DistinctOperators != 2 {
		t.Errorf("DistinctOperators = %d, want 2", m.DistinctOperators)
	}
	// operands: c, X, null
	if m.DistinctOperands != 3 {
		t.Errorf("DistinctOperands = %d, want 3", m.DistinctOperands)
	}
}

func TestCollectHalsteadEmpty(t *testing.T) {
	m := CollectHalstead(&ast.Node{Kind: ast.KindProgram})
	if m.Volume != 0 {
		t.Errorf("Volume = %v, want 0", m.Volume)
	}
	if m.Vocabulary != 0 || m.Length != 0 {
		t.Errorf("Vocabulary = %d, Length = %d, want 0 and 0", m.Vocabulary, m.Length)
	}
}

func TestCollectHalsteadRepeatedTokens(t *testing.T) {
	// x + x + x: distinct stays small while totals grow.
	inner := &ast.Node{Kind: ast.KindBinaryExpression, Operator: "+"}
	inner.Append(
		&ast.Node{Kind: ast.KindIdentifier, Name: "x"},
		&ast.Node{Kind: ast.KindIdentifier, Name: "x"},
	)
	outer := &ast.Node{Kind: ast.KindBinaryExpression, Operator: "+"}
	outer.Append(inner, &ast.Node{Kind: ast.KindIdentifier, Name: "x"})
	root := (&ast.Node{Kind: ast.KindProgram}).Append(outer)

	m := CollectHalstead(root)
	if m.DistinctOperators != 1 || m.TotalOperators != 2 {
		t.Errorf("operators = (%d, %d), want (1, 2)", m.DistinctOperators, m.TotalOperators)
	}
	if m.DistinctOperands != 1 || m.TotalOperands != 3 {
		t.Errorf("operands = (%d, %d), want (1, 3)", m.DistinctOperands, m.TotalOperands)
	}
	want := 5 * math.Log2(2)
	if math.Abs(m.Volume-want) > volumeTolerance {
		t.Errorf("Volume = %v, want %v", m.Volume, want)
	}
}
