package metrics

import (
	"math"

	"github.com/aritra741/Qualytics/pkg/ast"
)

// HalsteadMetrics holds the counting primitives of one Halstead run and
// the derived program volume. Only the volume feeds the public record.
type HalsteadMetrics struct {
	DistinctOperators int // n1
	DistinctOperands  int // n2
	TotalOperators    int // N1
	TotalOperands     int // N2
	Vocabulary        int // n1 + n2
	Length            int // N1 + N2
	Volume            float64
}

// halsteadAccumulator gathers operator and operand occurrences during one
// traversal. It is created per analysis call, never shared.
type halsteadAccumulator struct {
	operators map[string]int
	operands  map[string]int
}

// CollectHalstead traverses the tree and computes Halstead metrics.
//
// Operators: the operator token of binary, logical, assignment, update,
// and unary expressions; "?:" per conditional; "new" per new-expression;
// "name()" per call whose callee is a plain identifier. Calls through
// member or computed expressions contribute no call operator — an
// intentional simplification.
//
// Operands: every identifier name, every literal's source text, and the
// property name of non-computed member access.
func CollectHalstead(root *ast.Node) HalsteadMetrics {
	acc := &halsteadAccumulator{
		operators: make(map[string]int),
		operands:  make(map[string]int),
	}
	ast.Inspect(root, acc.visit)
	return acc.metrics()
}

func (h *halsteadAccumulator) visit(n *ast.Node) {
	switch n.Kind {
	case ast.KindBinaryExpression, ast.KindLogicalExpression,
		ast.KindAssignmentExpression, ast.KindUpdateExpression,
		ast.KindUnaryExpression:
		if n.Operator != "" {
			h.operators[n.Operator]++
		}
	case ast.KindConditionalExpression:
		h.operators["?:"]++
	case ast.KindNewExpression:
		h.operators["new"]++
	case ast.KindCallExpression:
		if callee := firstChild(n); callee != nil && callee.Kind == ast.KindIdentifier {
			h.operators[callee.Name+"()"]++
		}
	case ast.KindIdentifier:
		h.operands[n.Name]++
	case ast.KindLiteral:
		h.operands[n.Value]++
	case ast.KindMemberExpression:
		if !n.Computed {
			if prop := propertyOf(n); prop != nil && prop.Kind == ast.KindIdentifier {
				h.operands[prop.Name]++
			}
		}
	}
}

func (h *halsteadAccumulator) metrics() HalsteadMetrics {
	m := HalsteadMetrics{
		DistinctOperators: len(h.operators),
		DistinctOperands:  len(h.operands),
	}
	for _, count := range h.operators {
		m.TotalOperators += count
	}
	for _, count := range h.operands {
		m.TotalOperands += count
	}
	m.Vocabulary = m.DistinctOperators + m.DistinctOperands
	m.Length = m.TotalOperators + m.TotalOperands
	if m.Vocabulary > 0 {
		m.Volume = float64(m.Length) * math.Log2(float64(m.Vocabulary))
	}
	return m
}

// firstChild returns the first child node, the callee position of a call.
func firstChild(n *ast.Node) *ast.Node {
	if len(n.Body) == 0 {
		return nil
	}
	return n.Body[0]
}

// propertyOf returns the property node of a member expression, which sits
// after the object in source order.
func propertyOf(n *ast.Node) *ast.Node {
	if len(n.Body) < 2 {
		return nil
	}
	return n.Body[len(n.Body)-1]
}
