package ast

// Visitor is invoked once per node during traversal.
type Visitor func(n *Node)

// Walk traverses the tree rooted at n depth-first: enter fires pre-order,
// leave fires post-order. Either callback may be nil. Nil nodes contribute
// nothing, so a malformed node with missing children never aborts a walk.
func Walk(n *Node, enter, leave Visitor) {
	if n == nil {
		return
	}
	if enter != nil {
		enter(n)
	}
	for _, child := range n.Children() {
		Walk(child, enter, leave)
	}
	if leave != nil {
		leave(n)
	}
}

// Inspect walks the tree calling enter on every node. Shorthand for the
// common case where no post-order hook is needed.
func Inspect(n *Node, enter Visitor) {
	Walk(n, enter, nil)
}

// Count returns the number of nodes in the tree satisfying pred.
func Count(n *Node, pred func(*Node) bool) int {
	total := 0
	Inspect(n, func(node *Node) {
		if pred(node) {
			total++
		}
	})
	return total
}
