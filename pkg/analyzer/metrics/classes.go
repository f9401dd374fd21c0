package metrics

import "github.com/aritra741/Qualytics/pkg/ast"

// ClassStructure is the result of one class-structure analysis.
type ClassStructure struct {
	Count    int
	MaxDepth int
}

// AnalyzeClasses counts named class declarations and computes the maximum
// inheritance depth within the file. Depths accumulate in an inheritance
// map built in source-declaration order:
//
//   - no extends clause: depth 1
//   - extends a class declared earlier in the file: parent depth + 1
//   - extends a name not (yet) declared here: synthetic base depth 1,
//     so the class gets depth 2 — cross-file resolution is out of scope
//   - dynamic heritage expressions count as no superclass
//
// Redeclaring a class name overwrites its entry; last declaration wins.
func AnalyzeClasses(root *ast.Node) ClassStructure {
	depths := make(map[string]int)
	count := 0

	ast.Inspect(root, func(n *ast.Node) {
		if n.Kind != ast.KindClassDeclaration || n.Name == "" {
			return
		}
		count++

		depth := 1
		if super := n.SuperName(); super != "" {
			parent, ok := depths[super]
			if !ok {
				parent = 1
			}
			depth = parent + 1
		}
		depths[n.Name] = depth
	})

	maxDepth := 0
	for _, d := range depths {
		if d > maxDepth {
			maxDepth = d
		}
	}

	return ClassStructure{Count: count, MaxDepth: maxDepth}
}
