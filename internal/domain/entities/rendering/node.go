// Package rendering provides domain entities for HTML rendering operations
package rendering

import "github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"

// TreeNode is one component instance and its direct children in document order
type TreeNode struct {
	Component *builder.ComponentInstance
	Children  []*TreeNode
}

// Count returns the number of nodes in the subtree rooted at n
func (n *TreeNode) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}
