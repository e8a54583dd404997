// Package templates provides the page generation pipeline stages: component
// tree building, style resolution, CSS emission and HTML rendering.
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

// CycleError reports components whose parent chain loops without reaching a root
type CycleError struct {
	IDs []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("component parent cycle among: %s", strings.Join(e.IDs, ", "))
}

// BuildComponentTree converts a flat instance list into an ordered forest.
// Children keep input order. A parentId that is empty, dangling or equal to
// the instance's own id makes the instance a root.
func BuildComponentTree(components []builder.ComponentInstance) ([]*rendering.TreeNode, error) {
	byID := make(map[string]int, len(components))
	for i := range components {
		if _, exists := byID[components[i].ID]; !exists {
			byID[components[i].ID] = i
		}
	}

	nodes := make([]*rendering.TreeNode, len(components))
	for i := range components {
		nodes[i] = &rendering.TreeNode{Component: &components[i]}
	}

	var roots []*rendering.TreeNode
	for i := range components {
		c := &components[i]
		parent, ok := resolveParent(c, byID)
		if !ok || parent == i {
			roots = append(roots, nodes[i])
			continue
		}
		nodes[parent].Children = append(nodes[parent].Children, nodes[i])
	}

	reached := 0
	for _, root := range roots {
		reached += root.Count()
	}
	if reached != len(components) {
		return nil, &CycleError{IDs: unreachable(nodes, roots)}
	}

	return roots, nil
}

// resolveParent returns the index of the instance's containing parent
func resolveParent(c *builder.ComponentInstance, byID map[string]int) (int, bool) {
	if c.ParentID == "" || c.ParentID == c.ID {
		return 0, false
	}
	idx, ok := byID[c.ParentID]
	return idx, ok
}

func unreachable(nodes []*rendering.TreeNode, roots []*rendering.TreeNode) []string {
	seen := make(map[*rendering.TreeNode]bool, len(nodes))
	var walk func(n *rendering.TreeNode)
	walk = func(n *rendering.TreeNode) {
		seen[n] = true
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	var ids []string
	for _, n := range nodes {
		if !seen[n] {
			ids = append(ids, n.Component.ID)
		}
	}
	return ids
}

// rootLevelIDs returns the ids of a page's instances that have no resolvable parent
func rootLevelIDs(components []builder.ComponentInstance) map[string]bool {
	byID := make(map[string]int, len(components))
	for i := range components {
		if _, exists := byID[components[i].ID]; !exists {
			byID[components[i].ID] = i
		}
	}

	roots := make(map[string]bool)
	for i := range components {
		if _, ok := resolveParent(&components[i], byID); !ok {
			roots[components[i].ID] = true
		}
	}
	return roots
}
