// Package rendering provides domain entities for HTML rendering operations
package rendering

import "github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"

// RenderContext provides the context for HTML rendering operations
type RenderContext struct {
	// Pages is the full project page list, available for link resolution
	Pages []builder.Page `json:"pages,omitempty"`
	// AssetPaths maps an authored asset reference to its output URL
	AssetPaths map[string]string `json:"assetPaths,omitempty"`

	AllNodes    map[string]*builder.ComponentInstance `json:"-"`
	ParentNodes map[string][]string                   `json:"-"`
	RootNodes   []string                              `json:"-"`
}

// NewRenderContext indexes a component forest for rendering by node id
func NewRenderContext(roots []*TreeNode, pages []builder.Page, assetPaths map[string]string) *RenderContext {
	ctx := &RenderContext{
		Pages:       pages,
		AssetPaths:  assetPaths,
		AllNodes:    make(map[string]*builder.ComponentInstance),
		ParentNodes: make(map[string][]string),
	}

	var index func(node *TreeNode)
	index = func(node *TreeNode) {
		id := node.Component.ID
		ctx.AllNodes[id] = node.Component
		for _, child := range node.Children {
			ctx.ParentNodes[id] = append(ctx.ParentNodes[id], child.Component.ID)
			index(child)
		}
	}
	for _, root := range roots {
		ctx.RootNodes = append(ctx.RootNodes, root.Component.ID)
		index(root)
	}
	return ctx
}

// ResolveAsset returns the output URL for an authored reference, or the
// reference unchanged when it is not a collected asset.
func (rc *RenderContext) ResolveAsset(ref string) string {
	if rc == nil || rc.AssetPaths == nil {
		return ref
	}
	if rewritten, ok := rc.AssetPaths[ref]; ok {
		return rewritten
	}
	return ref
}
