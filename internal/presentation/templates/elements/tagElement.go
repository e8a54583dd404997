// Package templates provides layout container rendering
package templates

import (
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

var containerOpenTmpl = elementTemplate("containerOpen", `<div {{template "attrs" .}}>`)

// TagElementRenderer renders layout wrappers (container, section, columns,
// grid, flex and grid containers) around their children
type TagElementRenderer struct {
	ctx          *rendering.RenderContext
	nodeRenderer NodeRenderer
}

// NewTagElementRenderer creates a new tag element renderer
func NewTagElementRenderer(ctx *rendering.RenderContext, nodeRenderer NodeRenderer) *TagElementRenderer {
	return &TagElementRenderer{
		ctx:          ctx,
		nodeRenderer: nodeRenderer,
	}
}

// Render returns a <div> holding the rendered children in order
func (ter *TagElementRenderer) Render(nodeID string) string {
	c := getNode(ter.ctx, nodeID)
	if c == nil {
		return ""
	}

	html := execute(containerOpenTmpl, nodeID, attrsFor(c, ""))
	if children := renderChildren(ter.nodeRenderer, nodeID); children != "" {
		html += "\n" + children + "\n"
	}
	return html + "</div>"
}
