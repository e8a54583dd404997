// Package templates provides the fallback renderer for unrecognized types
package templates

import (
	"html/template"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

// EmptyNodeRenderer renders components whose type has no dedicated element
type EmptyNodeRenderer struct {
	ctx          *rendering.RenderContext
	nodeRenderer NodeRenderer
}

// NewEmptyNodeRenderer creates a new fallback renderer
func NewEmptyNodeRenderer(ctx *rendering.RenderContext, nodeRenderer NodeRenderer) *EmptyNodeRenderer {
	return &EmptyNodeRenderer{ctx: ctx, nodeRenderer: nodeRenderer}
}

// Render returns a generic <div> with a comment naming the component,
// any props.text, then the rendered children
func (enr *EmptyNodeRenderer) Render(nodeID string) string {
	c := getNode(enr.ctx, nodeID)
	if c == nil {
		return RenderEmpty()
	}

	return openTag("div", attrsFor(c, ""), nodeID) + "\n" +
		"  <!-- " + commentText(c.Name) + " (" + commentText(string(c.Type)) + ") -->\n" +
		"  " + template.HTMLEscapeString(c.Props.Text()) + "\n" +
		"  " + renderChildren(enr.nodeRenderer, nodeID) + "\n" +
		"</div>"
}

// RenderEmpty is a static method for quick empty node rendering
func RenderEmpty() string {
	return `<div></div>`
}
