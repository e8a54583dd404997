// Package templates provides button element rendering
package templates

import (
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

// nodeButtonTmpl renders buttons as links so they work without scripts
var nodeButtonTmpl = elementTemplate("nodeButton",
	`<a {{template "attrs" .Attrs}} href="{{.Href}}" target="{{.Target}}" role="button">{{.Text}}</a>`,
)

type nodeButtonData struct {
	Attrs  elementAttrs
	Href   string
	Target string
	Text   string
}

// NodeButtonRenderer renders button components
type NodeButtonRenderer struct {
	ctx *rendering.RenderContext
}

// NewNodeButtonRenderer creates a new button renderer
func NewNodeButtonRenderer(ctx *rendering.RenderContext) *NodeButtonRenderer {
	return &NodeButtonRenderer{ctx: ctx}
}

// Render returns <a role="button"> with the raw link passed through
func (nbr *NodeButtonRenderer) Render(nodeID string) string {
	c := getNode(nbr.ctx, nodeID)
	if c == nil {
		return ""
	}

	button, _ := c.Props.Content.(builder.ButtonContent)
	data := nodeButtonData{
		Attrs:  attrsFor(c, "button"),
		Href:   "#",
		Target: "_self",
		Text:   "Button",
	}
	if button.Link != "" {
		data.Href = button.Link
	}
	if button.Target != "" {
		data.Target = button.Target
	}
	if button.Text != "" {
		data.Text = button.Text
	}

	return execute(nodeButtonTmpl, nodeID, data)
}
