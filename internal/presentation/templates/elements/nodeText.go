// Package templates provides text and heading element rendering
package templates

import (
	"html/template"
	"strconv"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

var nodeTextTmpl = elementTemplate("nodeText", `<p {{template "attrs" .Attrs}}>{{.Text}}</p>`)

type nodeTextData struct {
	Attrs elementAttrs
	Text  string
}

// NodeTextRenderer renders text components as paragraphs
type NodeTextRenderer struct {
	ctx *rendering.RenderContext
}

// NewNodeTextRenderer creates a new node text renderer
func NewNodeTextRenderer(ctx *rendering.RenderContext) *NodeTextRenderer {
	return &NodeTextRenderer{ctx: ctx}
}

// Render returns <p> with the escaped props.text
func (ntr *NodeTextRenderer) Render(nodeID string) string {
	c := getNode(ntr.ctx, nodeID)
	if c == nil {
		return ""
	}
	return execute(nodeTextTmpl, nodeID, nodeTextData{
		Attrs: attrsFor(c, ""),
		Text:  c.Props.Text(),
	})
}

// NodeHeadingRenderer renders heading components as h1..h6
type NodeHeadingRenderer struct {
	ctx *rendering.RenderContext
}

// NewNodeHeadingRenderer creates a new heading renderer
func NewNodeHeadingRenderer(ctx *rendering.RenderContext) *NodeHeadingRenderer {
	return &NodeHeadingRenderer{ctx: ctx}
}

// Render writes the heading tag manually since the level is dynamic
func (nhr *NodeHeadingRenderer) Render(nodeID string) string {
	c := getNode(nhr.ctx, nodeID)
	if c == nil {
		return ""
	}

	tag := "h" + strconv.Itoa(HeadingLevel(c))
	return openTag(tag, attrsFor(c, ""), nodeID) +
		template.HTMLEscapeString(c.Props.Text()) +
		"</" + tag + ">"
}

// HeadingLevel returns props.level clamped to 1..6, defaulting to 2
func HeadingLevel(c *builder.ComponentInstance) int {
	heading, ok := c.Props.Content.(builder.HeadingContent)
	if !ok || heading.Level == 0 {
		return 2
	}
	switch {
	case heading.Level < 1:
		return 1
	case heading.Level > 6:
		return 6
	}
	return heading.Level
}
