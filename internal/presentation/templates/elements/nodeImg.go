// Package templates provides image element rendering
package templates

import (
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

var nodeImgTmpl = elementTemplate("nodeImg",
	`<img {{template "attrs" .Attrs}} src="{{.Src}}" alt="{{.Alt}}" />`,
)

type nodeImgData struct {
	Attrs elementAttrs
	Src   string
	Alt   string
}

// NodeImgRenderer renders image components
type NodeImgRenderer struct {
	ctx *rendering.RenderContext
}

// NewNodeImgRenderer creates a new image renderer
func NewNodeImgRenderer(ctx *rendering.RenderContext) *NodeImgRenderer {
	return &NodeImgRenderer{ctx: ctx}
}

// Render returns a void <img>. The src is rewritten to the collected asset
// path when there is one; alt falls back to the instance name.
func (nir *NodeImgRenderer) Render(nodeID string) string {
	c := getNode(nir.ctx, nodeID)
	if c == nil {
		return ""
	}

	img, _ := c.Props.Content.(builder.ImageContent)
	alt := img.Alt
	if alt == "" {
		alt = c.Name
	}

	return execute(nodeImgTmpl, nodeID, nodeImgData{
		Attrs: attrsFor(c, ""),
		Src:   nir.ctx.ResolveAsset(img.Src),
		Alt:   alt,
	})
}
