// Package templates provides divider, spacer and icon rendering
package templates

import (
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

const defaultSpacerHeight = 20

var (
	dividerTmpl = elementTemplate("divider", `<hr {{template "attrs" .}} />`)

	spacerTmpl = elementTemplate("spacer",
		`<div {{template "attrs" .Attrs}} style="height: {{.Height}}px;"></div>`,
	)
)

type spacerData struct {
	Attrs  elementAttrs
	Height string
}

// DividerRenderer renders divider components as <hr>
type DividerRenderer struct {
	ctx *rendering.RenderContext
}

// NewDividerRenderer creates a new divider renderer
func NewDividerRenderer(ctx *rendering.RenderContext) *DividerRenderer {
	return &DividerRenderer{ctx: ctx}
}

func (dr *DividerRenderer) Render(nodeID string) string {
	c := getNode(dr.ctx, nodeID)
	if c == nil {
		return ""
	}
	return execute(dividerTmpl, nodeID, attrsFor(c, ""))
}

// SpacerRenderer renders empty spacing blocks with an inline height
type SpacerRenderer struct {
	ctx *rendering.RenderContext
}

// NewSpacerRenderer creates a new spacer renderer
func NewSpacerRenderer(ctx *rendering.RenderContext) *SpacerRenderer {
	return &SpacerRenderer{ctx: ctx}
}

func (sr *SpacerRenderer) Render(nodeID string) string {
	c := getNode(sr.ctx, nodeID)
	if c == nil {
		return ""
	}

	height := float64(defaultSpacerHeight)
	if spacer, ok := c.Props.Content.(builder.SpacerContent); ok && spacer.Height > 0 {
		height = spacer.Height
	}
	return execute(spacerTmpl, nodeID, spacerData{
		Attrs:  attrsFor(c, "spacer"),
		Height: builder.FormatNumber(height),
	})
}

// IconRenderer renders an icon placeholder naming the icon
type IconRenderer struct {
	ctx *rendering.RenderContext
}

// NewIconRenderer creates a new icon renderer
func NewIconRenderer(ctx *rendering.RenderContext) *IconRenderer {
	return &IconRenderer{ctx: ctx}
}

// Render writes the comment manually because html/template strips comments
func (ir *IconRenderer) Render(nodeID string) string {
	c := getNode(ir.ctx, nodeID)
	if c == nil {
		return ""
	}

	name := "default"
	if icon, ok := c.Props.Content.(builder.IconContent); ok && icon.IconName != "" {
		name = icon.IconName
	}
	return openTag("div", attrsFor(c, "icon"), nodeID) +
		"<!-- Icon: " + commentText(name) + " -->" +
		"</div>"
}
