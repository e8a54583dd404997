package templates

import (
	"strings"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"

	templates "github.com/AtRiskMedia/sitegen-go/internal/presentation/templates/elements"
)

// NodeRenderer interface for child node rendering
type NodeRenderer interface {
	RenderNode(nodeID string) string
	GetChildNodeIDs(nodeID string) []string
}

var _ NodeRenderer = (*NodeRendererImpl)(nil)

// NodeRendererImpl dispatches each node to the element renderer for its type
type NodeRendererImpl struct {
	ctx *rendering.RenderContext
}

// NewNodeRenderer creates a new node renderer with context
func NewNodeRenderer(ctx *rendering.RenderContext) *NodeRendererImpl {
	return &NodeRendererImpl{ctx: ctx}
}

// RenderNode renders a node by ID, including its subtree
func (nr *NodeRendererImpl) RenderNode(nodeID string) string {
	if nodeID == "" {
		return templates.RenderEmpty()
	}

	c := nr.getNode(nodeID)
	if c == nil {
		return templates.RenderEmpty()
	}

	switch c.Type {
	case builder.TypeText:
		return templates.NewNodeTextRenderer(nr.ctx).Render(nodeID)
	case builder.TypeHeading:
		return templates.NewNodeHeadingRenderer(nr.ctx).Render(nodeID)
	case builder.TypeImage:
		return templates.NewNodeImgRenderer(nr.ctx).Render(nodeID)
	case builder.TypeButton:
		return templates.NewNodeButtonRenderer(nr.ctx).Render(nodeID)
	case builder.TypeContainer, builder.TypeSection, builder.TypeColumns,
		builder.TypeGrid, builder.TypeFlexContainer, builder.TypeGridContainer:
		return templates.NewTagElementRenderer(nr.ctx, nr).Render(nodeID)
	case builder.TypeDivider:
		return templates.NewDividerRenderer(nr.ctx).Render(nodeID)
	case builder.TypeSpacer:
		return templates.NewSpacerRenderer(nr.ctx).Render(nodeID)
	case builder.TypeIcon:
		return templates.NewIconRenderer(nr.ctx).Render(nodeID)
	case builder.TypeVideo:
		return templates.NewNodeVideoRenderer(nr.ctx).Render(nodeID)
	default:
		return templates.NewEmptyNodeRenderer(nr.ctx, nr).Render(nodeID)
	}
}

// GetChildNodeIDs returns child node IDs for a given parent
func (nr *NodeRendererImpl) GetChildNodeIDs(parentID string) []string {
	if nr.ctx.ParentNodes == nil {
		return []string{}
	}

	children, exists := nr.ctx.ParentNodes[parentID]
	if !exists {
		return []string{}
	}

	return children
}

// RenderBody renders every root node of the context, concatenated in order
func (nr *NodeRendererImpl) RenderBody() string {
	var html strings.Builder
	for _, rootID := range nr.ctx.RootNodes {
		html.WriteString(nr.RenderNode(rootID))
	}
	return html.String()
}

func (nr *NodeRendererImpl) getNode(nodeID string) *builder.ComponentInstance {
	if nr.ctx.AllNodes == nil {
		return nil
	}
	return nr.ctx.AllNodes[nodeID]
}

// RenderPageBody builds the component forest of a page and renders it
func RenderPageBody(page *builder.Page, pages []builder.Page, assetPaths map[string]string) (string, error) {
	roots, err := BuildComponentTree(page.Components)
	if err != nil {
		return "", err
	}
	ctx := rendering.NewRenderContext(roots, pages, assetPaths)
	return NewNodeRenderer(ctx).RenderBody(), nil
}
