// Package templates provides the per-component-type HTML element renderers
package templates

import (
	"html/template"
	"log"
	"strings"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

// NodeRenderer interface for child node rendering
type NodeRenderer interface {
	RenderNode(nodeID string) string
	GetChildNodeIDs(nodeID string) []string
}

// baseTemplates holds the attribute set every element carries. Element
// templates are cloned from it so they can call {{template "attrs" .Attrs}}.
var baseTemplates = template.Must(template.New("base").Parse(
	`{{define "attrs"}}id="{{.ID}}" class="{{.Class}}" data-component-type="{{.Type}}"{{end}}`,
))

// elementTemplate parses an element snippet on top of the shared attrs definition
func elementTemplate(name, text string) *template.Template {
	return template.Must(template.Must(baseTemplates.Clone()).New(name).Parse(text))
}

// openTagTmpl renders the attribute part of a manually written opening tag
var openTagTmpl = elementTemplate("openTag", `{{template "attrs" .}}`)

type elementAttrs struct {
	ID    string
	Class string
	Type  string
}

// attrsFor builds the common attributes. User classes are appended after
// the type default, never replacing it.
func attrsFor(c *builder.ComponentInstance, defaultClass string) elementAttrs {
	return elementAttrs{
		ID:    c.DOMID(),
		Class: joinClasses(defaultClass, c.ClassName, c.Props.ClassName),
		Type:  string(c.Type),
	}
}

func joinClasses(parts ...string) string {
	var classes []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			classes = append(classes, p)
		}
	}
	return strings.Join(classes, " ")
}

// execute runs a pre-parsed element template, logging and returning a
// comment placeholder on failure
func execute(tmpl *template.Template, nodeID string, data any) string {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute %s template for nodeID %s: %v", tmpl.Name(), nodeID, err)
		return `<!-- template error -->`
	}
	return buf.String()
}

// openTag writes "<tag attrs>" for tags html/template cannot parameterize
func openTag(tag string, attrs elementAttrs, nodeID string) string {
	return "<" + tag + " " + execute(openTagTmpl, nodeID, attrs) + ">"
}

// commentText makes s safe to place inside an HTML comment
func commentText(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "--", ""), ">", "&gt;")
}

func getNode(ctx *rendering.RenderContext, nodeID string) *builder.ComponentInstance {
	if ctx == nil || ctx.AllNodes == nil {
		return nil
	}
	return ctx.AllNodes[nodeID]
}

// renderChildren renders a node's children in order, one per line
func renderChildren(nodeRenderer NodeRenderer, nodeID string) string {
	childIDs := nodeRenderer.GetChildNodeIDs(nodeID)
	children := make([]string, 0, len(childIDs))
	for _, childID := range childIDs {
		children = append(children, nodeRenderer.RenderNode(childID))
	}
	return strings.Join(children, "\n")
}
