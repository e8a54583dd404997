package templates

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
)

// EmptyComponentCSS is written when no component produces a rule
const EmptyComponentCSS = "/* No component-specific styles generated. */"

// DefaultUnitlessProperties lists camelCase properties whose numeric values
// are emitted without a px unit
var DefaultUnitlessProperties = []string{
	"zIndex", "opacity", "fontWeight", "lineHeight", "flexGrow", "flexShrink",
	"order", "orphans", "widows", "zoom", "animationIterationCount",
	"boxFlex", "boxFlexGroup", "boxOrdinalGroup", "columnCount", "fillOpacity",
	"flex", "gridArea", "gridColumn", "gridColumnEnd", "gridColumnStart",
	"gridRow", "gridRowEnd", "gridRowStart", "lineClamp", "maskBorder",
	"maskBorderOutset", "maskBorderSlice", "maskBorderWidth",
	"shapeImageThreshold", "strokeDashoffset", "strokeMiterlimit",
	"strokeOpacity", "strokeWidth", "tabSize", "webkitLineClamp",
	"webkitBoxOrdinalGroup", "webkitBoxFlex",
}

var upperRe = regexp.MustCompile(`([A-Z])`)

// CamelToKebab converts a camelCase property name to its CSS form
func CamelToKebab(property string) string {
	return strings.ToLower(upperRe.ReplaceAllString(property, "-$1"))
}

// CSSGenerator serializes component styles into CSS rules
type CSSGenerator struct {
	unitless map[string]struct{}
}

// NewCSSGenerator creates a generator using the default unitless set
// extended by extraUnitless
func NewCSSGenerator(extraUnitless ...string) *CSSGenerator {
	unitless := make(map[string]struct{}, len(DefaultUnitlessProperties)+len(extraUnitless))
	for _, p := range DefaultUnitlessProperties {
		unitless[p] = struct{}{}
	}
	for _, p := range extraUnitless {
		if p = strings.TrimSpace(p); p != "" {
			unitless[p] = struct{}{}
		}
	}
	return &CSSGenerator{unitless: unitless}
}

// IsUnitless reports whether numeric values of property are emitted bare
func (g *CSSGenerator) IsUnitless(property string) bool {
	_, ok := g.unitless[property]
	return ok
}

// FormatValue renders a style value for property, adding px to numbers
// unless the property is unitless
func (g *CSSGenerator) FormatValue(property string, v builder.StyleValue) string {
	if v.IsNumber() && !g.IsUnitless(property) {
		return v.Raw() + "px"
	}
	return v.Raw()
}

type declaration struct {
	property string
	value    string
}

func (g *CSSGenerator) translate(style builder.Style) []declaration {
	decls := make([]declaration, 0, len(style))
	for _, d := range style {
		decls = append(decls, declaration{property: CamelToKebab(d.Property), value: g.FormatValue(d.Property, d.Value)})
	}
	return decls
}

// baseDeclarations builds the desktop rule body for an instance
func (g *CSSGenerator) baseDeclarations(c *builder.ComponentInstance, rootLevel bool) []declaration {
	style := ResolveStyle(c, builder.BreakpointDesktop)
	decls := g.translate(style)

	if c.Props.TextAlign != "" {
		decls = append(decls, declaration{"text-align", c.Props.TextAlign})
	}
	if c.Props.CustomBackgroundColor != "" {
		decls = append(decls, declaration{"background-color", c.Props.CustomBackgroundColor})
	}

	if rootLevel && !c.Type.IsContainer() {
		decls = append(decls,
			declaration{"position", "absolute"},
			declaration{"left", builder.FormatNumber(c.Left) + "px"},
			declaration{"top", builder.FormatNumber(c.Top) + "px"},
		)
	}

	if !style.Has("width") && c.Width > 0 {
		decls = append(decls, declaration{"width", builder.FormatNumber(c.Width) + "px"})
	}
	if !style.Has("height") && c.Height > 0 {
		decls = append(decls, declaration{"height", builder.FormatNumber(c.Height) + "px"})
	}

	if c.ZIndex != nil && !style.Has("zIndex") {
		decls = append(decls, declaration{"z-index", builder.FormatNumber(*c.ZIndex)})
	}
	if c.Rotation != nil && *c.Rotation != 0 && !style.Has("transform") {
		decls = append(decls, declaration{"transform", fmt.Sprintf("rotate(%sdeg)", builder.FormatNumber(*c.Rotation))})
	}
	if c.IsVisible != nil && !*c.IsVisible && !style.Has("display") {
		decls = append(decls, declaration{"display", "none"})
	}

	return decls
}

// ComponentCSS emits the base rule and any responsive override rules for
// one instance. rootLevel marks instances without a containing parent,
// which are absolutely positioned on the page canvas.
func (g *CSSGenerator) ComponentCSS(c *builder.ComponentInstance, rootLevel bool) string {
	selector := "#" + c.DOMID()
	var css strings.Builder

	if decls := g.baseDeclarations(c, rootLevel); len(decls) > 0 {
		writeRule(&css, selector, decls, "")
		css.WriteString("\n")
	}

	for _, bp := range builder.ResponsiveBreakpoints {
		override := c.ResponsiveStyles.For(bp)
		if len(override) == 0 {
			continue
		}
		width, _ := bp.MaxWidth()
		fmt.Fprintf(&css, "@media (max-width: %dpx) {\n", width)
		writeRule(&css, selector, g.translate(override), "  ")
		css.WriteString("}\n\n")
	}

	return css.String()
}

func writeRule(css *strings.Builder, selector string, decls []declaration, indent string) {
	css.WriteString(indent + selector + " {\n")
	for _, d := range decls {
		css.WriteString(indent + "  " + d.property + ": " + d.value + ";\n")
	}
	css.WriteString(indent + "}\n")
}

// ConsolidateStyles emits CSS for every instance of every page, in page
// then declaration order
func (g *CSSGenerator) ConsolidateStyles(pages []builder.Page) string {
	var css strings.Builder
	for _, page := range pages {
		roots := rootLevelIDs(page.Components)
		for i := range page.Components {
			c := &page.Components[i]
			css.WriteString(g.ComponentCSS(c, roots[c.ID]))
		}
	}

	if css.Len() == 0 {
		return EmptyComponentCSS
	}
	return css.String()
}
