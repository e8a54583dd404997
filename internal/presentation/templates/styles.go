package templates

import "github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"

// ResolveStyle returns the style effective at a breakpoint. Desktop is the
// base style as authored; tablet and mobile each overlay their own override
// layer on the base, independently of one another.
func ResolveStyle(c *builder.ComponentInstance, bp builder.Breakpoint) builder.Style {
	if bp == builder.BreakpointDesktop {
		return c.Style
	}
	return c.Style.Merge(c.ResponsiveStyles.For(bp))
}
