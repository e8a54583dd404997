package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
)

func withProps(c builder.ComponentInstance, raw map[string]any) builder.ComponentInstance {
	c.Props = builder.DecodeProps(c.Type, raw)
	return c
}

func renderOne(t *testing.T, components ...builder.ComponentInstance) string {
	t.Helper()
	page := builder.Page{ID: "p", Path: "/", Components: components}
	html, err := RenderPageBody(&page, []builder.Page{page}, nil)
	require.NoError(t, err)
	return html
}

func TestRenderPageBody_Text(t *testing.T) {
	html := renderOne(t, withProps(instance("a", builder.TypeText, ""), map[string]any{"text": "Hi"}))
	assert.Equal(t, `<p id="component-a" class="" data-component-type="text">Hi</p>`, html)
}

func TestRenderPageBody_EscapesText(t *testing.T) {
	html := renderOne(t,
		withProps(instance("a", builder.TypeText, ""), map[string]any{"text": "<script>alert(1)</script>"}),
		withProps(instance("h", builder.TypeHeading, ""), map[string]any{"text": "Fish & Chips"}),
	)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Fish &amp; Chips")
}

func TestRenderPageBody_HeadingLevels(t *testing.T) {
	cases := []struct {
		level any
		tag   string
	}{
		{nil, "h2"},
		{1, "h1"},
		{float64(4), "h4"},
		{"h3", "h3"},
		{9, "h6"},
		{-1, "h1"},
	}
	for _, tc := range cases {
		raw := map[string]any{"text": "Title"}
		if tc.level != nil {
			raw["level"] = tc.level
		}
		html := renderOne(t, withProps(instance("h", builder.TypeHeading, ""), raw))
		assert.Equal(t, "<"+tc.tag+` id="component-h" class="" data-component-type="heading">Title</`+tc.tag+">", html, "level %v", tc.level)
	}
}

func TestRenderPageBody_Button(t *testing.T) {
	html := renderOne(t, instance("b", builder.TypeButton, ""))
	assert.Equal(t, `<a id="component-b" class="button" data-component-type="button" href="#" target="_self" role="button">Button</a>`, html)

	b := withProps(instance("b", builder.TypeButton, ""), map[string]any{
		"text": "Go", "href": "/about", "target": "_blank", "className": "wide",
	})
	b.ClassName = "hero"
	html = renderOne(t, b)
	assert.Equal(t, `<a id="component-b" class="button hero wide" data-component-type="button" href="/about" target="_blank" role="button">Go</a>`, html)
}

func TestRenderPageBody_ImageRewriteAndAltFallback(t *testing.T) {
	img := withProps(instance("i", builder.TypeImage, ""), map[string]any{"src": "/uploads/cat.png"})
	img.Name = "Cat photo"
	page := builder.Page{ID: "p", Path: "/", Components: []builder.ComponentInstance{img}}

	html, err := RenderPageBody(&page, nil, map[string]string{"/uploads/cat.png": "/assets/images/cat.png"})
	require.NoError(t, err)
	assert.Equal(t, `<img id="component-i" class="" data-component-type="image" src="/assets/images/cat.png" alt="Cat photo" />`, html)

	external := withProps(instance("e", builder.TypeImage, ""), map[string]any{"src": "https://cdn.example.com/a.jpg", "alt": "A"})
	html = renderOne(t, external)
	assert.Contains(t, html, `src="https://cdn.example.com/a.jpg" alt="A"`)
}

func TestRenderPageBody_ContainerNesting(t *testing.T) {
	html := renderOne(t,
		withProps(instance("t2", builder.TypeText, "box"), map[string]any{"text": "second"}),
		instance("box", builder.TypeSection, ""),
		withProps(instance("t1", builder.TypeText, "inner"), map[string]any{"text": "first"}),
		instance("inner", builder.TypeGridContainer, "box"),
	)

	want := `<div id="component-box" class="" data-component-type="section">
<p id="component-t2" class="" data-component-type="text">second</p>
<div id="component-inner" class="" data-component-type="gridContainer">
<p id="component-t1" class="" data-component-type="text">first</p>
</div>
</div>`
	assert.Equal(t, want, html)

	assert.Equal(t, `<div id="component-c" class="" data-component-type="container"></div>`,
		renderOne(t, instance("c", builder.TypeContainer, "")))
}

func TestRenderPageBody_VoidAndPlaceholderElements(t *testing.T) {
	assert.Equal(t, `<hr id="component-d" class="" data-component-type="divider" />`,
		renderOne(t, instance("d", builder.TypeDivider, "")))

	assert.Equal(t, `<div id="component-s" class="spacer" data-component-type="spacer" style="height: 20px;"></div>`,
		renderOne(t, instance("s", builder.TypeSpacer, "")))

	assert.Equal(t, `<div id="component-s" class="spacer" data-component-type="spacer" style="height: 48px;"></div>`,
		renderOne(t, withProps(instance("s", builder.TypeSpacer, ""), map[string]any{"height": "48px"})))

	assert.Equal(t, `<div id="component-i" class="icon" data-component-type="icon"><!-- Icon: default --></div>`,
		renderOne(t, instance("i", builder.TypeIcon, "")))

	assert.Equal(t, `<div id="component-i" class="icon" data-component-type="icon"><!-- Icon: star --></div>`,
		renderOne(t, withProps(instance("i", builder.TypeIcon, ""), map[string]any{"iconName": "star"})))
}

func TestRenderPageBody_Video(t *testing.T) {
	v := withProps(instance("v", builder.TypeVideo, ""), map[string]any{"src": "https://www.youtube.com/watch?v=abc123"})
	v.Width, v.Height = 560, 315
	html := renderOne(t, v)
	assert.Contains(t, html, `<iframe id="component-v" class="" data-component-type="video" src="https://www.youtube.com/embed/abc123" width="560" height="315"`)

	v.Style = builder.Style{decl("width", builder.String("100%"))}
	html = renderOne(t, v)
	assert.Contains(t, html, `width="100%" height="315"`)

	empty := instance("v", builder.TypeVideo, "")
	assert.Equal(t, `<div id="component-v" class="video-placeholder" data-component-type="video">Video</div>`, renderOne(t, empty))
}

func TestRenderPageBody_UnknownType(t *testing.T) {
	widget := withProps(instance("w", builder.ComponentType("carousel"), ""), map[string]any{"text": "slides"})
	widget.Name = "Hero carousel"
	child := withProps(instance("c", builder.TypeText, "w"), map[string]any{"text": "one"})

	html := renderOne(t, widget, child)
	want := `<div id="component-w" class="" data-component-type="carousel">
  <!-- Hero carousel (carousel) -->
  slides
  <p id="component-c" class="" data-component-type="text">one</p>
</div>`
	assert.Equal(t, want, html)
}

func TestRenderPageBody_RootsConcatenatedInOrder(t *testing.T) {
	html := renderOne(t,
		withProps(instance("a", builder.TypeText, ""), map[string]any{"text": "A"}),
		withProps(instance("b", builder.TypeText, ""), map[string]any{"text": "B"}),
	)
	assert.Equal(t, `<p id="component-a" class="" data-component-type="text">A</p><p id="component-b" class="" data-component-type="text">B</p>`, html)
}

func TestRenderPageBody_CycleFails(t *testing.T) {
	page := builder.Page{Components: []builder.ComponentInstance{
		instance("a", builder.TypeContainer, "b"),
		instance("b", builder.TypeContainer, "a"),
	}}
	_, err := RenderPageBody(&page, nil, nil)
	var cycleErr *CycleError
	assert.ErrorAs(t, err, &cycleErr)
}

func TestRenderPageDocument(t *testing.T) {
	doc := RenderPageDocument("Home & Garden", `<p id="component-a">Hi</p>`)
	assert.Contains(t, doc, "<title>Home &amp; Garden</title>")
	assert.Contains(t, doc, `<link rel="stylesheet" href="../styles/globals.css">`)
	assert.Contains(t, doc, `<link rel="stylesheet" href="../styles/components.css">`)
	assert.Contains(t, doc, `<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	assert.Contains(t, doc, "<body>\n  <p id=\"component-a\">Hi</p>\n</body>")
}

func TestGlobalStylesheet(t *testing.T) {
	css := GlobalStylesheet()
	assert.Contains(t, css, "@font-face")
	assert.Contains(t, css, "../assets/fonts/madefor-display.woff2")
	assert.Contains(t, css, "../assets/fonts/madefor-text.woff2")
	assert.NotContains(t, css, "@tailwind")
}
