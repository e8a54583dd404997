// Package templates provides video embed rendering
package templates

import (
	"net/url"
	"strings"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
)

var (
	videoTmpl = elementTemplate("video",
		`<iframe {{template "attrs" .Attrs}} src="{{.Src}}"{{if .Width}} width="{{.Width}}"{{end}}{{if .Height}} height="{{.Height}}"{{end}} frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>`,
	)

	videoPlaceholderTmpl = elementTemplate("videoPlaceholder",
		`<div {{template "attrs" .}}>Video</div>`,
	)
)

type videoData struct {
	Attrs  elementAttrs
	Src    string
	Width  string
	Height string
}

// NodeVideoRenderer renders video components as embedded players
type NodeVideoRenderer struct {
	ctx *rendering.RenderContext
}

// NewNodeVideoRenderer creates a new video renderer
func NewNodeVideoRenderer(ctx *rendering.RenderContext) *NodeVideoRenderer {
	return &NodeVideoRenderer{ctx: ctx}
}

// Render returns an <iframe> for the embed URL, or a placeholder <div>
// when the component has no source
func (nvr *NodeVideoRenderer) Render(nodeID string) string {
	c := getNode(nvr.ctx, nodeID)
	if c == nil {
		return ""
	}

	video, _ := c.Props.Content.(builder.VideoContent)
	src := strings.TrimSpace(video.Src)
	if src == "" {
		return execute(videoPlaceholderTmpl, nodeID, attrsFor(c, "video-placeholder"))
	}

	return execute(videoTmpl, nodeID, videoData{
		Attrs:  attrsFor(c, ""),
		Src:    EmbedURL(src),
		Width:  dimension(c.Style, "width", c.Width),
		Height: dimension(c.Style, "height", c.Height),
	})
}

// dimension prefers the authored style value and falls back to geometry
func dimension(style builder.Style, property string, geometry float64) string {
	if v, ok := style.Get(property); ok {
		return v.Raw()
	}
	if geometry > 0 {
		return builder.FormatNumber(geometry)
	}
	return ""
}

// EmbedURL rewrites YouTube and Vimeo page URLs to their player URLs.
// Anything else, including URLs that already point at a player, is returned unchanged.
func EmbedURL(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return src
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")
	path := strings.Trim(u.Path, "/")

	switch host {
	case "youtube.com":
		if path == "watch" {
			if id := u.Query().Get("v"); id != "" {
				return "https://www.youtube.com/embed/" + url.PathEscape(id)
			}
		}
		if id, ok := strings.CutPrefix(path, "shorts/"); ok && id != "" {
			return "https://www.youtube.com/embed/" + url.PathEscape(id)
		}
	case "youtu.be":
		if path != "" {
			return "https://www.youtube.com/embed/" + url.PathEscape(strings.Split(path, "/")[0])
		}
	case "vimeo.com":
		if id := strings.Split(path, "/")[0]; id != "" && isDigits(id) {
			return "https://player.vimeo.com/video/" + id
		}
	}
	return src
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
