// Package services provides application-level services that orchestrate
// the site generation pipeline.
package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
)

// AssetType classifies a collected asset
type AssetType string

const (
	AssetImage AssetType = "image"
	AssetFont  AssetType = "font"
	AssetOther AssetType = "other"
)

// Asset is one manifest entry: where a referenced file comes from and
// where it lands in the output bundle
type Asset struct {
	OriginalPathOrURL string    `json:"originalPathOrUrl"`
	NewPathInOutput   string    `json:"newPathInOutput,omitempty"`
	Type              AssetType `json:"type"`
	External          bool      `json:"external"`
	Content           []byte    `json:"-"`
}

// HasContent reports whether the asset's bytes were loaded
func (a Asset) HasContent() bool {
	return a.Content != nil
}

// AssetReader reads the bytes of a local asset given its authored
// root-relative source path
type AssetReader interface {
	ReadAsset(ctx context.Context, source string) ([]byte, error)
}

// fontAssets are shipped with every site and referenced by the global stylesheet
var fontAssets = []string{
	"/fonts/madefor-display.woff2",
	"/fonts/madefor-text.woff2",
}

// AssetService collects and loads the media a project references
type AssetService struct {
	logger *logging.ChanneledLogger
}

// NewAssetService creates a new asset service
func NewAssetService(logger *logging.ChanneledLogger) *AssetService {
	return &AssetService{logger: logger}
}

// CollectAssets scans image components for referenced media and appends
// the fixed font files. Entries are keyed by source: the first reference
// wins and repeats are skipped. Distinct local sources sharing a file name
// get numbered output names so no entry overwrites another.
func (s *AssetService) CollectAssets(components []builder.ComponentInstance) []Asset {
	var assets []Asset
	seen := make(map[string]bool)
	outputs := make(map[string]bool)

	for i := range components {
		c := &components[i]
		if c.Type != builder.TypeImage {
			continue
		}
		img, ok := c.Props.Content.(builder.ImageContent)
		if !ok || img.Src == "" || seen[img.Src] {
			continue
		}
		seen[img.Src] = true

		switch {
		case IsExternalURL(img.Src):
			assets = append(assets, Asset{
				OriginalPathOrURL: img.Src,
				Type:              AssetImage,
				External:          true,
			})
		case strings.HasPrefix(img.Src, "/"):
			assets = append(assets, Asset{
				OriginalPathOrURL: img.Src,
				NewPathInOutput:   uniqueOutputPath("assets/images", img.Src, outputs),
				Type:              AssetImage,
			})
		default:
			s.logger.Assets().Debug("Skipping relative image reference", "componentId", c.ID, "src", img.Src)
		}
	}

	for _, font := range fontAssets {
		if seen[font] {
			continue
		}
		seen[font] = true
		assets = append(assets, Asset{
			OriginalPathOrURL: font,
			NewPathInOutput:   uniqueOutputPath("assets/fonts", font, outputs),
			Type:              AssetFont,
		})
	}

	return assets
}

// IsExternalURL reports whether src is an absolute or protocol-relative URL
func IsExternalURL(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "//")
}

// uniqueOutputPath maps a source to dir/<basename>, numbering repeats
func uniqueOutputPath(dir, source string, taken map[string]bool) string {
	clean := source
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	name := path.Base(clean)
	if name == "/" || name == "." || name == ".." || name == "" {
		name = "asset"
	}

	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := dir + "/" + name
	for n := 2; taken[candidate]; n++ {
		candidate = fmt.Sprintf("%s/%s-%d%s", dir, stem, n, ext)
	}
	taken[candidate] = true
	return candidate
}

// RewriteMap returns the authored-source to output-URL mapping used when
// emitting HTML. Only local images are rewritten.
func RewriteMap(assets []Asset) map[string]string {
	rewrites := make(map[string]string)
	for _, a := range assets {
		if a.External || a.Type != AssetImage || a.NewPathInOutput == "" {
			continue
		}
		rewrites[a.OriginalPathOrURL] = "/" + a.NewPathInOutput
	}
	return rewrites
}

// LoadContent reads the bytes of every local asset through reader. An
// unreadable asset is logged and left without content; only context
// cancellation fails the call.
func (s *AssetService) LoadContent(ctx context.Context, assets []Asset, reader AssetReader) ([]Asset, error) {
	loaded := make([]Asset, len(assets))
	copy(loaded, assets)
	if reader == nil {
		return loaded, nil
	}

	for i := range loaded {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a := &loaded[i]
		if a.External || a.NewPathInOutput == "" {
			continue
		}

		content, err := reader.ReadAsset(ctx, a.OriginalPathOrURL)
		if err != nil {
			s.logger.Assets().Warn("Asset could not be read, skipping",
				"source", a.OriginalPathOrURL, "output", a.NewPathInOutput, "error", err)
			continue
		}
		if content == nil {
			content = []byte{}
		}
		a.Content = content
	}

	return loaded, nil
}
