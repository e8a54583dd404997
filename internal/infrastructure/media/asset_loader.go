// Package media reads project media from disk and prepares it for output
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
)

// ErrOutsidePublicDir is returned for sources that resolve outside the public directory
var ErrOutsidePublicDir = errors.New("asset path escapes public directory")

// AssetLoader reads local assets from a public directory, downscaling raster
// images wider than maxWidth when a limit is configured
type AssetLoader struct {
	basePath string
	maxWidth int
	logger   *logging.ChanneledLogger
}

// NewAssetLoader creates a new AssetLoader rooted at basePath
func NewAssetLoader(basePath string, maxWidth int, logger *logging.ChanneledLogger) *AssetLoader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &AssetLoader{
		basePath: basePath,
		maxWidth: maxWidth,
		logger:   logger,
	}
}

// ReadAsset returns the bytes for a root-relative source such as
// "/uploads/cat.png". Query strings and fragments are ignored.
func (l *AssetLoader) ReadAsset(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath, err := l.resolve(source)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", source, err)
	}

	if l.maxWidth <= 0 {
		return data, nil
	}

	resized, changed, err := l.downscale(data, extractExtension(fullPath))
	if err != nil {
		// undecodable images are shipped as authored
		l.logger.Assets().Warn("Image could not be resized, using original", "source", source, "error", err)
		return data, nil
	}
	if changed {
		l.logger.Assets().Debug("Resized image", "source", source, "maxWidth", l.maxWidth,
			"originalBytes", len(data), "resizedBytes", len(resized))
	}
	return resized, nil
}

func (l *AssetLoader) resolve(source string) (string, error) {
	clean := source
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	if clean == "" || !strings.HasPrefix(clean, "/") {
		return "", fmt.Errorf("asset source %q is not root-relative", source)
	}
	for _, seg := range strings.Split(clean, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %s", ErrOutsidePublicDir, source)
		}
	}

	base, err := filepath.Abs(l.basePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve public directory: %w", err)
	}
	fullPath := filepath.Join(base, filepath.FromSlash(path.Clean(clean)))
	rel, err := filepath.Rel(base, fullPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %s", ErrOutsidePublicDir, source)
	}
	return fullPath, nil
}

// downscale re-encodes data at maxWidth when it is a wider raster image.
// Formats it cannot handle are returned unchanged.
func (l *AssetLoader) downscale(data []byte, ext string) ([]byte, bool, error) {
	switch ext {
	case "webp":
		cfg, err := webp.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode webp config: %w", err)
		}
		if cfg.Width <= l.maxWidth {
			return data, false, nil
		}
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode webp: %w", err)
		}
		var buf bytes.Buffer
		if err := webp.Encode(&buf, l.resize(img), &webp.Options{Quality: 85}); err != nil {
			return nil, false, fmt.Errorf("failed to encode webp: %w", err)
		}
		return buf.Bytes(), true, nil

	case "png", "jpg", "jpeg", "gif":
		format, err := imaging.FormatFromExtension(ext)
		if err != nil {
			return data, false, nil
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode image config: %w", err)
		}
		if cfg.Width <= l.maxWidth {
			return data, false, nil
		}
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode image: %w", err)
		}
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, l.resize(img), format, imaging.JPEGQuality(85)); err != nil {
			return nil, false, fmt.Errorf("failed to encode image: %w", err)
		}
		return buf.Bytes(), true, nil
	}

	return data, false, nil
}

func (l *AssetLoader) resize(img image.Image) image.Image {
	return imaging.Resize(img, l.maxWidth, 0, imaging.Lanczos)
}

// extractExtension returns the lowercased file extension without the dot
func extractExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
