// Package output persists and packages generated site bundles
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
)

// ErrUnsafePath is returned for generated paths that would land outside the output root
var ErrUnsafePath = errors.New("generated path escapes output directory")

// WriteFiles writes every generated file under outDir, creating parent
// directories as needed. Existing files are overwritten.
func WriteFiles(outDir string, files []builder.GeneratedFile) error {
	if outDir == "" {
		return errors.New("output directory is required")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, f := range files {
		fullPath, err := SafeJoin(outDir, f.Path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(fullPath, f.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

// SafeJoin joins a forward-slash generated path onto root, rejecting
// absolute paths and parent traversal
func SafeJoin(root, generated string) (string, error) {
	if generated == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	cleanRel := filepath.Clean(filepath.FromSlash(generated))
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(generated, "/") || cleanRel == ".." ||
		strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, generated)
	}

	fullPath := filepath.Join(root, cleanRel)
	rel, err := filepath.Rel(root, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, generated)
	}
	return fullPath, nil
}
