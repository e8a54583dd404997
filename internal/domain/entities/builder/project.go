// Package builder provides the editor data model consumed by the site generation pipeline
package builder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNilProject        = errors.New("project is nil")
	ErrInvalidPagePath   = errors.New("invalid page path")
	ErrDuplicatePagePath = errors.New("duplicate page path")
)

// Page is one routed page of a project
type Page struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Path       string              `json:"path"`
	Components []ComponentInstance `json:"components"`
}

// Project is the snapshot handed to the site generator
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Pages []Page `json:"pages"`
}

// AllComponents returns every instance across every page in project order
func (p *Project) AllComponents() []ComponentInstance {
	var total int
	for _, page := range p.Pages {
		total += len(page.Components)
	}
	all := make([]ComponentInstance, 0, total)
	for _, page := range p.Pages {
		all = append(all, page.Components...)
	}
	return all
}

// Validate checks the structural constraints a generation run depends on
func (p *Project) Validate() error {
	if p == nil {
		return ErrNilProject
	}

	seen := make(map[string]string, len(p.Pages))
	for _, page := range p.Pages {
		out, err := PageOutputPath(page.Path)
		if err != nil {
			return fmt.Errorf("page %q: %w", page.ID, err)
		}
		if other, exists := seen[out]; exists {
			return fmt.Errorf("%w: pages %q and %q both render to %s", ErrDuplicatePagePath, other, page.ID, out)
		}
		seen[out] = page.ID
	}
	return nil
}

// PageOutputPath maps a page route to its HTML file: "/" renders to
// index.html and "/about" to about/index.html.
func PageOutputPath(route string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(route), "/")
	if trimmed == "" {
		return "index.html", nil
	}

	segments := strings.Split(trimmed, "/")
	for _, seg := range segments {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsAny(seg, "\\?#") {
			return "", fmt.Errorf("%w: %q", ErrInvalidPagePath, route)
		}
	}
	return strings.Join(segments, "/") + "/index.html", nil
}

// GeneratedFile is one artifact of the output bundle
type GeneratedFile struct {
	Path    string
	Content []byte
}

// TextFile creates a generated file from string content
func TextFile(path, content string) GeneratedFile {
	return GeneratedFile{Path: path, Content: []byte(content)}
}
