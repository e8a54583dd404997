// Package handlers provides HTTP handlers for site generation endpoints
package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/sitegen-go/internal/application/services"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/output"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/projectfile"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/templates"
)

const snippetLength = 200

// FileSummary describes one generated file without its full content
type FileSummary struct {
	Path           string `json:"path"`
	ContentSnippet string `json:"contentSnippet"`
	IsBinary       bool   `json:"isBinary"`
}

// GenerateResponse is returned by POST /api/v1/sites/generate
type GenerateResponse struct {
	Message       string        `json:"message"`
	BuildID       string        `json:"buildId"`
	Digest        string        `json:"digest"`
	FileCount     int           `json:"fileCount"`
	SkippedAssets int           `json:"skippedAssets"`
	Files         []FileSummary `json:"files"`
}

// SiteHandlers contains all site generation HTTP handlers
type SiteHandlers struct {
	generator       *services.SiteGeneratorService
	builds          *stores.BuildsStore
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
	maxProjectBytes int64
}

// NewSiteHandlers creates site handlers with injected dependencies
func NewSiteHandlers(generator *services.SiteGeneratorService, builds *stores.BuildsStore, logger *logging.ChanneledLogger, perfTracker *performance.Tracker, maxProjectBytes int64) *SiteHandlers {
	return &SiteHandlers{
		generator:       generator,
		builds:          builds,
		logger:          logger,
		perfTracker:     perfTracker,
		maxProjectBytes: maxProjectBytes,
	}
}

// GenerateSite handles POST /api/v1/sites/generate
func (h *SiteHandlers) GenerateSite(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("generate_site_request", "")
	defer h.perfTracker.CompleteOperation(marker)
	h.logger.HTTP().Debug("Received generate site request", "method", c.Request.Method, "path", c.Request.URL.Path)

	format := projectfile.FormatJSON
	if ct := c.ContentType(); strings.Contains(ct, "yaml") {
		format = projectfile.FormatYAML
	}

	project, err := projectfile.Decode(c.Request.Body, format, h.maxProjectBytes)
	if err != nil {
		marker.SetError(err)
		if errors.Is(err, projectfile.ErrTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Project too large.", "details": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project data provided.", "details": err.Error()})
		return
	}
	if len(project.Pages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project data provided.", "details": "project has no pages"})
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), project)
	if err != nil {
		marker.SetError(err)
		c.JSON(generationStatus(err), gin.H{"error": "Site generation failed.", "details": err.Error()})
		return
	}

	digest := output.Digest(result.Files)
	buildID := h.builds.Put(&stores.Build{
		ProjectID: project.ID,
		Files:     result.Files,
		Digest:    digest,
		Skipped:   result.Skipped,
		Duration:  result.Duration,
	})

	h.logger.HTTP().Info("Generate site request completed",
		"projectId", project.ID, "buildId", buildID, "files", len(result.Files), "duration", time.Since(start))
	marker.AddMetadata("buildId", buildID)

	c.Header("ETag", `"`+digest+`"`)
	c.JSON(http.StatusOK, GenerateResponse{
		Message:       "Site generation successful.",
		BuildID:       buildID,
		Digest:        digest,
		FileCount:     len(result.Files),
		SkippedAssets: result.Skipped,
		Files:         Summarize(result.Files),
	})
}

// ListBuilds handles GET /api/v1/sites/builds
func (h *SiteHandlers) ListBuilds(c *gin.Context) {
	builds := h.builds.List()
	c.JSON(http.StatusOK, gin.H{
		"builds": builds,
		"count":  len(builds),
	})
}

// GetBuild handles GET /api/v1/sites/builds/:id
func (h *SiteHandlers) GetBuild(c *gin.Context) {
	build, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, GenerateResponse{
		Message:       "Build found.",
		BuildID:       build.ID,
		Digest:        build.Digest,
		FileCount:     len(build.Files),
		SkippedAssets: build.Skipped,
		Files:         Summarize(build.Files),
	})
}

// DownloadArchive handles GET /api/v1/sites/builds/:id/archive
func (h *SiteHandlers) DownloadArchive(c *gin.Context) {
	build, ok := h.lookup(c)
	if !ok {
		return
	}

	data, err := output.Archive(build.Files)
	if err != nil {
		h.logger.LogError(logging.ChannelHTTP, "archive", err, map[string]any{"buildId": build.ID})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build archive.", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="generated-site.zip"`)
	c.Header("ETag", `"`+build.Digest+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}

// GetFile handles GET /api/v1/sites/builds/:id/files/*path
func (h *SiteHandlers) GetFile(c *gin.Context) {
	build, ok := h.lookup(c)
	if !ok {
		return
	}

	filePath := strings.TrimPrefix(c.Param("path"), "/")
	if filePath == "" || strings.HasSuffix(filePath, "/") {
		filePath += "index.html"
	}

	file, found := build.File(filePath)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found", "path": filePath})
		return
	}

	etag := `"` + output.FileDigest(file.Content) + `"`
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Header("ETag", etag)
	c.Data(http.StatusOK, contentType(file.Path), file.Content)
}

func (h *SiteHandlers) lookup(c *gin.Context) (*stores.Build, bool) {
	id := c.Param("id")
	build, ok := h.builds.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "build not found", "buildId": id})
		return nil, false
	}
	return build, true
}

// Summarize converts generated files into response summaries
func Summarize(files []builder.GeneratedFile) []FileSummary {
	out := make([]FileSummary, len(files))
	for i, f := range files {
		if isTextFile(f.Path) {
			out[i] = FileSummary{Path: f.Path, ContentSnippet: snippet(string(f.Content))}
			continue
		}
		out[i] = FileSummary{
			Path:           f.Path,
			ContentSnippet: fmt.Sprintf("Binary data (length: %d)", len(f.Content)),
			IsBinary:       true,
		}
	}
	return out
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return string(runes) + "..."
}

func isTextFile(p string) bool {
	switch path.Ext(p) {
	case ".html", ".css":
		return true
	}
	return false
}

func contentType(p string) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func generationStatus(err error) int {
	var cycleErr *templates.CycleError
	switch {
	case errors.Is(err, builder.ErrNilProject),
		errors.Is(err, builder.ErrInvalidPagePath),
		errors.Is(err, builder.ErrDuplicatePagePath),
		errors.As(err, &cycleErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
