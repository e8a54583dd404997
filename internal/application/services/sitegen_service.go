package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/metrics"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/templates"
)

const (
	ComponentsCSSPath = "styles/components.css"
	GlobalsCSSPath    = "styles/globals.css"
)

// GenerationResult is the outcome of one generation run
type GenerationResult struct {
	Files    []builder.GeneratedFile
	Assets   []Asset
	Skipped  int
	Duration time.Duration
}

// SiteGeneratorService orchestrates tree building, HTML and CSS emission
// and asset collection across all pages of a project
type SiteGeneratorService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	assets      *AssetService
	reader      AssetReader
	recorder    metrics.Recorder
	css         *templates.CSSGenerator
}

// NewSiteGeneratorService creates a new site generator service
func NewSiteGeneratorService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SiteGeneratorService {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if perfTracker == nil {
		perfTracker = performance.NewTracker(nil)
	}
	return &SiteGeneratorService{
		logger:      logger,
		perfTracker: perfTracker,
		assets:      NewAssetService(logger),
		recorder:    metrics.NoopRecorder{},
		css:         templates.NewCSSGenerator(),
	}
}

// WithAssetReader sets the collaborator used to load local asset bytes.
// Without one, no asset files are emitted.
func (s *SiteGeneratorService) WithAssetReader(reader AssetReader) *SiteGeneratorService {
	s.reader = reader
	return s
}

// WithRecorder sets the metrics recorder
func (s *SiteGeneratorService) WithRecorder(recorder metrics.Recorder) *SiteGeneratorService {
	if recorder != nil {
		s.recorder = recorder
	}
	return s
}

// WithCSSGenerator replaces the CSS generator, e.g. to extend the unitless set
func (s *SiteGeneratorService) WithCSSGenerator(css *templates.CSSGenerator) *SiteGeneratorService {
	if css != nil {
		s.css = css
	}
	return s
}

// GenerateStaticSite produces the complete output file set for a project:
// one HTML document per page in project order, the consolidated component
// stylesheet, every asset with loaded content in manifest order, and the
// global stylesheet.
func (s *SiteGeneratorService) GenerateStaticSite(ctx context.Context, project *builder.Project) ([]builder.GeneratedFile, error) {
	result, err := s.Generate(ctx, project)
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// Generate runs the pipeline and returns the files with the asset manifest
func (s *SiteGeneratorService) Generate(ctx context.Context, project *builder.Project) (*GenerationResult, error) {
	start := time.Now()

	if err := project.Validate(); err != nil {
		s.recorder.IncGenerationOutcome(metrics.OutcomeFailed)
		s.logger.LogError(logging.ChannelGeneration, "generate", err, nil)
		return nil, err
	}

	marker := s.perfTracker.StartOperation("generate:site", project.ID)
	defer s.perfTracker.CompleteOperation(marker)

	log := s.logger.WithProject(logging.ChannelGeneration, project.ID)
	log.Info("Generating static site", "pages", len(project.Pages))

	result, err := s.generate(ctx, project)
	if err != nil {
		marker.SetError(err)
		outcome := metrics.OutcomeFailed
		if ctx.Err() != nil {
			outcome = metrics.OutcomeCanceled
		}
		s.recorder.IncGenerationOutcome(outcome)
		s.logger.LogError(logging.ChannelGeneration, "generate", err, map[string]any{"projectId": project.ID})
		return nil, err
	}

	result.Duration = time.Since(start)
	marker.AddMetadata("files", len(result.Files))
	marker.AddMetadata("skippedAssets", result.Skipped)

	s.recorder.ObserveGenerationDuration(result.Duration)
	if result.Skipped > 0 {
		s.recorder.IncGenerationOutcome(metrics.OutcomeDegraded)
	} else {
		s.recorder.IncGenerationOutcome(metrics.OutcomeSuccess)
	}

	log.Info("Static site generated",
		"files", len(result.Files),
		"assets", len(result.Assets),
		"skippedAssets", result.Skipped,
		"duration", result.Duration)

	return result, nil
}

func (s *SiteGeneratorService) generate(ctx context.Context, project *builder.Project) (*GenerationResult, error) {
	all := project.AllComponents()

	stageStart := time.Now()
	manifest := s.assets.CollectAssets(all)
	rewrites := RewriteMap(manifest)
	s.recorder.ObserveStageDuration(metrics.StageAssets, time.Since(stageStart))

	files := make([]builder.GeneratedFile, 0, len(project.Pages)+len(manifest)+2)

	stageStart = time.Now()
	for i := range project.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := &project.Pages[i]

		body, err := templates.RenderPageBody(page, project.Pages, rewrites)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", page.ID, err)
		}

		out, err := builder.PageOutputPath(page.Path)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", page.ID, err)
		}

		title := page.Name
		if title == "" {
			title = project.Name
		}
		files = append(files, builder.TextFile(out, templates.RenderPageDocument(title, body)))

		s.logger.Generation().Debug("Rendered page", "pageId", page.ID, "path", out, "components", len(page.Components))
	}
	s.recorder.ObserveStageDuration(metrics.StageHTML, time.Since(stageStart))
	s.recorder.AddGeneratedFiles("page", len(files))

	stageStart = time.Now()
	files = append(files, builder.TextFile(ComponentsCSSPath, s.css.ConsolidateStyles(project.Pages)))
	s.recorder.ObserveStageDuration(metrics.StageCSS, time.Since(stageStart))

	assetMarker := s.perfTracker.StartOperation("assets:load", project.ID)
	loaded, err := s.assets.LoadContent(ctx, manifest, s.reader)
	s.perfTracker.CompleteOperation(assetMarker)
	if err != nil {
		return nil, err
	}

	var emitted, skipped int
	for _, a := range loaded {
		if a.External {
			continue
		}
		if !a.HasContent() {
			if s.reader != nil {
				skipped++
				s.recorder.IncAssetSkipped("unreadable")
			}
			continue
		}
		files = append(files, builder.GeneratedFile{Path: a.NewPathInOutput, Content: a.Content})
		emitted++
	}
	s.recorder.AddGeneratedFiles("asset", emitted)

	files = append(files, builder.TextFile(GlobalsCSSPath, templates.GlobalStylesheet()))
	s.recorder.AddGeneratedFiles("stylesheet", 2)

	return &GenerationResult{
		Files:   files,
		Assets:  loaded,
		Skipped: skipped,
	}, nil
}
