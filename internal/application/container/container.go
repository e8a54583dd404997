// Package container provides dependency injection for all singleton services
package container

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/AtRiskMedia/sitegen-go/internal/application/services"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/caching/cleanup"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/media"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/metrics"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/templates"
	"github.com/AtRiskMedia/sitegen-go/pkg/config"
)

// Options overrides the config-derived settings, mainly for the CLI and tests
type Options struct {
	PublicDir     string
	MaxImageWidth int
	UnitlessProps []string
	BuildCacheTTL time.Duration
	BuildCacheMax int
}

// DefaultOptions reads the options from the central config package
func DefaultOptions() Options {
	return Options{
		PublicDir:     config.PublicDir,
		MaxImageWidth: config.AssetMaxImageWidth,
		UnitlessProps: config.UnitlessProps,
		BuildCacheTTL: config.BuildCacheTTL,
		BuildCacheMax: config.BuildCacheMax,
	}
}

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Generation services
	SiteGenerator *services.SiteGeneratorService
	AssetLoader   *media.AssetLoader

	// Build cache
	Builds        *stores.BuildsStore
	CleanupWorker *cleanup.Worker

	// Observability
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
	Registry    *prom.Registry
	Recorder    *metrics.PrometheusRecorder
}

// NewContainer creates and wires all singleton services
func NewContainer(logger *logging.ChanneledLogger, perfTracker *performance.Tracker, opts Options) *Container {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if perfTracker == nil {
		perfTracker = performance.NewTracker(performance.DefaultTrackerConfig())
	}

	registry := prom.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewPrometheusRecorder(registry)

	loader := media.NewAssetLoader(opts.PublicDir, opts.MaxImageWidth, logger)
	generator := services.NewSiteGeneratorService(logger, perfTracker).
		WithAssetReader(loader).
		WithRecorder(recorder).
		WithCSSGenerator(templates.NewCSSGenerator(opts.UnitlessProps...))

	builds := stores.NewBuildsStore(opts.BuildCacheTTL, opts.BuildCacheMax)

	return &Container{
		SiteGenerator: generator,
		AssetLoader:   loader,
		Builds:        builds,
		CleanupWorker: cleanup.NewWorker(builds, logger, cleanup.NewConfig()),
		Logger:        logger,
		PerfTracker:   perfTracker,
		Registry:      registry,
		Recorder:      recorder,
	}
}
