// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/sitegen-go/internal/application/container"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/http/server"
	"github.com/AtRiskMedia/sitegen-go/pkg/config"
)

// NewLogger builds the channeled logger from the central config
func NewLogger() (*logging.ChanneledLogger, error) {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		log.Printf("Warning: %v, using info", err)
		level = slog.LevelInfo
	}

	cfg := logging.DefaultLoggerConfig()
	cfg.DefaultLevel = level
	cfg.JSONFormat = config.LogJSON
	cfg.OutputToFile = config.LogToFile
	cfg.LogDirectory = config.LogDir
	return logging.NewChanneledLogger(cfg)
}

// Initialize performs the serve-mode startup sequence and blocks until a
// shutdown signal arrives
func Initialize(port string, opts container.Options) error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	// Step 1: Logging
	logger, err := NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()
	logger.LogStartupPhase("logging", time.Since(start), true)

	// Step 2: Create dependency injection container
	phaseStart := time.Now()
	appContainer := container.NewContainer(logger, performance.NewTracker(performance.DefaultTrackerConfig()), opts)
	logger.LogStartupPhase("container", time.Since(phaseStart), true)
	logger.Startup().Info("Generator configured",
		"publicDir", opts.PublicDir,
		"maxImageWidth", opts.MaxImageWidth,
		"extraUnitless", opts.UnitlessProps,
		"buildCacheTTL", opts.BuildCacheTTL,
		"buildCacheMax", opts.BuildCacheMax)

	if _, err := os.Stat(opts.PublicDir); err != nil {
		logger.Startup().Warn("Public directory not readable, local assets will be skipped",
			"publicDir", opts.PublicDir, "error", err.Error())
	}

	// Step 3: Start background cleanup worker
	go appContainer.CleanupWorker.Start(ctx)

	// Step 4: Start HTTP server
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(gracefulShutdown)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal or a listener failure
	select {
	case <-gracefulShutdown:
		logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	case err := <-serverErr:
		if err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
			return err
		}
	}

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
