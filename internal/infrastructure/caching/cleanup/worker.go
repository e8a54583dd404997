// Package cleanup provides background worker
package cleanup

import (
	"context"
	"time"

	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
)

// Purger drops expired entries and reports how many were removed
type Purger interface {
	PurgeExpired() int
	Len() int
}

// Worker handles background cache cleanup operations
type Worker struct {
	store  Purger
	logger *logging.ChanneledLogger
	config *Config
}

// NewWorker creates a new cleanup worker with injected configuration
func NewWorker(store Purger, logger *logging.ChanneledLogger, config *Config) *Worker {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Worker{
		store:  store,
		logger: logger,
		config: config,
	}
}

// Start begins the cleanup worker routine, using the configured interval.
// It returns when ctx is done.
func (w *Worker) Start(ctx context.Context) {
	if w.config.CleanupInterval <= 0 {
		w.logger.Cache().Info("Build cleanup worker disabled")
		return
	}

	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	w.logger.Cache().Info("Build cleanup worker started",
		"interval", w.config.CleanupInterval, "verbose", w.config.VerboseReporting)

	for {
		select {
		case <-ctx.Done():
			w.logger.Cache().Info("Build cleanup worker stopping")
			return
		case <-ticker.C:
			w.PerformCleanup()
		}
	}
}

// PerformCleanup runs one purge pass and returns the number of builds removed
func (w *Worker) PerformCleanup() int {
	start := time.Now()
	cleaned := w.store.PurgeExpired()
	duration := time.Since(start)

	if cleaned > 0 {
		w.logger.Cache().Info("Build cleanup finished",
			"cleaned", cleaned, "remaining", w.store.Len(), "duration", duration)
	} else if w.config.VerboseReporting {
		w.logger.Cache().Debug("Build cleanup completed - no expired builds found",
			"remaining", w.store.Len(), "duration", duration)
	}
	return cleaned
}
