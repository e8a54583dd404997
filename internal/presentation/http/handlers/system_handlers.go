package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/performance"
)

// SystemHandlers serves health, performance and log level endpoints
type SystemHandlers struct {
	builds      *stores.BuildsStore
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	started     time.Time
}

// NewSystemHandlers creates system handlers with injected dependencies
func NewSystemHandlers(builds *stores.BuildsStore, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SystemHandlers {
	return &SystemHandlers{
		builds:      builds,
		logger:      logger,
		perfTracker: perfTracker,
		started:     time.Now(),
	}
}

// Health handles GET /health
func (h *SystemHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
		"builds": h.builds.Len(),
	})
}

// GetPerformance handles GET /api/v1/system/performance
func (h *SystemHandlers) GetPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"operations": h.perfTracker.Stats(),
		"alerts":     h.perfTracker.GetAlerts(),
	})
}

// GetLogLevels handles GET /api/v1/system/logs/levels
func (h *SystemHandlers) GetLogLevels(c *gin.Context) {
	c.JSON(http.StatusOK, h.logger.GetChannelLevels())
}

// SetLogLevel handles POST /api/v1/system/logs/levels - sets the log level for a specific channel.
func (h *SystemHandlers) SetLogLevel(c *gin.Context) {
	var req struct {
		Channel string `json:"channel" binding:"required"`
		Level   string `json:"level" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	level, err := logging.ParseLevel(req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log level specified", "details": err.Error()})
		return
	}

	if err := h.logger.SetChannelLevel(logging.Channel(req.Channel), level); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to set log level", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": fmt.Sprintf("Log level for channel '%s' set to '%s'", req.Channel, level)})
}
