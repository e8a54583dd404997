// Package middleware provides gin middleware for the HTTP glue
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://[::1]:3000", // IPv6 localhost
}

// CORSMiddleware allows the editor origins to call the API. An empty
// origins list falls back to the local development origins.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	config := cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "If-None-Match", "Cache-Control",
		},
		ExposeHeaders: []string{
			"Content-Type", "Content-Disposition", "ETag",
		},
		MaxAge: 12 * time.Hour,
	}

	return cors.New(config)
}

// RequestLogger logs each request on the http channel
func RequestLogger(logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTP().Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration", time.Since(start))
	}
}
