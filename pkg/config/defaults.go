// Package config provides centralized default values for the site generator
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile applies .env once; variables already set in the environment win
func loadEnvFile() {
	envLoaded.Do(func() {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		log.Println("Loading configuration overrides from .env file...")
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping empty items
func getEnvList(key string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) > 0 {
		log.Printf("Config override: %s=%s", key, strings.Join(out, ","))
	}
	return out
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	CORSOrigins        []string
	MaxProjectBytes    int64

	// Generation
	PublicDir          string
	OutputDir          string
	AssetMaxImageWidth int
	UnitlessProps      []string

	// Build Cache
	BuildCacheTTL        time.Duration
	BuildCacheMax        int
	BuildCleanupInterval time.Duration
	BuildCleanupVerbose  bool

	// Logging
	LogLevel  string
	LogJSON   bool
	LogDir    string
	LogToFile bool
)

func init() {
	Load()
}

// Load reads every setting from the environment, applying .env first
func Load() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	CORSOrigins = getEnvList("CORS_ORIGINS")
	MaxProjectBytes = getEnvInt64("MAX_PROJECT_BYTES", 10<<20)

	// Generation
	PublicDir = getEnvString("PUBLIC_DIR", "public")
	OutputDir = getEnvString("OUTPUT_DIR", "dist")
	AssetMaxImageWidth = getEnvInt("ASSET_MAX_IMAGE_WIDTH", 0)
	UnitlessProps = getEnvList("UNITLESS_PROPS")

	// Build Cache
	BuildCacheTTL = getEnvDuration("BUILD_CACHE_TTL", time.Hour)
	BuildCacheMax = getEnvInt("BUILD_CACHE_MAX", 20)
	BuildCleanupInterval = getEnvDuration("BUILD_CLEANUP_INTERVAL", 5*time.Minute)
	BuildCleanupVerbose = getEnvBool("BUILD_CLEANUP_VERBOSE", false)

	// Logging
	LogLevel = getEnvString("LOG_LEVEL", "info")
	LogJSON = getEnvBool("LOG_JSON", false)
	LogDir = getEnvString("LOG_DIR", "logs")
	LogToFile = getEnvBool("LOG_TO_FILE", false)
}
