package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ASSET_MAX_IMAGE_WIDTH", "UNITLESS_PROPS", "BUILD_CACHE_TTL", "LOG_JSON"} {
		t.Setenv(key, "")
	}
	Load()

	assert.Equal(t, "8080", Port)
	assert.Zero(t, AssetMaxImageWidth)
	assert.Empty(t, UnitlessProps)
	assert.Equal(t, time.Hour, BuildCacheTTL)
	assert.False(t, LogJSON)
}

func TestLoad_Overrides(t *testing.T) {
	// registered first so it runs after the environment is restored
	t.Cleanup(Load)

	t.Setenv("PORT", "9090")
	t.Setenv("ASSET_MAX_IMAGE_WIDTH", "1600")
	t.Setenv("UNITLESS_PROPS", "aspectRatio, ,columnCount")
	t.Setenv("BUILD_CACHE_TTL", "90s")
	t.Setenv("MAX_PROJECT_BYTES", "2048")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000")
	Load()

	assert.Equal(t, "9090", Port)
	assert.Equal(t, 1600, AssetMaxImageWidth)
	assert.Equal(t, []string{"aspectRatio", "columnCount"}, UnitlessProps)
	assert.Equal(t, 90*time.Second, BuildCacheTTL)
	assert.Equal(t, int64(2048), MaxProjectBytes)
	assert.True(t, LogJSON)
	assert.Equal(t, []string{"http://localhost:3000"}, CORSOrigins)
}

func TestGetEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("SITEGEN_TEST_INT", "abc")
	t.Setenv("SITEGEN_TEST_DUR", "soon")
	t.Setenv("SITEGEN_TEST_BOOL", "maybe")

	assert.Equal(t, 7, getEnvInt("SITEGEN_TEST_INT", 7))
	assert.Equal(t, time.Minute, getEnvDuration("SITEGEN_TEST_DUR", time.Minute))
	assert.True(t, getEnvBool("SITEGEN_TEST_BOOL", true))
}
