package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("EXTRACTION_URL", "")
	t.Setenv("EXTRACTION_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8000/extract", cfg.ExtractionURL)
	assert.Equal(t, 60*time.Second, cfg.ExtractionTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("EXTRACTION_URL", "http://extractor:9000/extract")
	t.Setenv("EXTRACTION_TIMEOUT", "15s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("INTAKE_RATE_LIMIT", "5-S")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "http://extractor:9000/extract", cfg.ExtractionURL)
	assert.Equal(t, 15*time.Second, cfg.ExtractionTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "5-S", cfg.IntakeRateLimit)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("EXTRACTION_TIMEOUT", "soon")
	v.Set("LOG_LEVEL", "loud")

	cfg := fromViper(v)

	assert.Equal(t, 60*time.Second, cfg.ExtractionTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "10-M", cfg.IntakeRateLimit)
}
