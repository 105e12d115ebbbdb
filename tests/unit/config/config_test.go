package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeos/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "tradeos-uploads", cfg.S3.Bucket)
	assert.Equal(t, "ap-northeast-2", cfg.S3.Region)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-flash", "gemini-1.5-pro"}, cfg.Extract.Gemini.Models)
	assert.Equal(t, "gpt-4o", cfg.Extract.OpenAI.Model)
	assert.Equal(t, 120, cfg.Extract.Gemini.TimeoutSecs)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRADEOS_SERVER_PORT", ":9090")
	t.Setenv("TRADEOS_EXTRACT_GEMINI_API_KEY", "gk-test")
	t.Setenv("TRADEOS_EXTRACT_GEMINI_MODELS", "gemini-2.5-pro, gemini-2.0-flash")
	t.Setenv("TRADEOS_EXTRACT_OPENAI_MODEL", "gpt-4o-mini")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "gk-test", cfg.Extract.Gemini.APIKey)
	assert.Equal(t, []string{"gemini-2.5-pro", "gemini-2.0-flash"}, cfg.Extract.Gemini.Models)
	assert.Equal(t, "gpt-4o-mini", cfg.Extract.OpenAI.Model)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("TRADEOS_SERVER_PORT", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}
