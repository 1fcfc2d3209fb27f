package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	cfg, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "auto", cfg.Data.Source)
	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, "ecowise", cfg.Repositories.Postgres.DB)
}

func TestLoadEmbedded_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("CLIENT_API_BASE_URL", "https://ecowise.example")

	cfg, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, []string{"https://ecowise.example"}, cfg.Server.AllowedOrigins)
}
