package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "HTTP_ADDR", "GEMINI_API_KEY", "SERPAPI_API_KEY", "LLM_TIMEOUT",
		"DIRECT_FETCH_TIMEOUT", "SEARCH_TIMEOUT", "RENDER_FALLBACK", "FETCH_MAX_REDIRECTS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.SerpAPIKey)
	assert.Equal(t, 10*time.Second, cfg.DirectFetchTimeout)
	assert.Equal(t, 15*time.Second, cfg.SearchTimeout)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.MaxRedirects)
	assert.False(t, cfg.RenderFallback)
	assert.Equal(t, int64(2<<20), cfg.MaxBodyBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("SERPAPI_API_KEY", "s-key")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("SEARCH_TIMEOUT", "20")
	t.Setenv("DIRECT_FETCH_TIMEOUT", "garbage")
	t.Setenv("RENDER_FALLBACK", "true")

	cfg := Load()

	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "s-key", cfg.SerpAPIKey)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 20*time.Second, cfg.SearchTimeout)
	assert.Equal(t, 10*time.Second, cfg.DirectFetchTimeout)
	assert.True(t, cfg.RenderFallback)
}
