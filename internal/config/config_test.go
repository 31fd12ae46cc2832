package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_BASE_URL", "ANALYZER_PORT", "USE_OLLAMA", "LLM_PROVIDER", "LLM_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.Equal(t, "8000", cfg.Analyzer.Port)
	assert.False(t, cfg.LLM.EnabledByDefault)
	assert.Equal(t, ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://tailor.example.com/")
	t.Setenv("USE_OLLAMA", "true")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("LLM_TIMEOUT", "5s")

	cfg := Load()

	assert.True(t, cfg.LLM.EnabledByDefault)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.IsRelativeAPI())
	assert.Equal(t, "https://tailor.example.com", cfg.ResolveAPIBaseURL())
	require.NoError(t, cfg.Validate())
}

func TestResolveRelativeAPI(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "3000"},
		API:    APIConfig{BaseURL: "/api/"},
		LLM:    LLMConfig{Provider: ProviderOllama},
	}

	assert.True(t, cfg.IsRelativeAPI())
	assert.Equal(t, "/api", cfg.APIPrefix())
	assert.Equal(t, "http://127.0.0.1:3000/api", cfg.ResolveAPIBaseURL())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{
			name:  "empty base url",
			cfg:   Config{API: APIConfig{BaseURL: " "}, LLM: LLMConfig{Provider: ProviderOllama}},
			field: "API_BASE_URL",
		},
		{
			name:  "gemini without key",
			cfg:   Config{API: APIConfig{BaseURL: "/api"}, LLM: LLMConfig{Provider: ProviderGemini}},
			field: "GEMINI_API_KEY",
		},
		{
			name:  "unknown provider",
			cfg:   Config{API: APIConfig{BaseURL: "/api"}, LLM: LLMConfig{Provider: "openai"}},
			field: "LLM_PROVIDER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
