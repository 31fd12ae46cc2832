package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	API      APIConfig
	Analyzer AnalyzerConfig
	LLM      LLMConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// APIConfig points the form at the analyzer service.
type APIConfig struct {
	BaseURL string
}

type AnalyzerConfig struct {
	Port        string
	CORSOrigins string
}

type LLMConfig struct {
	// EnabledByDefault applies when a request leaves use_llm unset.
	EnabledByDefault bool
	Provider         string
	OllamaURL        string
	OllamaModel      string
	GeminiAPIKey     string
	GeminiModel      string
	Timeout          time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://127.0.0.1:8000"),
		},
		Analyzer: AnalyzerConfig{
			Port:        getEnv("ANALYZER_PORT", "8000"),
			CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		LLM: LLMConfig{
			EnabledByDefault: getEnvAsBool("USE_OLLAMA", false),
			Provider:         strings.ToLower(getEnv("LLM_PROVIDER", ProviderOllama)),
			OllamaURL:        getEnv("OLLAMA_URL", "http://localhost:11434"),
			OllamaModel:      getEnv("OLLAMA_MODEL", "llama3.1"),
			GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
			GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:          getEnvAsDuration("LLM_TIMEOUT", "30s"),
		},
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return &ConfigError{Field: "API_BASE_URL", Message: "API_BASE_URL must not be empty"}
	}

	switch c.LLM.Provider {
	case ProviderOllama:
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required when LLM_PROVIDER=gemini"}
		}
	default:
		return &ConfigError{
			Field:   "LLM_PROVIDER",
			Message: fmt.Sprintf("unsupported LLM_PROVIDER %q", c.LLM.Provider),
		}
	}

	return nil
}

// IsRelativeAPI reports whether the analyzer is addressed by a path on the
// web server itself, e.g. "/api".
func (c *Config) IsRelativeAPI() bool {
	return strings.HasPrefix(c.API.BaseURL, "/")
}

// ResolveAPIBaseURL returns an absolute base URL for the analyzer. Relative
// values are resolved against the web server's own listen port.
func (c *Config) ResolveAPIBaseURL() string {
	base := strings.TrimRight(c.API.BaseURL, "/")
	if !c.IsRelativeAPI() {
		return base
	}
	return fmt.Sprintf("http://127.0.0.1:%s%s", c.Server.Port, base)
}

// APIPrefix is the route prefix the web server mounts the analyzer under
// when the base URL is relative.
func (c *Config) APIPrefix() string {
	return strings.TrimRight(c.API.BaseURL, "/")
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
