package services

import (
	"context"
	"fmt"

	"alfredoptarigan/ai-tailor/internal/config"
)

// LLMService generates free text from a prompt.
type LLMService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// NewLLMService builds the provider named in cfg.Provider.
func NewLLMService(ctx context.Context, cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return NewOllamaService(cfg.OllamaURL, cfg.OllamaModel)
	case config.ProviderGemini:
		return NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
}
