package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

type ollamaService struct {
	client llms.Model
}

// NewOllamaService talks to a local Ollama server, e.g. http://localhost:11434.
func NewOllamaService(serverURL, model string) (LLMService, error) {
	client, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	return &ollamaService{client: client}, nil
}

// GenerateText implements LLMService.
func (o *ollamaService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, o.client, prompt, llms.WithTemperature(float64(temperature)))
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	return resp, nil
}
