package provider

import (
	"context"
	"errors"

	"github.com/websage-ai/websage/config"
	gemini_provider "github.com/websage-ai/websage/provider/gemini"
	"github.com/websage-ai/websage/provider/models"
	openai_provider "github.com/websage-ai/websage/provider/openai"
)

// Client represents different LLM providers
type Client string

const (
	Gemini Client = "gemini"
	OpenAI Client = "openai"
)

// Provider is the interface that all LLM implementations must satisfy
type Provider interface {
	Generate(ctx context.Context, prompt string) (models.Result, error)
}

// NewProvider creates a new LLM client based on the provided configuration
func NewProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch Client(cfg.Provider) {
	case Gemini:
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY not set")
		}
		return gemini_provider.NewClient(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	case OpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY not set")
		}
		return openai_provider.NewClient(cfg.OpenAIAPIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
