package gemini_provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/websage-ai/websage/provider/models"
)

// client implements the provider interface using Google's Gemini API
type client struct {
	genai *genai.Client
	model *genai.GenerativeModel
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey, model string, temperature float64, maxTokens int) (*client, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	m := c.GenerativeModel(model)
	m.SetTemperature(float32(temperature))
	if maxTokens > 0 {
		m.SetMaxOutputTokens(int32(maxTokens))
	}
	return &client{genai: c, model: m}, nil
}

func (c *client) Close() {
	_ = c.genai.Close()
}

// Generate sends one prompt and returns the completion text, or Blocked when
// the model stopped for safety without emitting text.
func (c *client) Generate(ctx context.Context, prompt string) (models.Result, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.Result{}, fmt.Errorf("gemini generate: %w", err)
	}

	if text := extractText(resp); text != "" {
		return models.Result{Text: text}, nil
	}
	if isSafetyBlocked(resp) {
		return models.Result{Blocked: true}, nil
	}
	return models.Result{}, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}

func isSafetyBlocked(resp *genai.GenerateContentResponse) bool {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason == genai.BlockReasonSafety {
		return true
	}
	for _, cand := range resp.Candidates {
		if cand.FinishReason == genai.FinishReasonSafety {
			return true
		}
	}
	return false
}
