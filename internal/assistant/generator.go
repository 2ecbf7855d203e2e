package assistant

import (
	"context"
	"fmt"
	"log"

	"github.com/websage-ai/websage/provider"
)

// Mode selects the answer path. Any other value is a programming error and
// fails loudly instead of degrading.
type Mode string

const (
	ModeNormalChat   Mode = "normal_chat"
	ModeHardQuestion Mode = "hard_question"
)

// Fixed user-facing sentences substituted for unavailable model output. The
// user is never shown a raw error.
const (
	SafetyFallback        = "I'm sorry, I cannot answer that question due to safety policies."
	EmptyFallback         = "I'm sorry, I couldn't generate a response at this time."
	InternalErrorFallback = "I'm sorry, I couldn't generate a response at this time due to an internal error."
)

// Generator produces the assistant's reply, optionally grounded in scraped
// context.
type Generator struct {
	LLM    provider.Provider
	Logger *log.Logger
}

// Answer sends either the bare question or the strict grounding prompt and
// returns the model's text verbatim. Model failures are absorbed into fixed
// fallback sentences; only an invalid mode returns an error.
func (g *Generator) Answer(ctx context.Context, mode Mode, question, contextText string) (string, error) {
	switch mode {
	case ModeNormalChat, ModeHardQuestion:
	default:
		return "", fmt.Errorf("unknown answer mode: %q", mode)
	}

	prompt := plainPrompt(question)
	if contextText != "" {
		prompt = groundedPrompt(contextText, question)
	}

	res, err := g.LLM.Generate(ctx, prompt)
	if err != nil {
		g.logf("generation failed (%s): %v", mode, err)
		return InternalErrorFallback, nil
	}
	if res.Text != "" {
		return res.Text, nil
	}
	if res.Blocked {
		g.logf("generation blocked by safety policy (%s)", mode)
		return SafetyFallback, nil
	}
	return EmptyFallback, nil
}

func (g *Generator) logf(format string, args ...any) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}
