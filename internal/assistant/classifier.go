package assistant

import (
	"context"
	"log"
	"strings"

	"github.com/websage-ai/websage/provider"
)

// Intent is the routing decision for one user query
type Intent string

const (
	IntentNormalChat         Intent = "NORMAL_CHAT"
	IntentInformationSeeking Intent = "INFORMATION_SEEKING"
)

// Classifier decides whether a query needs a web lookup. Any failure or
// unexpected model output falls back to NORMAL_CHAT, the cheaper path.
type Classifier struct {
	LLM    provider.Provider
	Logger *log.Logger
}

// Classify sends the few-shot prompt and normalizes the one-word answer.
// No retry: one attempt, then the conservative default.
func (c *Classifier) Classify(ctx context.Context, query string) Intent {
	res, err := c.LLM.Generate(ctx, classifyPrompt(query))
	if err != nil {
		c.logf("intent classification failed: %v, defaulting to %s", err, IntentNormalChat)
		return IntentNormalChat
	}

	label := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(res.Text)), ".", "")
	switch Intent(label) {
	case IntentNormalChat, IntentInformationSeeking:
		return Intent(label)
	default:
		c.logf("unexpected classification %q, defaulting to %s", label, IntentNormalChat)
		return IntentNormalChat
	}
}

func (c *Classifier) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
