package assistant

import (
	"context"
	"strings"
	"testing"
)

func TestClassifyNormalizesLabel(t *testing.T) {
	cases := map[string]Intent{
		"NORMAL_CHAT":            IntentNormalChat,
		" normal_chat. ":         IntentNormalChat,
		"INFORMATION_SEEKING":    IntentInformationSeeking,
		"information_seeking.\n": IntentInformationSeeking,
	}
	for raw, want := range cases {
		c := &Classifier{LLM: llmSaying(raw)}
		if got := c.Classify(context.Background(), "what is go"); got != want {
			t.Errorf("Classify(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestClassifyUnexpectedLabelDefaultsToChat(t *testing.T) {
	c := &Classifier{LLM: llmSaying("I think this needs a web search")}
	if got := c.Classify(context.Background(), "whatever"); got != IntentNormalChat {
		t.Fatalf("Classify = %s, want %s", got, IntentNormalChat)
	}
}

func TestClassifyFailureDefaultsToChat(t *testing.T) {
	c := &Classifier{LLM: llmFailing()}
	if got := c.Classify(context.Background(), "whatever"); got != IntentNormalChat {
		t.Fatalf("Classify = %s, want %s", got, IntentNormalChat)
	}
}

func TestClassifyPromptEmbedsQuery(t *testing.T) {
	llm := llmSaying("NORMAL_CHAT")
	c := &Classifier{LLM: llm}
	c.Classify(context.Background(), "how tall is everest")
	if len(llm.prompts) != 1 {
		t.Fatalf("expected one model call, got %d", len(llm.prompts))
	}
	if !strings.Contains(llm.prompts[0], "User: how tall is everest ->") {
		t.Fatalf("prompt missing query: %q", llm.prompts[0])
	}
}
