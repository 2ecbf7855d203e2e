package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/websage-ai/websage/session"
)

// NoInformationNotice is shown when retrieval found nothing usable and the
// answer falls back to the model's own knowledge.
const NoInformationNotice = "I couldn't find enough relevant information online for that question."

// Turn is the outcome of handling one user query
type Turn struct {
	Reply   string   `json:"reply"`
	Sources []string `json:"sources"`
	Notices []string `json:"notices,omitempty"`
	Intent  Intent   `json:"intent"`
}

// Assistant is the turn handler: it owns the classify → retrieve → generate
// sequence and is the only mutator of session state.
type Assistant struct {
	Classifier *Classifier
	Retriever  *Retriever
	Generator  *Generator
	Logger     *log.Logger
}

// Respond handles one user turn against a session. Steps run strictly
// sequentially; every external failure has already been absorbed by the
// component that hit it, so this function only branches on emptiness.
func (a *Assistant) Respond(ctx context.Context, sess session.Session, query string) (Turn, error) {
	sess.AppendMessage(session.Message{Role: session.RoleUser, Content: query, At: time.Now()})
	// stale sources must never outlive the answer they backed
	sess.ClearSources()

	intent := a.Classifier.Classify(ctx, query)
	turnsTotal.WithLabelValues(string(intent)).Inc()
	a.logf("query classified as %s", intent)

	turn := Turn{Intent: intent}
	if intent == IntentNormalChat {
		reply, err := a.Generator.Answer(ctx, ModeNormalChat, query, "")
		if err != nil {
			return Turn{}, err
		}
		turn.Reply = reply
		sess.AppendMessage(session.Message{Role: session.RoleAssistant, Content: reply, At: time.Now()})
		return turn, nil
	}

	grounding, err := a.Retriever.Retrieve(ctx, query)
	switch {
	case err == nil:
		sess.SetSources(grounding.Sources)
		turn.Sources = grounding.Sources
		if grounding.TruncatedFrom > 0 {
			turn.Notices = append(turn.Notices, fmt.Sprintf(
				"Context too large, truncating from %d to %d characters.",
				grounding.TruncatedFrom, len(grounding.Context)))
		}
		reply, err := a.Generator.Answer(ctx, ModeHardQuestion, query, grounding.Context)
		if err != nil {
			return Turn{}, err
		}
		turn.Reply = reply
	case errors.Is(err, ErrNoContext):
		turn.Notices = append(turn.Notices, NoInformationNotice)
		reply, err := a.Generator.Answer(ctx, ModeHardQuestion, query, "")
		if err != nil {
			return Turn{}, err
		}
		turn.Reply = reply
	default:
		return Turn{}, err
	}

	sess.AppendMessage(session.Message{Role: session.RoleAssistant, Content: turn.Reply, At: time.Now()})
	return turn, nil
}

func (a *Assistant) logf(format string, args ...any) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
	}
}
