package session

import (
	"time"
)

// Role tags who produced a transcript message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. Created per turn, appended, never mutated.
type Message struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Store interface for session management
type Store interface {
	EnsureSession(id string, ttl time.Duration) (Session, error)
	GetSession(id string) (Session, error)
}

// Session owns one conversation: an append-only transcript plus the source
// URLs backing the most recent grounded answer. Sources are replaced, never
// merged, and cleared before each new query.
type Session interface {
	ID() string
	Expire(ttl time.Duration)
	AppendMessage(m Message)
	Messages() []Message
	SetSources(urls []string)
	Sources() []string
	ClearSources()
}
