package inmemory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/websage-ai/websage/session"
)

type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewInMemorySessionStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (store *Store) EnsureSession(id string, ttl time.Duration) (session.Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.sweep()
	if id != "" {
		if sess, ok := store.sessions[id]; ok && !sess.expired() {
			sess.Expire(ttl)
			return sess, nil
		}
	}

	sess := &Session{id: uuid.NewString(), expiresAt: time.Now().Add(ttl)}
	store.sessions[sess.ID()] = sess
	return sess, nil
}

func (store *Store) GetSession(id string) (session.Session, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	sess, ok := store.sessions[id]
	if !ok || sess.expired() {
		return nil, nil
	}
	return sess, nil
}

// sweep drops expired sessions so the map does not grow without bound.
// Caller must hold the write lock.
func (store *Store) sweep() {
	for id, sess := range store.sessions {
		if sess.expired() {
			delete(store.sessions, id)
		}
	}
}

type Session struct {
	id        string
	expiresAt time.Time
	messages  []session.Message
	sources   []string
	mu        sync.RWMutex
}

func (s *Session) ID() string { return s.id }

func (s *Session) Expire(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Now().Add(ttl)
}

func (s *Session) expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Now().After(s.expiresAt)
}

func (s *Session) AppendMessage(m session.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

func (s *Session) Messages() []session.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]session.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) SetSources(urls []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = append([]string(nil), urls...)
}

func (s *Session) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.sources))
	copy(out, s.sources)
	return out
}

func (s *Session) ClearSources() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = nil
}
