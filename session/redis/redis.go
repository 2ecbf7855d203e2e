package redis_session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/websage-ai/websage/session"
)

type Store struct {
	client *redis.Client
}

func NewRedisSessionStore(addr, password string, db int) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Store{client: rdb}
}

func (store *Store) EnsureSession(id string, ttl time.Duration) (session.Session, error) {
	ctx := context.Background()
	if id != "" {
		key := metaKey(id)
		exists, err := store.client.Exists(ctx, key).Result()
		if err == nil && exists == 1 {
			sess := &Session{client: store.client, id: id, ttl: ttl}
			sess.Expire(ttl)
			return sess, nil
		}
	}
	newID := uuid.NewString()
	sess := &Session{client: store.client, id: newID, ttl: ttl}
	if err := store.client.Set(ctx, metaKey(newID), "{}", ttl).Err(); err != nil {
		return nil, fmt.Errorf("init session meta: %w", err)
	}
	return sess, nil
}

func (store *Store) GetSession(id string) (session.Session, error) {
	ctx := context.Background()
	exists, err := store.client.Exists(ctx, metaKey(id)).Result()
	if err != nil || exists == 0 {
		return nil, nil
	}
	return &Session{client: store.client, id: id}, nil
}

type Session struct {
	client *redis.Client
	id     string
	ttl    time.Duration
}

func metaKey(id string) string     { return fmt.Sprintf("session:%s:meta", id) }
func messagesKey(id string) string { return fmt.Sprintf("session:%s:messages", id) }
func sourcesKey(id string) string  { return fmt.Sprintf("session:%s:sources", id) }

func (s *Session) ID() string { return s.id }

func (s *Session) Expire(ttl time.Duration) {
	ctx := context.Background()
	s.ttl = ttl
	for _, key := range []string{metaKey(s.id), messagesKey(s.id), sourcesKey(s.id)} {
		_ = s.client.Expire(ctx, key, ttl).Err()
	}
}

func (s *Session) AppendMessage(m session.Message) {
	ctx := context.Background()
	data, _ := json.Marshal(m)
	_ = s.client.RPush(ctx, messagesKey(s.id), data).Err()
	if s.ttl > 0 {
		_ = s.client.Expire(ctx, messagesKey(s.id), s.ttl).Err()
	}
}

func (s *Session) Messages() []session.Message {
	ctx := context.Background()
	raw, err := s.client.LRange(ctx, messagesKey(s.id), 0, -1).Result()
	if err != nil {
		return nil
	}
	out := make([]session.Message, 0, len(raw))
	for _, item := range raw {
		var m session.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *Session) SetSources(urls []string) {
	ctx := context.Background()
	data, _ := json.Marshal(urls)
	exp := s.ttl
	if exp <= 0 {
		exp = redis.KeepTTL
	}
	_ = s.client.Set(ctx, sourcesKey(s.id), data, exp).Err()
}

func (s *Session) Sources() []string {
	ctx := context.Background()
	val, err := s.client.Get(ctx, sourcesKey(s.id)).Result()
	if err != nil {
		return nil
	}
	var out []string
	_ = json.Unmarshal([]byte(val), &out)
	return out
}

func (s *Session) ClearSources() {
	ctx := context.Background()
	_ = s.client.Del(ctx, sourcesKey(s.id)).Err()
}
