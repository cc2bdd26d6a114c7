package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is a map-backed Store used in tests and local development.
// Documents are copied through JSON on the way in and out so callers never
// share memory with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
	exp  map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: map[string][]byte{},
		exp:  map[string]time.Time{},
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	raw, ok := s.docs[id]
	deadline := s.exp[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(deadline) {
		return New(), nil
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return New(), nil
	}
	return &sess, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	sess.ExpiresAt = time.Now().Add(TTL)
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[sess.ID] = data
	s.exp[sess.ID] = sess.ExpiresAt
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.docs, id)
	delete(s.exp, id)
	s.mu.Unlock()
	return nil
}
