package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps sessions as JSON values with a server-side TTL, selected
// with SESSION_BACKEND=redis. Expiry is handled entirely by redis.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore { return &RedisStore{Client: client} }

func key(id string) string { return "session:" + id }

func (s *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return New(), nil
	}
	raw, err := s.Client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return New(), nil
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key(sess.ID), data, TTL).Err()
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.Client.Del(ctx, key(id)).Err()
}
