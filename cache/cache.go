package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store caches JSON-encoded values.
type Store interface {
	GetObject(ctx context.Context, key string, dest interface{}) (bool, error)
	SetObject(ctx context.Context, key string, obj interface{}, exp time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Nop never hits.
type Nop struct{}

func (Nop) GetObject(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Nop) SetObject(context.Context, string, interface{}, time.Duration) error { return nil }
func (Nop) DeletePrefix(context.Context, string) error { return nil }

type RedisStore struct {
	client *redis.Client
}

// New returns a RedisStore, or an in-process Memory store when client is nil.
func New(client *redis.Client) Store {
	if client == nil {
		return NewMemory()
	}
	return &RedisStore{client: client}
}

func (s *RedisStore) GetObject(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) SetObject(ctx context.Context, key string, obj interface{}, exp time.Duration) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, exp).Err()
}

func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
