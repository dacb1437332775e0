package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// defaultTTL bounds how long a published deck stays resolvable. Expiry
// is the only delete operation; there is no explicit one.
const defaultTTL = 7 * 24 * time.Hour

// Store is the durable key-value backend of the transport. A Put failure
// is expected (quota, restricted environments) and recorded by the
// publisher as a boolean, never propagated.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// RedisStore persists decks under their deck:<id> key with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store put %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store get %s: %w", key, err)
	}
	return data, nil
}
