package codes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps entries as JSON under "<prefix>:<code>" with a TTL, so
// Redis itself evicts codes that were never consumed.
type RedisStore[V any] struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisStore[V any](client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore[V] {
	return &RedisStore[V]{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore[V]) key(code int) string {
	return s.prefix + ":" + strconv.Itoa(code)
}

func (s *RedisStore[V]) encode(v V, issuedAt time.Time) ([]byte, error) {
	b, err := json.Marshal(Entry[V]{Value: v, IssuedAt: issuedAt})
	if err != nil {
		return nil, fmt.Errorf("encode code entry: %w", err)
	}
	return b, nil
}

func (s *RedisStore[V]) PutIfAbsent(ctx context.Context, code int, v V, issuedAt time.Time) (bool, error) {
	b, err := s.encode(v, issuedAt)
	if err != nil {
		return false, err
	}
	ok, err := s.client.SetNX(ctx, s.key(code), b, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return ok, nil
}

func (s *RedisStore[V]) TryGet(ctx context.Context, code int) (Entry[V], bool, error) {
	var e Entry[V]

	b, err := s.client.Get(ctx, s.key(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return e, false, nil
		}
		return e, false, fmt.Errorf("redis error: %w", err)
	}

	if err := json.Unmarshal(b, &e); err != nil {
		return e, false, fmt.Errorf("decode code entry: %w", err)
	}
	return e, true, nil
}

func (s *RedisStore[V]) Remove(ctx context.Context, code int) error {
	if err := s.client.Del(ctx, s.key(code)).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}
