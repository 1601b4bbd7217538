package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps fixed-window counters in Redis.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage reuses an existing client; the caller owns its lifetime.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// Incr bumps the counter and pushes its expiry out to window.
func (s *RedisStorage) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.Pipeline()

	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return 0, err
	}

	return incr.Val(), nil
}

func (s *RedisStorage) TTL(ctx context.Context, key string) (time.Duration, error) {
	return s.client.TTL(ctx, key).Result()
}
