package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"restoran/cart-svc/internal/cart"
)

// RedisKV stores carts and language preferences in Redis. Every write
// refreshes the key's TTL, so an abandoned cart expires on its own.
type RedisKV struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisKV(client *redis.Client, ttl time.Duration) *RedisKV {
	return &RedisKV{Client: client, TTL: ttl}
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cart.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, key, value, s.TTL).Err()
}

func (s *RedisKV) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

var _ cart.KV = (*RedisKV)(nil)
