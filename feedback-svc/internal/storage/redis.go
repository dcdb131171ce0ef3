package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// MarkerKey identifies one message from one phone. Messages differing only in
// case or surrounding spaces share a key.
func (c *RedisCache) MarkerKey(phone, message string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(message))))
	return "feedback:" + strings.ReplaceAll(phone, " ", "") + ":" + hex.EncodeToString(sum[:8])
}

func (c *RedisCache) Claim(ctx context.Context, key string) (bool, error) {
	return c.Client.SetNX(ctx, key, "1", c.TTL).Result()
}

func (c *RedisCache) Release(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
