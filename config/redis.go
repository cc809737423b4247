package config

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is nil when REDIS_URL is not configured; callers must treat the
// cache as best-effort and fall through to the database.
var Cache *CacheClient

type CacheClient struct {
	rdb *redis.Client
}

func ConnectRedis() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set, caching disabled")
		return
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Invalid REDIS_URL, caching disabled: %v", err)
		return
	}

	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, caching disabled: %v", err)
		return
	}

	Cache = &CacheClient{rdb: rdb}
	log.Println("Redis cache connected")
}

// GetJSON reports whether the key was found and unmarshalled into dest.
func (c *CacheClient) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *CacheClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
}

func (c *CacheClient) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Cache invalidation failed: %v", err)
	}
}
