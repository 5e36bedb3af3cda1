package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores computed answers in Redis with per-entry expiry.
// It is strictly an optimization: a single connection attempt happens at
// construction, and any failure there or later degrades to cache misses
// instead of errors.
type RedisCache struct {
	client    *redis.Client
	namespace string
	available bool
}

// Options configures the Redis connection and the cache key namespace.
type Options struct {
	Addr           string
	Password       string
	DB             int
	Namespace      string
	ConnectTimeout time.Duration
}

type entry struct {
	Response string `json:"response"`
	Query    string `json:"query"`
	StoredAt string `json:"stored_at"`
}

// NewRedisCache connects to the backing store. When the store is
// unreachable the returned cache is still usable; it just never hits.
func NewRedisCache(opts Options) *RedisCache {
	if opts.Namespace == "" {
		opts.Namespace = "chatbot_response:"
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.ConnectTimeout,
		ReadTimeout:  opts.ConnectTimeout,
		WriteTimeout: opts.ConnectTimeout,
	})

	c := &RedisCache{
		client:    client,
		namespace: opts.Namespace,
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("warning: response cache unavailable: %v", err)
		return c
	}

	c.available = true
	return c
}

func (c *RedisCache) Available() bool {
	return c.available
}

// key derives the cache key from the normalized query: lowercase, trimmed,
// hashed, under the cache namespace. At most one entry exists per
// normalized query; writes overwrite.
func (c *RedisCache) key(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	hash := sha256.Sum256([]byte(normalized))
	return c.namespace + hex.EncodeToString(hash[:])
}

func (c *RedisCache) Get(ctx context.Context, query string) (string, bool) {
	if !c.available {
		return "", false
	}

	data, err := c.client.Get(ctx, c.key(query)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("warning: cache get failed: %v", err)
		return "", false
	}

	var e entry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		log.Printf("warning: dropping malformed cache entry: %v", err)
		return "", false
	}

	return e.Response, true
}

func (c *RedisCache) Set(ctx context.Context, query, response string, ttl time.Duration) bool {
	if !c.available {
		return false
	}

	data, err := json.Marshal(entry{
		Response: response,
		Query:    query,
		StoredAt: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return false
	}

	if err := c.client.Set(ctx, c.key(query), data, ttl).Err(); err != nil {
		log.Printf("warning: cache set failed: %v", err)
		return false
	}

	return true
}

// Clear deletes every entry under the cache namespace. It never touches
// keys outside it.
func (c *RedisCache) Clear(ctx context.Context) error {
	if !c.available {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.namespace+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
