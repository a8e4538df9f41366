package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const translationKeyPrefix = "translation:"

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client and verifies connectivity.
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetTranslation returns the cached translation of an English word, or
// ("", false) on a miss.
func (c *Client) GetTranslation(ctx context.Context, english string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, translationKeyPrefix+english).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// SetTranslation caches a translation with a TTL.
func (c *Client) SetTranslation(ctx context.Context, english, spanish string, ttl time.Duration) error {
	return c.rdb.Set(ctx, translationKeyPrefix+english, spanish, ttl).Err()
}
