package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when a key has no value (or it expired).
var ErrNotFound = fmt.Errorf("redis: key not found")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Settings storage. Each settings group is one JSON blob under settings:<name>.
func (c *Client) SetSettings(name string, value interface{}) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal settings %s: %w", name, err)
	}

	return c.rdb.Set(ctx, "settings:"+name, jsonData, 0).Err()
}

func (c *Client) GetSettings(name string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "settings:"+name).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get settings %s: %w", name, err)
	}

	return json.Unmarshal([]byte(val), dest)
}

// Dashboard stats cache. The dashboard is polled; a short TTL keeps the
// hot path off the database without the numbers going visibly stale.
func (c *Client) SetDashboardStats(value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}

	return c.rdb.Set(ctx, "dashboard:stats", jsonData, ttl).Err()
}

func (c *Client) GetDashboardStats(dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "dashboard:stats").Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateDashboardStats() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "dashboard:stats").Err()
}

// Admin session tokens.
func (c *Client) SetAdminSession(token, username string, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "session:admin:"+token, username, ttl).Err()
}

func (c *Client) GetAdminSession(token string) (string, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:admin:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get admin session: %w", err)
	}
	return val, nil
}

func (c *Client) DeleteAdminSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:admin:"+token).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
