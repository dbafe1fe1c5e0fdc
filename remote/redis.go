package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// RedisBackend keeps record bodies in one Redis hash, field per record ID.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend connects to the Redis server at redisURL and checks the
// connection.
func NewRedisBackend(ctx context.Context, redisURL, key string) (*RedisBackend, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, fmt.Errorf("redis storage requires a redis url")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisBackendWithClient(client, key), nil
}

// NewRedisBackendWithClient wraps an existing client.
func NewRedisBackendWithClient(client *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = "focusstation:sessions"
	}
	return &RedisBackend{client: client, key: key}
}

// All implements Backend.
func (b *RedisBackend) All(ctx context.Context) (map[string]json.RawMessage, error) {
	fields, err := b.client.HGetAll(ctx, b.key).Result()
	if err != nil {
		return nil, fmt.Errorf("read session hash: %w", err)
	}
	records := make(map[string]json.RawMessage, len(fields))
	for id, body := range fields {
		records[id] = json.RawMessage(body)
	}
	return records, nil
}

// Put implements Backend.
func (b *RedisBackend) Put(ctx context.Context, id string, body json.RawMessage) error {
	if err := b.client.HSet(ctx, b.key, id, string(body)).Err(); err != nil {
		return fmt.Errorf("write session hash: %w", err)
	}
	return nil
}

// Close implements Backend.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
