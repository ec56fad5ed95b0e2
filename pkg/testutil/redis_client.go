package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/wyrmsheet/backend/pkg/xredis"
)

// MockRedisClient implements xredis.Client with overridable funcs. The zero
// value behaves like an always-empty cache.
type MockRedisClient struct {
	ExistFunc func(ctx context.Context, key string) (bool, error)
	GetFunc   func(ctx context.Context, key string) (string, error)
	SetFunc   func(ctx context.Context, key, value string) error
	DelFunc   func(ctx context.Context, key string) error
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	return false, nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	return "", redis.Nil
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}

	return nil
}

func (m *MockRedisClient) Del(ctx context.Context, key string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key)
	}

	return nil
}

type miniredisClient struct {
	redisClient *redis.Client
}

// NewMiniredisClient returns an xredis.Client backed by an in-process redis
// server that is torn down with the test.
func NewMiniredisClient(t *testing.T) xredis.Client {
	server := miniredis.RunT(t)
	return &miniredisClient{
		redisClient: redis.NewClient(&redis.Options{Addr: server.Addr()}),
	}
}

func (c *miniredisClient) Exist(ctx context.Context, key string) (bool, error) {
	n, err := c.redisClient.Exists(ctx, key).Uint64()
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

func (c *miniredisClient) Get(ctx context.Context, key string) (string, error) {
	return c.redisClient.Get(ctx, key).Result()
}

func (c *miniredisClient) Set(ctx context.Context, key, value string) error {
	return c.redisClient.Set(ctx, key, value, time.Duration(-1)).Err()
}

func (c *miniredisClient) Del(ctx context.Context, key string) error {
	return c.redisClient.Del(ctx, key).Err()
}
