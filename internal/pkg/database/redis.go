package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/fleetlocation/internal/pkg/models"
)

// RedisClient wraps the go-redis client shared by the process
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Get returns the value at key; a missing key yields redis.Nil
func (r *RedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	return r.Client.Get(ctx, key).Bytes()
}

// SMembers returns every member of the set at key
func (r *RedisClient) SMembers(ctx context.Context, key string) ([]string, error) {
	return r.Client.SMembers(ctx, key).Result()
}

// TxPipelined runs fn inside MULTI/EXEC
func (r *RedisClient) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) error {
	_, err := r.Client.TxPipelined(ctx, fn)
	return err
}

// Ping checks the connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
