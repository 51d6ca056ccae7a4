package configs

import (
	"context"
	"fmt"

	"github.com/mdayat/prayer-tracker/internal/cache"
	"github.com/redis/go-redis/v9"
)

const memoryCacheBytes = 64 << 20

// NewCache uses Redis when redisURL is set and an in-process cache otherwise.
func NewCache(ctx context.Context, redisURL string) (cache.Cache, error) {
	if redisURL == "" {
		memory, err := cache.NewMemory(memoryCacheBytes)
		if err != nil {
			return nil, err
		}
		return memory, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return cache.NewRedis(client, "prayer-tracker:"), nil
}
