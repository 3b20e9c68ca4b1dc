package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the Redis client used for revoked tokens. Returns nil
// when no address is configured; logout then degrades to a client-side
// token drop.
func ConnectRedis(cfg *Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
