package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoptalk-ai/shoptalk/internal/config"
)

// newRedisClient connects to Redis when configured. Returns nil when
// Redis is unconfigured or unreachable; callers treat nil as "no cache".
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, running without cache: %v", cfg.Redis.Addr, err)
		return nil
	}
	return rdb
}
