package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
	"github.com/shoptalk-ai/shoptalk/internal/provision"
)

// CachedBotStore decorates a BotStore with a Redis read cache for bot
// configurations, which are loaded on every conversation turn. Caching
// lives here, at the persistence layer; the prompt compiler stays pure.
//
// A nil Redis client disables caching entirely, so a missing or
// unreachable Redis never changes behavior, only latency.
type CachedBotStore struct {
	inner BotStoreIface
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedBotStore wraps inner with a TTL cache. rdb may be nil.
func NewCachedBotStore(inner BotStoreIface, rdb *redis.Client, ttl time.Duration) *CachedBotStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedBotStore{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(botID string) string {
	return "botcfg:" + botID
}

// GetBotConfig serves from cache when possible, falling back to the
// underlying store on any miss or cache error.
func (c *CachedBotStore) GetBotConfig(ctx context.Context, botID string) (*bot.Config, error) {
	if c.rdb != nil {
		raw, err := c.rdb.Get(ctx, cacheKey(botID)).Bytes()
		if err == nil {
			var cfg bot.Config
			if jerr := json.Unmarshal(raw, &cfg); jerr == nil {
				return &cfg, nil
			}
			// Corrupt cache entry; drop it and fall through.
			c.rdb.Del(ctx, cacheKey(botID))
		}
	}

	cfg, err := c.inner.GetBotConfig(ctx, botID)
	if err != nil {
		return nil, err
	}
	if c.rdb != nil {
		if raw, jerr := json.Marshal(cfg); jerr == nil {
			if serr := c.rdb.Set(ctx, cacheKey(botID), raw, c.ttl).Err(); serr != nil {
				log.Printf("bot config cache set %s: %v", botID, serr)
			}
		}
	}
	return cfg, nil
}

// SaveBundle writes through and invalidates the cached config.
func (c *CachedBotStore) SaveBundle(ctx context.Context, b *provision.Bundle) error {
	if err := c.inner.SaveBundle(ctx, b); err != nil {
		return err
	}
	c.Invalidate(ctx, b.Config.BotID)
	return nil
}

// ListByClient always reads through; lists are not cached.
func (c *CachedBotStore) ListByClient(ctx context.Context, clientID string) ([]*bot.Config, error) {
	return c.inner.ListByClient(ctx, clientID)
}

// Invalidate drops the cached config for botID, for admin edits made
// outside SaveBundle.
func (c *CachedBotStore) Invalidate(ctx context.Context, botID string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKey(botID)).Err(); err != nil {
		log.Printf("bot config cache invalidate %s: %v", botID, err)
	}
}
