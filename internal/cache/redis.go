// Package cache implements the Redis-backed token and counter bookkeeping:
// per-user refresh tokens, the access-token blacklist, the chatbot rate and
// daily counters, and the chatbot reply caches.
//
// Key namespaces:
//
//	refresh_token:<userID>     current refresh token, TTL = refresh lifetime
//	blacklist:<token>          revoked access token, TTL = access lifetime
//	ratelimit:chatbot:<userID> fixed-window request counter
//	daily_limit:<YYYY-MM-DD>   global daily request counter
//	chatbot:<message>          cached chat reply, TTL 1h
//	title:<content>            cached title suggestion, TTL 1h
package cache

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/go-redis/redis/v8"
)

// Cache wraps the Redis client shared by all cache concerns.
type Cache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewConnectRedis establishes the Redis connection and verifies it with a
// ping bounded by the configured dial timeout.
func NewConnectRedis(cfg config.Cache, log *logger.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting cache (ping)")
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Str("addr", cfg.Addr).Msg("connected to cache successfully")

	return &Cache{client: client, logger: log}, nil
}

// Close releases the underlying Redis client.
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
