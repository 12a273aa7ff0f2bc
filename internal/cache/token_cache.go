package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	blacklistKeyPrefix    = "blacklist:"
)

// SaveRefreshToken stores the user's current refresh token under
// "refresh_token:<userID>" with the given TTL.
//
// A user has at most one live refresh token: a new login overwrites the
// previous record, which invalidates any refresh token issued earlier.
func (c *Cache) SaveRefreshToken(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
	key := refreshTokenKeyPrefix + userID
	if err := c.client.Set(ctx, key, refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("error saving refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken returns the refresh token currently stored for the user,
// or [ErrCacheMiss] if none is stored or it has expired.
func (c *Cache) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	key := refreshTokenKeyPrefix + userID
	token, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("error getting refresh token: %w", err)
	}
	return token, nil
}

// DeleteRefreshToken removes the user's refresh token record. Deleting an
// absent record is not an error.
func (c *Cache) DeleteRefreshToken(ctx context.Context, userID string) error {
	key := refreshTokenKeyPrefix + userID
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// AddToBlacklist marks an access token as revoked under "blacklist:<token>".
//
// The TTL is the configured access lifetime rather than the token's actual
// remaining validity; the entry may therefore outlive the token by up to its
// age at logout time.
func (c *Cache) AddToBlacklist(ctx context.Context, accessToken string, ttl time.Duration) error {
	key := blacklistKeyPrefix + accessToken
	if err := c.client.Set(ctx, key, "true", ttl).Err(); err != nil {
		return fmt.Errorf("error adding token to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted reports whether the access token has been revoked.
func (c *Cache) IsBlacklisted(ctx context.Context, accessToken string) (bool, error) {
	key := blacklistKeyPrefix + accessToken
	err := c.client.Get(ctx, key).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("error checking blacklist: %w", err)
	}
	return true, nil
}
