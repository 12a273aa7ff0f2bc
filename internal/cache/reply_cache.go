package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	chatReplyKeyPrefix = "chatbot:"
	titleKeyPrefix     = "title:"
)

// getString returns the cached value under key or [ErrCacheMiss].
func (c *Cache) getString(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("error getting cache entry: %w", err)
	}
	return value, nil
}

// GetChatReply returns the cached chatbot reply for the exact message text.
func (c *Cache) GetChatReply(ctx context.Context, message string) (string, error) {
	return c.getString(ctx, chatReplyKeyPrefix+message)
}

// SaveChatReply caches the chatbot reply keyed by the exact message text.
func (c *Cache) SaveChatReply(ctx context.Context, message, reply string, ttl time.Duration) error {
	if err := c.client.Set(ctx, chatReplyKeyPrefix+message, reply, ttl).Err(); err != nil {
		return fmt.Errorf("error saving chat reply: %w", err)
	}
	return nil
}

// GetTitleSuggestion returns the cached title for the truncated content.
func (c *Cache) GetTitleSuggestion(ctx context.Context, content string) (string, error) {
	return c.getString(ctx, titleKeyPrefix+content)
}

// SaveTitleSuggestion caches the suggested title keyed by the truncated
// content.
func (c *Cache) SaveTitleSuggestion(ctx context.Context, content, title string, ttl time.Duration) error {
	if err := c.client.Set(ctx, titleKeyPrefix+content, title, ttl).Err(); err != nil {
		return fmt.Errorf("error saving title suggestion: %w", err)
	}
	return nil
}
