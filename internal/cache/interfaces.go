package cache

import (
	"context"
	"time"
)

// TokenCache is the token-lifecycle surface consumed by the auth service:
// single refresh token per user and the access-token blacklist.
type TokenCache interface {
	SaveRefreshToken(ctx context.Context, userID, refreshToken string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userID string) error

	AddToBlacklist(ctx context.Context, accessToken string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, accessToken string) (bool, error)
}

// LimitCounter is the counter surface consumed by the chatbot guards.
// Both methods return the counter value after the increment.
type LimitCounter interface {
	IncrementRateLimit(ctx context.Context, userID string, window time.Duration) (int64, error)
	IncrementDailyLimit(ctx context.Context, day string) (int64, error)
}

// ReplyCache is the cache-aside surface consumed by the chatbot service.
type ReplyCache interface {
	GetChatReply(ctx context.Context, message string) (string, error)
	SaveChatReply(ctx context.Context, message, reply string, ttl time.Duration) error

	GetTitleSuggestion(ctx context.Context, content string) (string, error)
	SaveTitleSuggestion(ctx context.Context, content, title string, ttl time.Duration) error
}
