// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-board-keeper/internal/cache"
	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ─────────────────────────────────────────────
// Mock: adapter.AIClient
// ─────────────────────────────────────────────

type mockAIClient struct {
	extractFn  func(ctx context.Context, message string) ([]string, error)
	completeFn func(ctx context.Context, prompt string) (models.Completion, error)
}

func (m *mockAIClient) ExtractKeywords(ctx context.Context, message string) ([]string, error) {
	if m.extractFn != nil {
		return m.extractFn(ctx, message)
	}
	return nil, nil
}

func (m *mockAIClient) Complete(ctx context.Context, prompt string) (models.Completion, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, prompt)
	}
	return models.Completion{}, nil
}

// ─────────────────────────────────────────────
// Mock: cache.ReplyCache
// ─────────────────────────────────────────────

type mockReplyCache struct {
	getChatFn   func(ctx context.Context, message string) (string, error)
	saveChatFn  func(ctx context.Context, message, reply string, ttl time.Duration) error
	getTitleFn  func(ctx context.Context, content string) (string, error)
	saveTitleFn func(ctx context.Context, content, title string, ttl time.Duration) error
}

func (m *mockReplyCache) GetChatReply(ctx context.Context, message string) (string, error) {
	if m.getChatFn != nil {
		return m.getChatFn(ctx, message)
	}
	return "", cache.ErrCacheMiss
}

func (m *mockReplyCache) SaveChatReply(ctx context.Context, message, reply string, ttl time.Duration) error {
	if m.saveChatFn != nil {
		return m.saveChatFn(ctx, message, reply, ttl)
	}
	return nil
}

func (m *mockReplyCache) GetTitleSuggestion(ctx context.Context, content string) (string, error) {
	if m.getTitleFn != nil {
		return m.getTitleFn(ctx, content)
	}
	return "", cache.ErrCacheMiss
}

func (m *mockReplyCache) SaveTitleSuggestion(ctx context.Context, content, title string, ttl time.Duration) error {
	if m.saveTitleFn != nil {
		return m.saveTitleFn(ctx, content, title, ttl)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: cache.LimitCounter
// ─────────────────────────────────────────────

type mockLimitCounter struct {
	rateFn  func(ctx context.Context, userID string, window time.Duration) (int64, error)
	dailyFn func(ctx context.Context, day string) (int64, error)
}

func (m *mockLimitCounter) IncrementRateLimit(ctx context.Context, userID string, window time.Duration) (int64, error) {
	if m.rateFn != nil {
		return m.rateFn(ctx, userID, window)
	}
	return 1, nil
}

func (m *mockLimitCounter) IncrementDailyLimit(ctx context.Context, day string) (int64, error) {
	if m.dailyFn != nil {
		return m.dailyFn(ctx, day)
	}
	return 1, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testChatbotConfig = config.Chatbot{
	RateLimit:  10,
	RateWindow: time.Minute,
	DailyLimit: 100,
}

type chatbotTestEnv struct {
	ai       *mockAIClient
	posts    *mockPostRepository
	replies  *mockReplyCache
	counters *mockLimitCounter
}

func newTestChatbotService(env chatbotTestEnv) ChatbotService {
	if env.posts == nil {
		env.posts = &mockPostRepository{}
	}
	if env.replies == nil {
		env.replies = &mockReplyCache{}
	}
	if env.counters == nil {
		env.counters = &mockLimitCounter{}
	}

	// a typed-nil *mockAIClient must not reach the interface field: the
	// degraded-mode check compares the interface against nil
	if env.ai == nil {
		return NewChatbotService(nil, env.posts, env.replies, env.counters, testChatbotConfig, logger.Nop())
	}
	return NewChatbotService(env.ai, env.posts, env.replies, env.counters, testChatbotConfig, logger.Nop())
}

func testPosts() []models.Post {
	return []models.Post{
		{ID: bson.NewObjectID(), Title: "Go generics explained", Author: "gopher", Category: "tech", Content: "A long walkthrough of type parameters"},
		{ID: bson.NewObjectID(), Title: "Channels in practice", Author: "rob", Category: "tech", Content: "Pipelines and cancellation"},
	}
}

// ─────────────────────────────────────────────
// naiveKeywords
// ─────────────────────────────────────────────

func TestNaiveKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{name: "lowercases and strips punctuation", message: "Hello, World!", want: []string{"hello", "world"}},
		{name: "drops single-rune words", message: "a Go I like", want: []string{"go", "like"}},
		{name: "caps at three", message: "one two three four five", want: []string{"one", "two", "three"}},
		{name: "empty message", message: "", want: nil},
		{name: "only punctuation", message: "?! ... --", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, naiveKeywords(tt.message))
		})
	}
}

// ─────────────────────────────────────────────
// Chat
// ─────────────────────────────────────────────

func TestChatbotService_Chat_DegradedWithoutPosts(t *testing.T) {
	svc := newTestChatbotService(chatbotTestEnv{})

	response, err := svc.Chat(context.Background(), "user-1", "anything at all")

	require.NoError(t, err)
	assert.Equal(t, "Sorry, the AI service is not configured.", response.Reply)
	assert.Zero(t, response.TokensUsed)
	assert.False(t, response.Cached)
	assert.Empty(t, response.RelatedPosts)
}

func TestChatbotService_Chat_DegradedListsFoundPosts(t *testing.T) {
	posts := testPosts()
	env := chatbotTestEnv{
		posts: &mockPostRepository{
			searchFn: func(_ context.Context, keywords []string, limit int) ([]models.Post, error) {
				assert.Equal(t, []string{"go", "generics"}, keywords)
				assert.Equal(t, relatedPostsLimit, limit)
				return posts, nil
			},
		},
	}
	svc := newTestChatbotService(env)

	response, err := svc.Chat(context.Background(), "user-1", "Go generics?")

	require.NoError(t, err)
	assert.Contains(t, response.Reply, "Go generics explained")
	assert.Contains(t, response.Reply, "(by gopher)")
	require.Len(t, response.RelatedPosts, 2)
	assert.Equal(t, posts[0].ID.Hex(), response.RelatedPosts[0].ID)
}

func TestChatbotService_Chat_CacheHitSkipsCompletion(t *testing.T) {
	env := chatbotTestEnv{
		ai: &mockAIClient{
			completeFn: func(_ context.Context, _ string) (models.Completion, error) {
				t.Fatal("completion must not be reached on a cache hit")
				return models.Completion{}, nil
			},
		},
		replies: &mockReplyCache{
			getChatFn: func(_ context.Context, message string) (string, error) {
				assert.Equal(t, "what is a goroutine?", message)
				return "a cached explanation", nil
			},
		},
	}
	svc := newTestChatbotService(env)

	response, err := svc.Chat(context.Background(), "user-1", "what is a goroutine?")

	require.NoError(t, err)
	assert.True(t, response.Cached)
	assert.Equal(t, "a cached explanation", response.Reply)
	assert.Zero(t, response.TokensUsed)
}

func TestChatbotService_Chat_CompletionSuccessIsCached(t *testing.T) {
	posts := testPosts()

	var cachedReply string
	var cachedTTL time.Duration
	env := chatbotTestEnv{
		ai: &mockAIClient{
			extractFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"goroutine"}, nil
			},
			completeFn: func(_ context.Context, prompt string) (models.Completion, error) {
				// the prompt embeds the question and post context
				assert.Contains(t, prompt, "what is a goroutine?")
				assert.Contains(t, prompt, "Go generics explained")
				return models.Completion{Text: "a fresh explanation", TokensUsed: 42}, nil
			},
		},
		posts: &mockPostRepository{
			searchFn: func(_ context.Context, _ []string, _ int) ([]models.Post, error) {
				return posts, nil
			},
		},
		replies: &mockReplyCache{
			saveChatFn: func(_ context.Context, _ string, reply string, ttl time.Duration) error {
				cachedReply, cachedTTL = reply, ttl
				return nil
			},
		},
	}
	svc := newTestChatbotService(env)

	response, err := svc.Chat(context.Background(), "user-1", "what is a goroutine?")

	require.NoError(t, err)
	assert.Equal(t, "a fresh explanation", response.Reply)
	assert.Equal(t, 42, response.TokensUsed)
	assert.False(t, response.Cached)
	assert.Equal(t, "a fresh explanation", cachedReply)
	assert.Equal(t, replyCacheTTL, cachedTTL)
}

func TestChatbotService_Chat_CompletionFailure(t *testing.T) {
	env := chatbotTestEnv{
		ai: &mockAIClient{
			completeFn: func(_ context.Context, _ string) (models.Completion, error) {
				return models.Completion{}, errors.New("upstream down")
			},
		},
	}
	svc := newTestChatbotService(env)

	_, err := svc.Chat(context.Background(), "user-1", "hello")

	assert.ErrorIs(t, err, ErrChatbotFailure)
}

func TestChatbotService_Chat_KeywordFailureDegradesGracefully(t *testing.T) {
	env := chatbotTestEnv{
		ai: &mockAIClient{
			extractFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, errors.New("extraction broke")
			},
			completeFn: func(_ context.Context, _ string) (models.Completion, error) {
				return models.Completion{Text: "answer without context"}, nil
			},
		},
		posts: &mockPostRepository{
			searchFn: func(_ context.Context, keywords []string, _ int) ([]models.Post, error) {
				assert.Empty(t, keywords)
				return nil, nil
			},
		},
	}
	svc := newTestChatbotService(env)

	response, err := svc.Chat(context.Background(), "user-1", "hello")

	require.NoError(t, err)
	assert.Equal(t, "answer without context", response.Reply)
}

// ─────────────────────────────────────────────
// SuggestTitle
// ─────────────────────────────────────────────

func TestChatbotService_SuggestTitle_Degraded(t *testing.T) {
	svc := newTestChatbotService(chatbotTestEnv{})

	title, err := svc.SuggestTitle(context.Background(), "some post content")

	require.NoError(t, err)
	assert.Equal(t, "Enter a title", title)
}

func TestChatbotService_SuggestTitle_TruncatesCacheKey(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "abcdefghij" // 500 chars total
	}

	var cacheKey string
	env := chatbotTestEnv{
		ai: &mockAIClient{
			completeFn: func(_ context.Context, _ string) (models.Completion, error) {
				return models.Completion{Text: "A title"}, nil
			},
		},
		replies: &mockReplyCache{
			getTitleFn: func(_ context.Context, content string) (string, error) {
				cacheKey = content
				return "", cache.ErrCacheMiss
			},
		},
	}
	svc := newTestChatbotService(env)

	title, err := svc.SuggestTitle(context.Background(), long)

	require.NoError(t, err)
	assert.Equal(t, "A title", title)
	assert.Len(t, cacheKey, titleContentLimit)
}

func TestChatbotService_SuggestTitle_CacheHit(t *testing.T) {
	env := chatbotTestEnv{
		ai: &mockAIClient{
			completeFn: func(_ context.Context, _ string) (models.Completion, error) {
				t.Fatal("completion must not be reached on a cache hit")
				return models.Completion{}, nil
			},
		},
		replies: &mockReplyCache{
			getTitleFn: func(_ context.Context, _ string) (string, error) {
				return "cached title", nil
			},
		},
	}
	svc := newTestChatbotService(env)

	title, err := svc.SuggestTitle(context.Background(), "content")

	require.NoError(t, err)
	assert.Equal(t, "cached title", title)
}

func TestChatbotService_SuggestTitle_UpstreamFailureIsSwallowed(t *testing.T) {
	env := chatbotTestEnv{
		ai: &mockAIClient{
			completeFn: func(_ context.Context, _ string) (models.Completion, error) {
				return models.Completion{}, errors.New("upstream down")
			},
		},
	}
	svc := newTestChatbotService(env)

	title, err := svc.SuggestTitle(context.Background(), "content")

	require.NoError(t, err)
	assert.Equal(t, "Unable to suggest a title", title)
}

// ─────────────────────────────────────────────
// Guards
// ─────────────────────────────────────────────

func TestChatbotService_AllowUser_BoundaryAtLimit(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "first request", count: 1, want: true},
		{name: "at the limit", count: 10, want: true},
		{name: "just over", count: 11, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := chatbotTestEnv{
				counters: &mockLimitCounter{
					rateFn: func(_ context.Context, userID string, window time.Duration) (int64, error) {
						assert.Equal(t, "user-1", userID)
						assert.Equal(t, testChatbotConfig.RateWindow, window)
						return tt.count, nil
					},
				},
			}
			svc := newTestChatbotService(env)

			allowed, err := svc.AllowUser(context.Background(), "user-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestChatbotService_AllowDaily_BoundaryAtLimit(t *testing.T) {
	var gotDay string
	env := chatbotTestEnv{
		counters: &mockLimitCounter{
			dailyFn: func(_ context.Context, day string) (int64, error) {
				gotDay = day
				return 101, nil
			},
		},
	}
	svc := newTestChatbotService(env)

	allowed, err := svc.AllowDaily(context.Background())

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), gotDay)
}

func TestChatbotService_AllowUser_CounterError(t *testing.T) {
	env := chatbotTestEnv{
		counters: &mockLimitCounter{
			rateFn: func(_ context.Context, _ string, _ time.Duration) (int64, error) {
				return 0, errCache
			},
		},
	}
	svc := newTestChatbotService(env)

	_, err := svc.AllowUser(context.Background(), "user-1")

	assert.ErrorIs(t, err, errCache)
}
