// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-board-keeper/internal/adapter"
	"github.com/MKhiriev/go-board-keeper/internal/cache"
	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/store"
	"github.com/MKhiriev/go-board-keeper/models"
)

const (
	// relatedPostsLimit caps how many board posts are searched for and fed
	// into the model as context.
	relatedPostsLimit = 5

	// postSnippetLength is how much of a related post's content goes into
	// the prompt.
	postSnippetLength = 100

	// titleContentLimit is how much of the post content is considered when
	// suggesting a title. Also the cache key for suggestions.
	titleContentLimit = 200

	// naiveKeywordLimit caps the fallback keyword extraction.
	naiveKeywordLimit = 3

	replyCacheTTL = time.Hour
)

const chatSystemPrompt = "You are a friendly board assistant. Answer the user's question, " +
	"and if related posts are provided, use their information in your answer. " +
	"When you mention a post, include its title and author."

const titlePrompt = "Read the post content and suggest a single appropriate title. " +
	"Keep it under 20 characters.\n\nContent: "

// chatbotService implements ChatbotService.
//
// The AI client may be nil, in which case the service runs in a degraded
// mode: keywords are extracted with a naive tokenizer, related posts are
// still searched, and the reply only lists what was found.
type chatbotService struct {
	ai             adapter.AIClient
	postRepository store.PostRepository
	replies        cache.ReplyCache
	counters       cache.LimitCounter

	cfg config.Chatbot

	logger *logger.Logger
}

func NewChatbotService(ai adapter.AIClient, postRepository store.PostRepository, replies cache.ReplyCache, counters cache.LimitCounter, cfg config.Chatbot, logger *logger.Logger) ChatbotService {
	return &chatbotService{
		ai:             ai,
		postRepository: postRepository,
		replies:        replies,
		counters:       counters,
		cfg:            cfg,
		logger:         logger,
	}
}

// Chat answers a user message, enriched with related board posts.
//
// The flow is: extract keywords, search posts, then either serve a cached
// reply, a degraded reply (no AI configured), or a fresh model completion
// that is cached for an hour. Keyword and search failures degrade to an
// answer without board context rather than failing the request; only the
// completion call itself is fatal (wrapped in ErrChatbotFailure).
func (c *chatbotService) Chat(ctx context.Context, userID, message string) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	keywords := c.extractKeywords(ctx, message)
	relatedPosts := c.searchRelatedPosts(ctx, keywords)

	if c.ai == nil {
		return models.ChatResponse{
			Reply:        degradedReply(keywords, relatedPosts),
			RelatedPosts: toRelatedPosts(relatedPosts),
		}, nil
	}

	if cached, err := c.replies.GetChatReply(ctx, message); err == nil {
		return models.ChatResponse{
			Reply:        cached,
			Cached:       true,
			RelatedPosts: toRelatedPosts(relatedPosts),
		}, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "chatbotService.Chat").Msg("reply cache lookup failed")
	}

	completion, err := c.ai.Complete(ctx, buildChatPrompt(message, relatedPosts))
	if err != nil {
		log.Err(err).Str("func", "chatbotService.Chat").Msg("completion request failed")
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrChatbotFailure, err)
	}

	reply := completion.Text
	if reply == "" {
		reply = "Unable to generate a response."
	}

	if err = c.replies.SaveChatReply(ctx, message, reply, replyCacheTTL); err != nil {
		log.Warn().Err(err).Str("func", "chatbotService.Chat").Msg("reply caching failed")
	}
	log.Info().Int("tokensUsed", completion.TokensUsed).Msg("chat reply generated")

	return models.ChatResponse{
		Reply:        reply,
		TokensUsed:   completion.TokensUsed,
		RelatedPosts: toRelatedPosts(relatedPosts),
	}, nil
}

// SuggestTitle proposes a title for the given post content.
//
// Only the first 200 characters of the content are considered; they also key
// the suggestion cache. Upstream failures are swallowed: the user gets a
// placeholder and writes the title by hand.
func (c *chatbotService) SuggestTitle(ctx context.Context, content string) (string, error) {
	log := logger.FromContext(ctx)

	if c.ai == nil {
		return "Enter a title", nil
	}

	truncated := truncateRunes(content, titleContentLimit)

	if cached, err := c.replies.GetTitleSuggestion(ctx, truncated); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "chatbotService.SuggestTitle").Msg("title cache lookup failed")
	}

	completion, err := c.ai.Complete(ctx, titlePrompt+truncated)
	if err != nil {
		log.Err(err).Str("func", "chatbotService.SuggestTitle").Msg("title suggestion failed")
		return "Unable to suggest a title", nil
	}

	title := completion.Text
	if title == "" {
		title = "Untitled"
	}

	if err = c.replies.SaveTitleSuggestion(ctx, truncated, title, replyCacheTTL); err != nil {
		log.Warn().Err(err).Str("func", "chatbotService.SuggestTitle").Msg("title caching failed")
	}

	return title, nil
}

// AllowUser implements the per-user fixed-window guard. The request consumes
// one slot whether or not it is allowed; a request over the limit is
// rejected but still counted.
func (c *chatbotService) AllowUser(ctx context.Context, userID string) (bool, error) {
	count, err := c.counters.IncrementRateLimit(ctx, userID, c.cfg.RateWindow)
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}

	return count <= int64(c.cfg.RateLimit), nil
}

// AllowDaily implements the global per-day guard, keyed by the current UTC
// calendar date.
func (c *chatbotService) AllowDaily(ctx context.Context) (bool, error) {
	day := time.Now().UTC().Format("2006-01-02")

	count, err := c.counters.IncrementDailyLimit(ctx, day)
	if err != nil {
		return false, fmt.Errorf("daily limit check failed: %w", err)
	}

	return count <= int64(c.cfg.DailyLimit), nil
}

// extractKeywords asks the AI for search keywords, falling back to the naive
// tokenizer when the AI is absent or fails.
func (c *chatbotService) extractKeywords(ctx context.Context, message string) []string {
	log := logger.FromContext(ctx)

	if c.ai == nil {
		return naiveKeywords(message)
	}

	keywords, err := c.ai.ExtractKeywords(ctx, message)
	if err != nil {
		log.Warn().Err(err).Str("func", "chatbotService.extractKeywords").Msg("keyword extraction failed")
		return nil
	}

	return keywords
}

// searchRelatedPosts finds up to relatedPostsLimit posts matching any of the
// keywords. Search failures degrade to no context.
func (c *chatbotService) searchRelatedPosts(ctx context.Context, keywords []string) []models.Post {
	log := logger.FromContext(ctx)

	posts, err := c.postRepository.SearchByKeywords(ctx, keywords, relatedPostsLimit)
	if err != nil {
		log.Warn().Err(err).Str("func", "chatbotService.searchRelatedPosts").Msg("post search failed")
		return nil
	}
	log.Debug().Strs("keywords", keywords).Int("found", len(posts)).Msg("related posts searched")

	return posts
}

// naiveKeywords tokenizes the message without AI help: lowercase, strip
// punctuation, keep words longer than one rune, at most three of them.
func naiveKeywords(message string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, message)

	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) > 1 {
			keywords = append(keywords, word)
		}
		if len(keywords) == naiveKeywordLimit {
			break
		}
	}

	return keywords
}

// buildChatPrompt assembles the full model prompt: system instructions, the
// user question, and snippets of the related posts.
func buildChatPrompt(message string, relatedPosts []models.Post) string {
	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	b.WriteString("\n\nUser question: ")
	b.WriteString(message)

	if len(relatedPosts) > 0 {
		b.WriteString("\n\nRelated posts found on our board:")
		for i, post := range relatedPosts {
			b.WriteString(fmt.Sprintf("\n[Post %d] Title: %s, Author: %s, Content: %s...",
				i+1, post.Title, post.Author, truncateRunes(post.Content, postSnippetLength)))
		}
	}

	return b.String()
}

// degradedReply is the answer served when no AI client is configured.
func degradedReply(keywords []string, relatedPosts []models.Post) string {
	if len(relatedPosts) == 0 {
		return "Sorry, the AI service is not configured."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d posts related to %q:\n\n", len(relatedPosts), strings.Join(keywords, ", "))
	for i, post := range relatedPosts {
		fmt.Fprintf(&b, "%d. %s (by %s)\n", i+1, post.Title, post.Author)
	}

	return b.String()
}

func toRelatedPosts(posts []models.Post) []models.RelatedPost {
	related := make([]models.RelatedPost, 0, len(posts))
	for _, post := range posts {
		related = append(related, models.RelatedPost{
			ID:       post.ID.Hex(),
			Title:    post.Title,
			Author:   post.Author,
			Category: post.Category,
		})
	}
	return related
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
