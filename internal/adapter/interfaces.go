// Package adapter implements the outbound HTTP clients of the application:
// the Gemini generative-AI API and the NewsAPI headlines feed.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-board-keeper/models"
)

// AIClient is the generative-AI surface consumed by the chatbot service.
//
// Implementations are expected to be safe for concurrent use. A nil AIClient
// means the AI integration is not configured; the chatbot service degrades to
// its non-AI behaviour in that case.
type AIClient interface {
	// ExtractKeywords asks the model for one to three search keywords from a
	// user message. The returned slice may be empty if the model produced no
	// usable keywords.
	ExtractKeywords(ctx context.Context, message string) ([]string, error)

	// Complete sends a full prompt to the model and returns the generated
	// text together with the reported token usage.
	Complete(ctx context.Context, prompt string) (models.Completion, error)
}

// NewsClient is the headlines surface consumed by the news service.
type NewsClient interface {
	// TopHeadlines fetches the top headlines for a country, optionally
	// filtered by category, limited to pageSize articles.
	TopHeadlines(ctx context.Context, country, category string, pageSize int) (models.Headlines, error)
}
