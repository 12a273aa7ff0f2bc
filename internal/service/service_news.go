package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-board-keeper/internal/adapter"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/models"
)

const (
	defaultNewsCountry  = "kr"
	defaultNewsPageSize = 4
)

// newsService implements NewsService as a thin proxy over the news client.
// The sidebar must never break the page: any upstream problem, including a
// missing API key, falls back to a static article set.
type newsService struct {
	client adapter.NewsClient

	logger *logger.Logger
}

func NewNewsService(client adapter.NewsClient, logger *logger.Logger) NewsService {
	return &newsService{client: client, logger: logger}
}

// TopHeadlines fetches the top headlines, applying the sidebar defaults for
// missing parameters.
func (n *newsService) TopHeadlines(ctx context.Context, country, category string, pageSize int) (models.Headlines, error) {
	log := logger.FromContext(ctx)

	if country == "" {
		country = defaultNewsCountry
	}
	if pageSize < 1 {
		pageSize = defaultNewsPageSize
	}

	headlines, err := n.client.TopHeadlines(ctx, country, category, pageSize)
	if err != nil {
		log.Warn().Err(err).Str("func", "newsService.TopHeadlines").Msg("falling back to placeholder headlines")
		return placeholderHeadlines(pageSize), nil
	}

	return headlines, nil
}

// placeholderHeadlines is the static article set served when the news API is
// unavailable or not configured.
func placeholderHeadlines(pageSize int) models.Headlines {
	now := time.Now().UTC().Format(time.RFC3339)

	articles := []models.Article{
		{
			Title:       "Latest tech trends: advances in AI and machine learning",
			Description: "Artificial intelligence and machine learning keep driving innovation across industries.",
			URL:         "#",
			URLToImage:  "https://via.placeholder.com/400x200?text=AI+News",
			PublishedAt: now,
			Source:      "Tech News",
		},
		{
			Title:       "Cloud computing market keeps surging",
			Description: "The global cloud computing market is growing by more than 20% a year.",
			URL:         "#",
			URLToImage:  "https://via.placeholder.com/400x200?text=Cloud+News",
			PublishedAt: now,
			Source:      "Business Today",
		},
		{
			Title:       "A new paradigm for web development",
			Description: "Frontend frameworks such as React, Vue and Angular continue to evolve.",
			URL:         "#",
			URLToImage:  "https://via.placeholder.com/400x200?text=Web+Dev",
			PublishedAt: now,
			Source:      "Dev Weekly",
		},
		{
			Title:       "Cybersecurity matters more than ever",
			Description: "As digital transformation accelerates, so does the importance of cybersecurity.",
			URL:         "#",
			URLToImage:  "https://via.placeholder.com/400x200?text=Security",
			PublishedAt: now,
			Source:      "Security Daily",
		},
	}

	if pageSize < len(articles) {
		articles = articles[:pageSize]
	}

	return models.Headlines{
		Status:       "ok",
		TotalResults: len(articles),
		Articles:     articles,
	}
}
