package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/models"
	"github.com/go-resty/resty/v2"
)

const newsBaseURL = "https://newsapi.org"

type newsClient struct {
	client *resty.Client
	apiKey string

	logger *logger.Logger
}

// newsHeadlinesResponse mirrors the NewsAPI top-headlines payload, with the
// source flattened to its display name on the way out.
type newsHeadlinesResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// NewNewsClient constructs the NewsAPI implementation of [NewsClient]. The
// API key may be empty; calls then fail with [ErrNotConfigured] and the news
// service serves its static fallback instead.
func NewNewsClient(cfg config.Adapter, log *logger.Logger) NewsClient {
	client := resty.New().
		SetBaseURL(newsBaseURL).
		SetTimeout(cfg.RequestTimeout)

	return &newsClient{client: client, apiKey: cfg.NewsAPIKey, logger: log}
}

// TopHeadlines implements [NewsClient]. It GETs /v2/top-headlines with the
// given filters and flattens the article sources.
func (n *newsClient) TopHeadlines(ctx context.Context, country, category string, pageSize int) (models.Headlines, error) {
	if n.apiKey == "" {
		return models.Headlines{}, ErrNotConfigured
	}

	req := n.client.R().
		SetContext(ctx).
		SetQueryParam("country", country).
		SetQueryParam("pageSize", strconv.Itoa(pageSize)).
		SetQueryParam("apiKey", n.apiKey)
	if category != "" {
		req.SetQueryParam("category", category)
	}

	var result newsHeadlinesResponse
	resp, err := req.SetResult(&result).Get("/v2/top-headlines")
	if err != nil {
		return models.Headlines{}, fmt.Errorf("top headlines request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.Headlines{}, fmt.Errorf("%w: http %d", ErrUpstream, resp.StatusCode())
	}

	headlines := models.Headlines{
		Status:       result.Status,
		TotalResults: result.TotalResults,
		Articles:     make([]models.Article, 0, len(result.Articles)),
	}
	for _, article := range result.Articles {
		headlines.Articles = append(headlines.Articles, models.Article{
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			URLToImage:  article.URLToImage,
			PublishedAt: article.PublishedAt,
			Source:      article.Source.Name,
		})
	}

	return headlines, nil
}
