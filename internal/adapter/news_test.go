package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNewsClient(t *testing.T, apiKey string, handler http.HandlerFunc) *newsClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &newsClient{
		client: resty.New().SetBaseURL(srv.URL).SetTimeout(time.Second),
		apiKey: apiKey,
		logger: logger.Nop(),
	}
}

func TestNewsClient_TopHeadlines(t *testing.T) {
	client := newTestNewsClient(t, "news-key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "kr", query.Get("country"))
		assert.Equal(t, "technology", query.Get("category"))
		assert.Equal(t, "4", query.Get("pageSize"))
		assert.Equal(t, "news-key", query.Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"status": "ok",
			"totalResults": 1,
			"articles": [{
				"title": "Go 2 announced",
				"description": "Generics were only the beginning.",
				"url": "https://example.com/go2",
				"urlToImage": "https://example.com/go2.png",
				"publishedAt": "2026-08-30T10:00:00Z",
				"source": {"id": "wire", "name": "Wire"}
			}]
		}`))
		require.NoError(t, err)
	})

	headlines, err := client.TopHeadlines(context.Background(), "kr", "technology", 4)

	require.NoError(t, err)
	assert.Equal(t, "ok", headlines.Status)
	assert.Equal(t, 1, headlines.TotalResults)
	require.Len(t, headlines.Articles, 1)

	article := headlines.Articles[0]
	assert.Equal(t, "Go 2 announced", article.Title)
	// nested source object is flattened to its display name
	assert.Equal(t, "Wire", article.Source)
}

func TestNewsClient_TopHeadlines_OmitsEmptyCategory(t *testing.T) {
	client := newTestNewsClient(t, "news-key", func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["category"]
		assert.False(t, present, "empty category must not be sent")
		_, err := w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
		require.NoError(t, err)
	})

	_, err := client.TopHeadlines(context.Background(), "kr", "", 4)

	require.NoError(t, err)
}

func TestNewsClient_TopHeadlines_WithoutAPIKey(t *testing.T) {
	client := newTestNewsClient(t, "", func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request must be issued without an api key")
	})

	_, err := client.TopHeadlines(context.Background(), "kr", "", 4)

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewsClient_TopHeadlines_UpstreamError(t *testing.T) {
	client := newTestNewsClient(t, "news-key", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	})

	_, err := client.TopHeadlines(context.Background(), "kr", "", 4)

	assert.ErrorIs(t, err, ErrUpstream)
}
