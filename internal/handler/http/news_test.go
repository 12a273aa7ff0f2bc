package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-board-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_TopHeadlines_IsPublic(t *testing.T) {
	news := &mockNewsService{
		topHeadlinesFn: func(_ context.Context, country, category string, pageSize int) (models.Headlines, error) {
			assert.Equal(t, "us", country)
			assert.Equal(t, "technology", category)
			assert.Equal(t, 6, pageSize)
			return models.Headlines{
				Status:       "ok",
				TotalResults: 1,
				Articles:     []models.Article{{Title: "Go 2 announced", Source: "Wire"}},
			}, nil
		},
	}
	router := newTestHandler(t, testServices{news: news}).Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet,
		"/news/top-headlines?country=us&category=technology&pageSize=6", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var headlines models.Headlines
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&headlines))
	assert.Equal(t, "ok", headlines.Status)
	require.Len(t, headlines.Articles, 1)
	assert.Equal(t, "Go 2 announced", headlines.Articles[0].Title)
}

func TestHandler_TopHeadlines_EmptyQueryPassesZeroValues(t *testing.T) {
	var gotCountry string
	var gotPageSize int
	news := &mockNewsService{
		topHeadlinesFn: func(_ context.Context, country, _ string, pageSize int) (models.Headlines, error) {
			gotCountry, gotPageSize = country, pageSize
			return models.Headlines{Status: "ok"}, nil
		},
	}
	router := newTestHandler(t, testServices{news: news}).Init()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/news/top-headlines", nil))

	// defaulting happens in the service layer, the handler passes zero values
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, gotCountry)
	assert.Zero(t, gotPageSize)
}
