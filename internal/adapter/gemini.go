// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/models"
	"github.com/go-resty/resty/v2"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

const keywordPrompt = "Extract one to three keywords from the user's question " +
	"to use for searching board posts. Return only the keywords, separated by commas.\n\nQuestion: "

type geminiClient struct {
	client *resty.Client
	apiKey string
	model  string

	logger *logger.Logger
}

// geminiRequest is the generateContent request payload.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the subset of the generateContent response the client
// reads: the first candidate's text and the total token count.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		TotalTokenCount int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// NewGeminiClient constructs the Gemini implementation of [AIClient].
// Returns [ErrNotConfigured] if the API key is empty.
func NewGeminiClient(cfg config.Adapter, log *logger.Logger) (AIClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, ErrNotConfigured
	}

	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(cfg.RequestTimeout)

	log.Info().Str("func", "NewGeminiClient").Str("model", cfg.GeminiModel).Msg("gemini client initialized")

	return &geminiClient{
		client: client,
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
		logger: log,
	}, nil
}

// generateContent calls POST /v1beta/models/<model>:generateContent with a
// single-part prompt and returns the decoded response.
func (g *geminiClient) generateContent(ctx context.Context, prompt string) (geminiResponse, error) {
	var result geminiResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return geminiResponse{}, fmt.Errorf("generate content request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return geminiResponse{}, fmt.Errorf("%w: http %d", ErrUpstream, resp.StatusCode())
	}

	return result, nil
}

// text returns the first candidate's concatenated part texts.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}

// ExtractKeywords implements [AIClient]. It asks the model for comma-separated
// keywords and splits the reply.
func (g *geminiClient) ExtractKeywords(ctx context.Context, message string) ([]string, error) {
	result, err := g.generateContent(ctx, keywordPrompt+message)
	if err != nil {
		return nil, err
	}

	var keywords []string
	for _, keyword := range strings.Split(result.text(), ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}

	g.logger.Debug().Str("func", "geminiClient.ExtractKeywords").Strs("keywords", keywords).Msg("keywords extracted")
	return keywords, nil
}

// Complete implements [AIClient].
func (g *geminiClient) Complete(ctx context.Context, prompt string) (models.Completion, error) {
	result, err := g.generateContent(ctx, prompt)
	if err != nil {
		return models.Completion{}, err
	}

	return models.Completion{
		Text:       result.text(),
		TokensUsed: result.UsageMetadata.TotalTokenCount,
	}, nil
}
