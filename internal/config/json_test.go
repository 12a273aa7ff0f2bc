package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"auth": {
			"access_sign_key": "access_secret",
			"refresh_sign_key": "refresh_secret",
			"token_issuer": "test_issuer",
			"access_token_duration": "15m",
			"refresh_token_duration": "168h"
		},
		"storage": {
			"db": {"dsn": "mongodb://localhost:27017", "database": "board_test"}
		},
		"cache": {"addr": "localhost:6379", "db": 2, "dial_timeout": "5s"},
		"adapter": {
			"gemini_api_key": "gemini_key",
			"gemini_model": "gemini-pro",
			"news_api_key": "news_key",
			"request_timeout": "15s"
		},
		"chatbot": {"rate_limit": 10, "rate_window": "1m", "daily_limit": 100},
		"server": {"http_address": ":8080", "request_timeout": "30s"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)

	assert.Equal(t, "access_secret", cfg.Auth.AccessSignKey)
	assert.Equal(t, "refresh_secret", cfg.Auth.RefreshSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenDuration)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
	assert.Equal(t, "board_test", cfg.Storage.DB.Database)

	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, 2, cfg.Cache.DB)
	assert.Equal(t, 5*time.Second, cfg.Cache.DialTimeout)

	assert.Equal(t, "gemini_key", cfg.Adapter.GeminiAPIKey)
	assert.Equal(t, "news_key", cfg.Adapter.NewsAPIKey)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 10, cfg.Chatbot.RateLimit)
	assert.Equal(t, time.Minute, cfg.Chatbot.RateWindow)
	assert.Equal(t, 100, cfg.Chatbot.DailyLimit)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_PartialFields(t *testing.T) {
	path := writeConfigFile(t, `{"server": {"http_address": ":9090"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Equal(t, Auth{}, cfg.Auth)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := parseJSON(path)

	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeConfigFile(t, `{"server": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")
}

func TestParseJSON_NumericDurationRejected(t *testing.T) {
	// durations are string-encoded ("30s"), bare numbers are a config mistake
	path := writeConfigFile(t, `{"server": {"request_timeout": 30}}`)

	_, err := parseJSON(path)

	assert.Error(t, err)
}
