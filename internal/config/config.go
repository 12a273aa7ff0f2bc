// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-board-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token secrets, lifetimes and the issuer name.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the document database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache holds the Redis connection settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds configuration for the outbound AI and news API clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Chatbot holds the request limits that gate the chat endpoint.
	Chatbot Chatbot `envPrefix:"CHATBOT_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the token-lifecycle configuration.
type Auth struct {
	// AccessSignKey is the secret used to sign and verify access tokens.
	// Must be kept confidential.
	// Env: AUTH_ACCESS_SIGN_KEY
	AccessSignKey string `env:"ACCESS_SIGN_KEY"`

	// RefreshSignKey is the secret used to sign and verify refresh tokens.
	// Distinct from AccessSignKey so that one class of token can never be
	// presented as the other.
	// Env: AUTH_REFRESH_SIGN_KEY
	RefreshSignKey string `env:"REFRESH_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the access token lifetime (default 15m).
	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the refresh token lifetime (default 168h).
	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the document database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the MongoDB backend.
type DB struct {
	// DSN is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Database is the database name holding the users, posts and comments
	// collections.
	// Env: STORAGE_DB_DATABASE_NAME
	Database string `env:"DATABASE_NAME"`
}

// Cache holds connection settings for the Redis backend.
type Cache struct {
	// Addr is the Redis address in "host:port" format.
	// Env: CACHE_ADDR
	Addr string `env:"ADDR"`

	// DB is the Redis logical database number.
	// Env: CACHE_DB
	DB int `env:"DB"`

	// DialTimeout bounds the initial connection probe.
	// Env: CACHE_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`
}

// Adapter holds configuration for the outbound API clients.
type Adapter struct {
	// GeminiAPIKey enables the generative-AI client when non-empty.
	// Placeholder values ("undefined", "your-gemini-api-key-here") are
	// treated as absent.
	// Env: ADAPTER_GEMINI_API_KEY
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// GeminiModel is the completion model name (default "gemini-pro").
	// Env: ADAPTER_GEMINI_MODEL
	GeminiModel string `env:"GEMINI_MODEL"`

	// NewsAPIKey enables the news client when non-empty.
	// Env: ADAPTER_NEWS_API_KEY
	NewsAPIKey string `env:"NEWS_API_KEY"`

	// RequestTimeout bounds every outbound API call (default 15s).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Chatbot holds the request limits gating the chat endpoint.
type Chatbot struct {
	// RateLimit is the per-user request cap within RateWindow (default 10).
	// Env: CHATBOT_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// RateWindow is the fixed rate-limit window (default 60s).
	// Env: CHATBOT_RATE_WINDOW
	RateWindow time.Duration `env:"RATE_WINDOW"`

	// DailyLimit is the global cap of chat requests per calendar day
	// (default 100).
	// Env: CHATBOT_DAILY_LIMIT
	DailyLimit int `env:"DAILY_LIMIT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
