package config

import "time"

// Fallback values applied when no configuration source provides a setting.
const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second

	defaultDatabaseDSN  = "mongodb://localhost:27017"
	defaultDatabaseName = "board"

	defaultCacheAddr        = "localhost:6379"
	defaultCacheDialTimeout = 5 * time.Second

	defaultTokenIssuer          = "go-board-keeper"
	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 7 * 24 * time.Hour

	defaultGeminiModel           = "gemini-pro"
	defaultAdapterRequestTimeout = 15 * time.Second

	defaultChatRateLimit  = 10
	defaultChatRateWindow = time.Minute
	defaultChatDailyLimit = 100
)

// applyDefaults fills every unset field with its fallback value.
// Signing keys have no defaults; their absence is a validation error.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = defaultDatabaseDSN
	}
	if c.Storage.DB.Database == "" {
		c.Storage.DB.Database = defaultDatabaseName
	}

	if c.Cache.Addr == "" {
		c.Cache.Addr = defaultCacheAddr
	}
	if c.Cache.DialTimeout == 0 {
		c.Cache.DialTimeout = defaultCacheDialTimeout
	}

	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.AccessTokenDuration == 0 {
		c.Auth.AccessTokenDuration = defaultAccessTokenDuration
	}
	if c.Auth.RefreshTokenDuration == 0 {
		c.Auth.RefreshTokenDuration = defaultRefreshTokenDuration
	}

	if c.Adapter.GeminiModel == "" {
		c.Adapter.GeminiModel = defaultGeminiModel
	}
	if c.Adapter.RequestTimeout == 0 {
		c.Adapter.RequestTimeout = defaultAdapterRequestTimeout
	}

	if c.Chatbot.RateLimit == 0 {
		c.Chatbot.RateLimit = defaultChatRateLimit
	}
	if c.Chatbot.RateWindow == 0 {
		c.Chatbot.RateWindow = defaultChatRateWindow
	}
	if c.Chatbot.DailyLimit == 0 {
		c.Chatbot.DailyLimit = defaultChatDailyLimit
	}
}

// validate checks that the configuration is complete enough to start the
// server. Token secrets cannot be defaulted: starting with guessable secrets
// would silently void the whole token lifecycle.
func (c *StructuredConfig) validate() error {
	if c.Auth.AccessSignKey == "" {
		return ErrNoAccessSignKey
	}
	if c.Auth.RefreshSignKey == "" {
		return ErrNoRefreshSignKey
	}
	if c.Auth.AccessSignKey == c.Auth.RefreshSignKey {
		return ErrSameSignKeys
	}

	return nil
}
