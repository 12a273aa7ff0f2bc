package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON strings like "15m".
type Duration time.Duration

// UnmarshalJSON parses a JSON string (e.g. "30s", "1h") into the Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors StructuredConfig with JSON tags and
// string-encoded durations for file-based configuration.
type StructuredJSONConfig struct {
	Auth struct {
		AccessSignKey        string   `json:"access_sign_key"`
		RefreshSignKey       string   `json:"refresh_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN      string `json:"dsn"`
			Database string `json:"database"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Cache struct {
		Addr        string   `json:"addr"`
		DB          int      `json:"db"`
		DialTimeout Duration `json:"dial_timeout"`
	} `json:"cache,omitempty"`

	Adapter struct {
		GeminiAPIKey   string   `json:"gemini_api_key"`
		GeminiModel    string   `json:"gemini_model"`
		NewsAPIKey     string   `json:"news_api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Chatbot struct {
		RateLimit  int      `json:"rate_limit"`
		RateWindow Duration `json:"rate_window"`
		DailyLimit int      `json:"daily_limit"`
	} `json:"chatbot,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			AccessSignKey:        jsonCfg.Auth.AccessSignKey,
			RefreshSignKey:       jsonCfg.Auth.RefreshSignKey,
			TokenIssuer:          jsonCfg.Auth.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.Auth.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.Auth.RefreshTokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN:      jsonCfg.Storage.DB.DSN,
				Database: jsonCfg.Storage.DB.Database,
			},
		},
		Cache: Cache{
			Addr:        jsonCfg.Cache.Addr,
			DB:          jsonCfg.Cache.DB,
			DialTimeout: time.Duration(jsonCfg.Cache.DialTimeout),
		},
		Adapter: Adapter{
			GeminiAPIKey:   jsonCfg.Adapter.GeminiAPIKey,
			GeminiModel:    jsonCfg.Adapter.GeminiModel,
			NewsAPIKey:     jsonCfg.Adapter.NewsAPIKey,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Chatbot: Chatbot{
			RateLimit:  jsonCfg.Chatbot.RateLimit,
			RateWindow: time.Duration(jsonCfg.Chatbot.RateWindow),
			DailyLimit: jsonCfg.Chatbot.DailyLimit,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}
