package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultEmbeddingModel     = "text-embedding-3-large"
	DefaultEmbeddingDimension = 1536
)

// EmbeddingConfig carries the settings for the external embedding API.
type EmbeddingConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
}

func LoadEmbeddingConfig() EmbeddingConfig {
	cfg := EmbeddingConfig{
		APIKey:    os.Getenv("OPENAI_API_KEY"),
		Model:     envOr("EMBEDDING_MODEL", DefaultEmbeddingModel),
		BaseURL:   os.Getenv("EMBEDDING_BASE_URL"),
		Timeout:   30 * time.Second,
		CacheSize: 100,
	}

	if v := os.Getenv("EMBEDDING_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("EMBEDDING_CACHE_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			cfg.CacheSize = size
		}
	}

	return cfg
}
