package embedding

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedClient wraps a Client with a bounded LRU keyed by the exact input
// text. It is an injected component, not package state, so tests can provide
// their own instance and tenants can be isolated.
type CachedClient struct {
	inner Client
	cache *lru.Cache[string, []float32]
}

func NewCachedClient(inner Client, size int) (*CachedClient, error) {
	cache, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, err
	}
	return &CachedClient{inner: inner, cache: cache}, nil
}

func (c *CachedClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := c.cache.Get(text); ok {
		return vec, nil
	}

	vec, err := c.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	c.cache.Add(text, vec)
	return vec, nil
}

// Len reports the number of cached vectors.
func (c *CachedClient) Len() int {
	return c.cache.Len()
}
