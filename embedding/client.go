package embedding

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	lcembeddings "github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"blog-backend/config"
)

// maxInputChars bounds the text sent to the embedding API.
const maxInputChars = 8000

// ErrMissingAPIKey is returned when no embedding credential is configured.
var ErrMissingAPIKey = errors.New("embedding: API key is required")

// Client generates fixed-length embedding vectors for text.
type Client interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type openAIClient struct {
	embedder lcembeddings.Embedder
	cfg      config.EmbeddingConfig
}

// NewOpenAIClient builds a Client against an OpenAI-compatible embeddings
// endpoint. A missing API key is a configuration error, surfaced here rather
// than on first use.
func NewOpenAIClient(cfg config.EmbeddingConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithEmbeddingModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("embedding: create client: %w", err)
	}

	embedder, err := lcembeddings.NewEmbedder(llm, lcembeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("embedding: create embedder: %w", err)
	}

	return &openAIClient{embedder: embedder, cfg: cfg}, nil
}

func (c *openAIClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	text = Truncate(text)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	vectors, err := c.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embedding: generate: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, errors.New("embedding: provider returned empty vector")
	}

	return vectors[0], nil
}

// Truncate limits embedding input to maxInputChars bytes, trimming back to
// a rune boundary so the provider never receives a split UTF-8 sequence.
func Truncate(text string) string {
	if len(text) <= maxInputChars {
		return text
	}
	cut := maxInputChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
