package models

import "time"

// SearchResult is a transient projection produced per query, never persisted.
// Title and Summary carry <b>...</b> markers when highlighting was requested.
type SearchResult struct {
	ID          uint       `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	PublishedAt *time.Time `json:"published_at"`
	IsFeatured  bool       `json:"is_featured"`
	Score       float64    `json:"score"`
}

// SemanticHit pairs an article projection with the raw distance reported by
// the vector index. Normalization is the fusion stage's job.
type SemanticHit struct {
	ID          uint       `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	PublishedAt *time.Time `json:"published_at"`
	IsFeatured  bool       `json:"is_featured"`
	Distance    float64    `json:"distance"`
}

// HybridResult is the fused projection with its score composition.
type HybridResult struct {
	ID          uint       `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	PublishedAt *time.Time `json:"published_at"`
	IsFeatured  bool       `json:"is_featured"`

	TextScore     float64 `json:"text_score"`
	SemanticScore float64 `json:"semantic_score"`
	CombinedScore float64 `json:"combined_score"`
	RecencyBoost  float64 `json:"recency_boost,omitempty"`
	FeaturedBoost float64 `json:"featured_boost,omitempty"`
}

// TitleSuggestion is an autocomplete entry.
type TitleSuggestion struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// SearchQuery describes one text-search request against the article index.
type SearchQuery struct {
	Query         string
	Filters       map[string]interface{}
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	Limit         int
	Offset        int
	Highlight     bool
}
