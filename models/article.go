package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusScheduled ArticleStatus = "scheduled"
)

// Article is the central content entity. SearchVector and Embedding are
// derived columns: they are written only by the reindex pipeline (raw SQL in
// the search repository) and must be recomputed whenever title, summary or
// content change. GORM is told to never write them (`->`).
type Article struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	Title   string `json:"title" gorm:"not null;index"`
	Slug    string `json:"slug" gorm:"uniqueIndex;not null"`
	Content string `json:"content" gorm:"type:text"`
	Summary string `json:"summary"`

	FeaturedImage string `json:"featured_image"`
	HeaderImage   string `json:"header_image"`

	Status     ArticleStatus `json:"status" gorm:"default:'draft';index"`
	IsFeatured bool          `json:"is_featured" gorm:"default:false;index"`

	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	SeoKeywords    string `json:"seo_keywords"`
	SeoImage       string `json:"seo_image"`
	CanonicalURL   string `json:"canonical_url"`

	Views    int `json:"views" gorm:"default:0"`
	Likes    int `json:"likes" gorm:"default:0"`
	ReadTime int `json:"read_time" gorm:"default:0"`

	ScheduledAt *time.Time `json:"scheduled_at"`
	PublishedAt *time.Time `json:"published_at" gorm:"index"`

	AuthorID   *uint     `json:"author_id"`
	Author     *Author   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	Tags     []Tag            `json:"tags,omitempty" gorm:"many2many:article_tags;"`
	Versions []ArticleVersion `json:"versions,omitempty" gorm:"foreignKey:ArticleID"`

	SearchVector string           `json:"-" gorm:"->;type:tsvector"`
	Embedding    *pgvector.Vector `json:"-" gorm:"->;type:vector(1536)"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeSave derives the slug from the title when missing and keeps the
// read-time estimate in sync with the content.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	if a.Slug == "" && a.Title != "" {
		a.Slug = slug.Make(a.Title)
	}
	a.ReadTime = a.CalculateReadTime()
	return nil
}

func (a *Article) Publish() {
	a.Status = StatusPublished
	now := time.Now().UTC()
	a.PublishedAt = &now
	a.ScheduledAt = nil
}

func (a *Article) Schedule(at time.Time) {
	a.Status = StatusScheduled
	a.ScheduledAt = &at
}

func (a *Article) Draft() {
	a.Status = StatusDraft
	a.PublishedAt = nil
	a.ScheduledAt = nil
}

// CalculateReadTime estimates reading time in minutes at 200 words/minute,
// with a floor of 1 minute for non-empty content.
func (a *Article) CalculateReadTime() int {
	if a.Content == "" {
		return 0
	}
	words := len(strings.Fields(a.Content))
	minutes := (words + 100) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// EmbeddingText is the canonical input for embedding generation.
func (a *Article) EmbeddingText() string {
	return fmt.Sprintf("%s\n\n%s\n\n%s", a.Title, a.Summary, a.Content)
}
