package models

import (
	"time"
)

// ArticleVersion is an immutable snapshot of an article's content, taken on
// every content mutation.
type ArticleVersion struct {
	ID            uint     `json:"id" gorm:"primarykey"`
	ArticleID     uint     `json:"article_id" gorm:"not null;index"`
	Article       *Article `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	VersionNumber int      `json:"version_number" gorm:"not null"`
	Title         string   `json:"title" gorm:"not null"`
	Content       string   `json:"content" gorm:"type:text"`
	Summary       string   `json:"summary"`
	ChangeComment string   `json:"change_comment"`
	CreatedByID   *uint    `json:"created_by_id"`

	CreatedAt time.Time `json:"created_at"`
}
