package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Tag struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	TagIcon     string `json:"tag_icon"`
	TagImage    string `json:"tag_image"`

	Articles []Article `json:"articles,omitempty" gorm:"many2many:article_tags;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" && t.Name != "" {
		t.Slug = slug.Make(t.Name)
	}
	return nil
}
