package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Author struct {
	ID           uint              `json:"id" gorm:"primarykey"`
	Name         string            `json:"name" gorm:"uniqueIndex;not null"`
	Slug         string            `json:"slug" gorm:"uniqueIndex;not null"`
	Bio          string            `json:"bio"`
	ProfileImage string            `json:"profile_image"`
	Website      string            `json:"website"`
	SocialMedia  map[string]string `json:"social_media" gorm:"serializer:json;type:jsonb"`

	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:AuthorID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Author) BeforeSave(tx *gorm.DB) error {
	if a.Slug == "" && a.Name != "" {
		a.Slug = slug.Make(a.Name)
	}
	return nil
}
