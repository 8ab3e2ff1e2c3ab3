package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	ID            uint   `json:"id" gorm:"primarykey"`
	Name          string `json:"name" gorm:"uniqueIndex;not null"`
	Slug          string `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string `json:"description"`
	CategoryIcon  string `json:"category_icon"`
	CategoryImage string `json:"category_image"`

	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:CategoryID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" && c.Name != "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}
