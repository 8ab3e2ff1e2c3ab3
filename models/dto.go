package models

import "time"

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title         string   `json:"title" binding:"required,min=1,max=255"`
	Content       string   `json:"content" binding:"required"`
	Summary       string   `json:"summary"`
	CategoryID    *uint    `json:"category_id"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featured_image"`
	HeaderImage   string   `json:"header_image"`
	IsFeatured    bool     `json:"is_featured"`
}

type UpdateArticleRequest struct {
	Title         *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Content       *string  `json:"content"`
	Summary       *string  `json:"summary"`
	CategoryID    *uint    `json:"category_id"`
	Tags          []string `json:"tags"`
	FeaturedImage *string  `json:"featured_image"`
	HeaderImage   *string  `json:"header_image"`
	IsFeatured    *bool    `json:"is_featured"`
	ChangeComment string   `json:"change_comment"`
}

type ScheduleArticleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type ArticleListParams struct {
	Status     string `form:"status"`
	AuthorID   uint   `form:"author_id"`
	CategoryID uint   `form:"category_id"`
	TagID      uint   `form:"tag_id"`
	Featured   *bool  `form:"featured"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}

type CreateAuthorRequest struct {
	Name         string            `json:"name" binding:"required,min=1,max=255"`
	Bio          string            `json:"bio"`
	ProfileImage string            `json:"profile_image"`
	Website      string            `json:"website"`
	SocialMedia  map[string]string `json:"social_media"`
}

type CreateCategoryRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Description   string `json:"description"`
	CategoryIcon  string `json:"category_icon"`
	CategoryImage string `json:"category_image"`
}

type CreateTagRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SearchParams struct {
	Query          string  `form:"q"`
	Status         string  `form:"status"`
	AuthorID       uint    `form:"author_id"`
	CategoryID     uint    `form:"category_id"`
	Featured       *bool   `form:"featured"`
	PublishedFrom  string  `form:"published_from"`
	PublishedTo    string  `form:"published_to"`
	Limit          int     `form:"limit,default=20"`
	Offset         int     `form:"offset,default=0"`
	Highlight      *bool   `form:"highlight"`
	Metric         string  `form:"metric,default=cosine"`
	SemanticWeight float64 `form:"semantic_weight,default=0.5"`
}

type AutocompleteParams struct {
	Prefix string `form:"prefix" binding:"required"`
	Limit  int    `form:"limit,default=10"`
}
