package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"blog-backend/models"
)

var articleSortColumns = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"published_at": true,
	"title":        true,
	"views":        true,
	"likes":        true,
}

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetList(params models.ArticleListParams, publicOnly bool) ([]models.Article, int64, error)
	Update(article *models.Article) error
	Delete(id uint) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
	IncrementViews(id uint) (int, error)
	IncrementLikes(id uint) (int, error)
	CreateVersion(version *models.ArticleVersion) error
	GetVersions(articleID uint) ([]models.ArticleVersion, error)
	GetVersion(articleID uint, versionNumber int) (*models.ArticleVersion, error)
	NextVersionNumber(articleID uint) (int, error)
	DueScheduled() ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, publicOnly bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).
		Preload("Author").
		Preload("Category").
		Preload("Tags")

	if publicOnly {
		query = query.Where("articles.status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	}

	if params.AuthorID > 0 {
		query = query.Where("articles.author_id = ?", params.AuthorID)
	}
	if params.CategoryID > 0 {
		query = query.Where("articles.category_id = ?", params.CategoryID)
	}
	if params.Featured != nil {
		query = query.Where("articles.is_featured = ?", *params.Featured)
	}
	if params.TagID > 0 {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Where("article_tags.tag_id = ?", params.TagID)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if !articleSortColumns[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("articles.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

// IncrementViews bumps the view counter in a single atomic statement and
// returns the new value, avoiding lost updates under concurrent requests.
func (r *articleRepository) IncrementViews(id uint) (int, error) {
	var views int
	err := r.db.Raw(
		"UPDATE articles SET views = views + 1 WHERE id = ? RETURNING views", id,
	).Scan(&views).Error
	return views, err
}

func (r *articleRepository) IncrementLikes(id uint) (int, error) {
	var likes int
	err := r.db.Raw(
		"UPDATE articles SET likes = likes + 1 WHERE id = ? RETURNING likes", id,
	).Scan(&likes).Error
	return likes, err
}

func (r *articleRepository) CreateVersion(version *models.ArticleVersion) error {
	return r.db.Create(version).Error
}

func (r *articleRepository) GetVersions(articleID uint) ([]models.ArticleVersion, error) {
	var versions []models.ArticleVersion
	err := r.db.Where("article_id = ?", articleID).
		Order("version_number desc").
		Find(&versions).Error
	return versions, err
}

func (r *articleRepository) GetVersion(articleID uint, versionNumber int) (*models.ArticleVersion, error) {
	var version models.ArticleVersion
	err := r.db.Where("article_id = ? AND version_number = ?", articleID, versionNumber).
		First(&version).Error
	return &version, err
}

func (r *articleRepository) NextVersionNumber(articleID uint) (int, error) {
	var max int
	err := r.db.Model(&models.ArticleVersion{}).
		Where("article_id = ?", articleID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&max).Error
	return max + 1, err
}

// DueScheduled returns scheduled articles whose publish time has passed.
func (r *articleRepository) DueScheduled() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("status = ? AND scheduled_at <= NOW()", models.StatusScheduled).
		Find(&articles).Error
	return articles, err
}
