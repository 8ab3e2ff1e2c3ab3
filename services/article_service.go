package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"blog-backend/embedding"
	"blog-backend/models"
	"blog-backend/repositories"
)

var ErrUnauthorized = errors.New("unauthorized")

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error)
	GetArticle(id uint, publicOnly bool) (*models.Article, error)
	GetArticleBySlug(slug string, publicOnly bool) (*models.Article, error)
	GetArticles(params models.ArticleListParams, publicOnly bool) ([]models.Article, int64, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint, role models.UserRole) (*models.Article, error)
	DeleteArticle(id uint, userID uint, role models.UserRole) error
	PublishArticle(id uint, userID uint, role models.UserRole) (*models.Article, error)
	ScheduleArticle(id uint, at time.Time, userID uint, role models.UserRole) (*models.Article, error)
	UnpublishArticle(id uint, userID uint, role models.UserRole) (*models.Article, error)
	SetFeatured(id uint, featured bool, role models.UserRole) (*models.Article, error)
	RecordView(id uint) (int, error)
	RecordLike(id uint) (int, error)
	GetVersions(articleID uint, userID uint, role models.UserRole) ([]models.ArticleVersion, error)
	RestoreVersion(articleID uint, versionNumber int, userID uint, role models.UserRole) (*models.Article, error)
	PublishDueScheduled() (int, error)
	ReindexAll(ctx context.Context) (int64, int, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	tagRepo     repositories.TagRepository
	searchRepo  repositories.SearchRepository
	embedder    embedding.Client
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	tagRepo repositories.TagRepository,
	searchRepo repositories.SearchRepository,
	embedder embedding.Client,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		searchRepo:  searchRepo,
		embedder:    embedder,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error) {
	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:         req.Title,
		Content:       req.Content,
		Summary:       req.Summary,
		CategoryID:    req.CategoryID,
		FeaturedImage: req.FeaturedImage,
		HeaderImage:   req.HeaderImage,
		IsFeatured:    req.IsFeatured,
		Status:        models.StatusDraft,
		AuthorID:      &userID,
		Tags:          tags,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	version := &models.ArticleVersion{
		ArticleID:     article.ID,
		VersionNumber: 1,
		Title:         article.Title,
		Content:       article.Content,
		Summary:       article.Summary,
		CreatedByID:   &userID,
	}
	if err := s.articleRepo.CreateVersion(version); err != nil {
		return nil, err
	}

	s.reindex(article)

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, publicOnly bool) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if publicOnly && article.Status != models.StatusPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return article, nil
}

func (s *articleService) GetArticleBySlug(slug string, publicOnly bool) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if publicOnly && article.Status != models.StatusPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, publicOnly bool) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, publicOnly)
}

// UpdateArticle applies the changes, snapshots a new version when the
// content changed, and re-derives the search vector and embedding. The
// reindex is part of the write path, not something callers opt into.
func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint, role models.UserRole) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canEdit(article, userID, role) {
		return nil, ErrUnauthorized
	}

	contentChanged := false
	if req.Title != nil && *req.Title != article.Title {
		article.Title = *req.Title
		article.Slug = ""
		contentChanged = true
	}
	if req.Content != nil && *req.Content != article.Content {
		article.Content = *req.Content
		contentChanged = true
	}
	if req.Summary != nil && *req.Summary != article.Summary {
		article.Summary = *req.Summary
		contentChanged = true
	}
	if req.CategoryID != nil {
		article.CategoryID = req.CategoryID
	}
	if req.FeaturedImage != nil {
		article.FeaturedImage = *req.FeaturedImage
	}
	if req.HeaderImage != nil {
		article.HeaderImage = *req.HeaderImage
	}
	if req.IsFeatured != nil {
		article.IsFeatured = *req.IsFeatured
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	if req.Tags != nil {
		tags, err := s.resolveTags(req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceTags(article, tags); err != nil {
			return nil, err
		}
	}

	if contentChanged {
		versionNumber, err := s.articleRepo.NextVersionNumber(article.ID)
		if err != nil {
			return nil, err
		}
		version := &models.ArticleVersion{
			ArticleID:     article.ID,
			VersionNumber: versionNumber,
			Title:         article.Title,
			Content:       article.Content,
			Summary:       article.Summary,
			ChangeComment: req.ChangeComment,
			CreatedByID:   &userID,
		}
		if err := s.articleRepo.CreateVersion(version); err != nil {
			return nil, err
		}

		s.reindex(article)
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) DeleteArticle(id uint, userID uint, role models.UserRole) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !canEdit(article, userID, role) {
		return ErrUnauthorized
	}
	return s.articleRepo.Delete(id)
}

func (s *articleService) PublishArticle(id uint, userID uint, role models.UserRole) (*models.Article, error) {
	return s.transition(id, userID, role, func(a *models.Article) { a.Publish() })
}

func (s *articleService) ScheduleArticle(id uint, at time.Time, userID uint, role models.UserRole) (*models.Article, error) {
	if at.Before(time.Now()) {
		return nil, errors.New("scheduled time must be in the future")
	}
	return s.transition(id, userID, role, func(a *models.Article) { a.Schedule(at) })
}

func (s *articleService) UnpublishArticle(id uint, userID uint, role models.UserRole) (*models.Article, error) {
	return s.transition(id, userID, role, func(a *models.Article) { a.Draft() })
}

func (s *articleService) SetFeatured(id uint, featured bool, role models.UserRole) (*models.Article, error) {
	if role != models.RoleEditor && role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	article.IsFeatured = featured
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) RecordView(id uint) (int, error) {
	return s.articleRepo.IncrementViews(id)
}

func (s *articleService) RecordLike(id uint) (int, error) {
	return s.articleRepo.IncrementLikes(id)
}

func (s *articleService) GetVersions(articleID uint, userID uint, role models.UserRole) ([]models.ArticleVersion, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if !canEdit(article, userID, role) {
		return nil, ErrUnauthorized
	}
	return s.articleRepo.GetVersions(articleID)
}

// RestoreVersion copies an old snapshot back onto the article. This counts
// as a content mutation, so a fresh version is snapshotted and the article
// reindexed.
func (s *articleService) RestoreVersion(articleID uint, versionNumber int, userID uint, role models.UserRole) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if !canEdit(article, userID, role) {
		return nil, ErrUnauthorized
	}

	version, err := s.articleRepo.GetVersion(articleID, versionNumber)
	if err != nil {
		return nil, err
	}

	title := version.Title
	content := version.Content
	summary := version.Summary
	return s.UpdateArticle(articleID, models.UpdateArticleRequest{
		Title:         &title,
		Content:       &content,
		Summary:       &summary,
		ChangeComment: "restored version",
	}, userID, role)
}

// PublishDueScheduled promotes scheduled articles whose time has passed.
func (s *articleService) PublishDueScheduled() (int, error) {
	due, err := s.articleRepo.DueScheduled()
	if err != nil {
		return 0, err
	}
	published := 0
	for i := range due {
		due[i].Publish()
		if err := s.articleRepo.Update(&due[i]); err != nil {
			log.Printf("publish scheduled article %d: %v", due[i].ID, err)
			continue
		}
		published++
	}
	return published, nil
}

// ReindexAll recomputes every search vector and backfills missing
// embeddings in batches. Returns (vectors updated, embeddings added).
func (s *articleService) ReindexAll(ctx context.Context) (int64, int, error) {
	vectors, err := s.searchRepo.UpdateAllSearchVectors()
	if err != nil {
		return 0, 0, err
	}

	const batchSize = 10
	embedded := 0
	for {
		batch, err := s.searchRepo.ArticlesWithoutEmbedding(batchSize)
		if err != nil {
			return vectors, embedded, err
		}
		if len(batch) == 0 {
			break
		}
		for i := range batch {
			vec, err := s.embedder.EmbedText(ctx, batch[i].EmbeddingText())
			if err != nil {
				return vectors, embedded, err
			}
			if err := s.searchRepo.UpdateEmbedding(batch[i].ID, vec); err != nil {
				return vectors, embedded, err
			}
			embedded++
		}
		if len(batch) < batchSize {
			break
		}
	}

	return vectors, embedded, nil
}

// reindex re-derives search_vector and embedding after a content mutation.
// An embedding failure is logged and leaves the column NULL; the write
// itself never fails because the embedding provider is down.
func (s *articleService) reindex(article *models.Article) {
	if err := s.searchRepo.UpdateSearchVector(article.ID); err != nil {
		log.Printf("update search vector for article %d: %v", article.ID, err)
	}

	ctx := context.Background()
	vec, err := s.embedder.EmbedText(ctx, article.EmbeddingText())
	if err != nil {
		log.Printf("embed article %d: %v", article.ID, err)
		return
	}
	if err := s.searchRepo.UpdateEmbedding(article.ID, vec); err != nil {
		log.Printf("store embedding for article %d: %v", article.ID, err)
	}
}

func (s *articleService) transition(id uint, userID uint, role models.UserRole, change func(*models.Article)) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canEdit(article, userID, role) {
		return nil, ErrUnauthorized
	}
	change(article)
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) resolveTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
				continue
			}
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// canEdit allows the owning author plus editors and admins.
func canEdit(article *models.Article, userID uint, role models.UserRole) bool {
	if role == models.RoleEditor || role == models.RoleAdmin {
		return true
	}
	return article.AuthorID != nil && *article.AuthorID == userID
}
