package services

import (
	"errors"

	"gorm.io/gorm"

	"blog-backend/models"
	"blog-backend/repositories"
)

// TaxonomyService manages authors, categories and tags.
type TaxonomyService interface {
	CreateAuthor(req models.CreateAuthorRequest) (*models.Author, error)
	GetAuthor(id uint) (*models.Author, error)
	GetAuthorBySlug(slug string) (*models.Author, error)
	GetAuthors() ([]models.Author, error)
	UpdateAuthor(id uint, req models.CreateAuthorRequest) (*models.Author, error)
	DeleteAuthor(id uint) error

	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error

	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	GetTagBySlug(slug string) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	DeleteTag(id uint) error
}

type taxonomyService struct {
	authorRepo   repositories.AuthorRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
}

func NewTaxonomyService(
	authorRepo repositories.AuthorRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
) TaxonomyService {
	return &taxonomyService{
		authorRepo:   authorRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func (s *taxonomyService) CreateAuthor(req models.CreateAuthorRequest) (*models.Author, error) {
	if _, err := s.authorRepo.GetByName(req.Name); err == nil {
		return nil, errors.New("author already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	author := &models.Author{
		Name:         req.Name,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		Website:      req.Website,
		SocialMedia:  req.SocialMedia,
	}
	if err := s.authorRepo.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *taxonomyService) GetAuthor(id uint) (*models.Author, error) {
	return s.authorRepo.GetByID(id)
}

func (s *taxonomyService) GetAuthorBySlug(slug string) (*models.Author, error) {
	return s.authorRepo.GetBySlug(slug)
}

func (s *taxonomyService) GetAuthors() ([]models.Author, error) {
	return s.authorRepo.GetAll()
}

func (s *taxonomyService) UpdateAuthor(id uint, req models.CreateAuthorRequest) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != author.Name {
		author.Name = req.Name
		author.Slug = ""
	}
	author.Bio = req.Bio
	author.ProfileImage = req.ProfileImage
	author.Website = req.Website
	if req.SocialMedia != nil {
		author.SocialMedia = req.SocialMedia
	}

	if err := s.authorRepo.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *taxonomyService) DeleteAuthor(id uint) error {
	if _, err := s.authorRepo.GetByID(id); err != nil {
		return err
	}
	return s.authorRepo.Delete(id)
}

func (s *taxonomyService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	if _, err := s.categoryRepo.GetByName(req.Name); err == nil {
		return nil, errors.New("category already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name:          req.Name,
		Description:   req.Description,
		CategoryIcon:  req.CategoryIcon,
		CategoryImage: req.CategoryImage,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *taxonomyService) GetCategoryBySlug(slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(slug)
}

func (s *taxonomyService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *taxonomyService) UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != category.Name {
		category.Name = req.Name
		category.Slug = ""
	}
	category.Description = req.Description
	category.CategoryIcon = req.CategoryIcon
	category.CategoryImage = req.CategoryImage

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *taxonomyService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	if _, err := s.tagRepo.GetByName(req.Name); err == nil {
		return nil, errors.New("tag already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *taxonomyService) GetTag(id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}

func (s *taxonomyService) GetTagBySlug(slug string) (*models.Tag, error) {
	return s.tagRepo.GetBySlug(slug)
}

func (s *taxonomyService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *taxonomyService) DeleteTag(id uint) error {
	if _, err := s.tagRepo.GetByID(id); err != nil {
		return err
	}
	return s.tagRepo.Delete(id)
}
