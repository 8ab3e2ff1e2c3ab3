package repositories

import (
	"gorm.io/gorm"

	"blog-backend/models"
)

type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id uint) (*models.Author, error)
	GetBySlug(slug string) (*models.Author, error)
	GetByName(name string) (*models.Author, error)
	GetAll() ([]models.Author, error)
	Update(author *models.Author) error
	Delete(id uint) error
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

func (r *authorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, id).Error
	return &author, err
}

func (r *authorRepository) GetBySlug(slug string) (*models.Author, error) {
	var author models.Author
	err := r.db.Where("slug = ?", slug).First(&author).Error
	return &author, err
}

func (r *authorRepository) GetByName(name string) (*models.Author, error) {
	var author models.Author
	err := r.db.Where("name = ?", name).First(&author).Error
	return &author, err
}

func (r *authorRepository) GetAll() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Order("name").Find(&authors).Error
	return authors, err
}

func (r *authorRepository) Update(author *models.Author) error {
	return r.db.Save(author).Error
}

func (r *authorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Author{}, id).Error
}
