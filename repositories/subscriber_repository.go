package repositories

import (
	"gorm.io/gorm"

	"blog-backend/models"
)

type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	GetByToken(token string) (*models.Subscriber, error)
	GetAll(activeOnly bool) ([]models.Subscriber, error)
	Update(subscriber *models.Subscriber) error
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	return &subscriber, err
}

func (r *subscriberRepository) GetByToken(token string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("verification_token = ? AND verification_token <> ''", token).
		First(&subscriber).Error
	return &subscriber, err
}

func (r *subscriberRepository) GetAll(activeOnly bool) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	query := r.db.Order("subscribed_at desc")
	if activeOnly {
		query = query.Where("is_active = true")
	}
	err := query.Find(&subscribers).Error
	return subscribers, err
}

func (r *subscriberRepository) Update(subscriber *models.Subscriber) error {
	return r.db.Save(subscriber).Error
}
