package services

import (
	"errors"

	"gorm.io/gorm"

	"blog-backend/models"
	"blog-backend/repositories"
)

var ErrInvalidToken = errors.New("invalid verification token")

type SubscriberService interface {
	Subscribe(email string) (*models.Subscriber, error)
	Verify(token string) (*models.Subscriber, error)
	Unsubscribe(email string) (*models.Subscriber, error)
	GetSubscribers(activeOnly bool) ([]models.Subscriber, error)
}

type subscriberService struct {
	subscriberRepo repositories.SubscriberRepository
}

func NewSubscriberService(subscriberRepo repositories.SubscriberRepository) SubscriberService {
	return &subscriberService{subscriberRepo: subscriberRepo}
}

// Subscribe creates a new subscriber, or reactivates a previously
// unsubscribed one. An active existing subscription is a conflict.
func (s *subscriberService) Subscribe(email string) (*models.Subscriber, error) {
	existing, err := s.subscriberRepo.GetByEmail(email)
	if err == nil {
		if existing.IsActive {
			return nil, errors.New("email already subscribed")
		}
		existing.Resubscribe()
		if err := s.subscriberRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subscriber := &models.Subscriber{Email: email}
	if err := s.subscriberRepo.Create(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

func (s *subscriberService) Verify(token string) (*models.Subscriber, error) {
	subscriber, err := s.subscriberRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	subscriber.Verify()
	if err := s.subscriberRepo.Update(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

func (s *subscriberService) Unsubscribe(email string) (*models.Subscriber, error) {
	subscriber, err := s.subscriberRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	subscriber.Unsubscribe()
	if err := s.subscriberRepo.Update(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

func (s *subscriberService) GetSubscribers(activeOnly bool) ([]models.Subscriber, error) {
	return s.subscriberRepo.GetAll(activeOnly)
}
