package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscriber struct {
	ID                uint   `json:"id" gorm:"primarykey"`
	Email             string `json:"email" gorm:"uniqueIndex;not null"`
	IsActive          bool   `json:"is_active" gorm:"default:true"`
	IsVerified        bool   `json:"is_verified" gorm:"default:false"`
	VerificationToken string `json:"-"`

	SubscribedAt   time.Time  `json:"subscribed_at"`
	VerifiedAt     *time.Time `json:"verified_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate issues a verification token for unverified subscribers.
func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now().UTC()
	}
	if !s.IsVerified && s.VerificationToken == "" {
		s.VerificationToken = uuid.NewString()
	}
	return nil
}

func (s *Subscriber) Verify() {
	s.IsVerified = true
	now := time.Now().UTC()
	s.VerifiedAt = &now
	s.VerificationToken = ""
}

func (s *Subscriber) Unsubscribe() {
	s.IsActive = false
	now := time.Now().UTC()
	s.UnsubscribedAt = &now
}

func (s *Subscriber) Resubscribe() {
	if s.IsActive {
		return
	}
	s.IsActive = true
	s.UnsubscribedAt = nil
	if !s.IsVerified {
		s.VerificationToken = uuid.NewString()
	}
}
