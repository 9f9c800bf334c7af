package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionModel carries the same compound-unique-index scheme as
// LikeModel so concurrent toggles cannot create duplicate edges.
type SubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_tuple"`
	ChannelID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_tuple"`
	CreatedAt    time.Time

	Subscriber UserModel `gorm:"foreignKey:SubscriberID"`
	Channel    UserModel `gorm:"foreignKey:ChannelID"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
