package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TweetModel struct {
	ID        string         `gorm:"type:uuid;primary_key"`
	OwnerID   string         `gorm:"type:uuid;not null;index"`
	Content   string         `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Owner UserModel `gorm:"foreignKey:OwnerID"`
}

func (TweetModel) TableName() string {
	return "tweets"
}

func (t *TweetModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
