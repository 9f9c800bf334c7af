package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string         `gorm:"type:uuid;primary_key"`
	VideoID   string         `gorm:"type:uuid;not null;index"`
	OwnerID   string         `gorm:"type:uuid;not null;index"`
	Content   string         `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Video VideoModel `gorm:"foreignKey:VideoID"`
	Owner UserModel  `gorm:"foreignKey:OwnerID"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
