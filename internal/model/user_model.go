package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID            string         `gorm:"type:uuid;primary_key"`
	Username      string         `gorm:"uniqueIndex;not null"`
	Email         string         `gorm:"uniqueIndex;not null"`
	Password      string         `gorm:"not null"`
	FullName      string         `gorm:"not null"`
	AvatarURL     string         `gorm:"type:varchar(500);not null"`
	CoverImageURL string         `gorm:"type:varchar(500)"`
	RefreshToken  string         `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
