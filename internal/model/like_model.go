package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel enforces at most one like per (user, target, kind) tuple
// through the compound unique index. The toggle path relies on the
// resulting gorm.ErrDuplicatedKey instead of a check-then-act read.
type LikeModel struct {
	ID         string    `gorm:"type:uuid;primary_key"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_tuple"`
	TargetID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_tuple"`
	TargetKind string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_likes_tuple"`
	CreatedAt  time.Time

	User UserModel `gorm:"foreignKey:UserID"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
