package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string         `gorm:"type:uuid;primary_key"`
	OwnerID     string         `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Owner UserModel `gorm:"foreignKey:OwnerID"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel is the membership join table. The unique index
// makes playlist membership a set; duplicate adds are no-ops.
type PlaylistVideoModel struct {
	PlaylistID string    `gorm:"type:uuid;primaryKey"`
	VideoID    string    `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time

	Playlist PlaylistModel `gorm:"foreignKey:PlaylistID"`
	Video    VideoModel    `gorm:"foreignKey:VideoID"`
}

func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
