package model

import "time"

// WatchHistoryModel records the videos a user has viewed, ordered by
// WatchedAt. Re-watching bumps the timestamp instead of inserting a
// second row.
type WatchHistoryModel struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	VideoID   string    `gorm:"type:uuid;primaryKey"`
	WatchedAt time.Time `gorm:"index"`

	User  UserModel  `gorm:"foreignKey:UserID"`
	Video VideoModel `gorm:"foreignKey:VideoID"`
}

func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
