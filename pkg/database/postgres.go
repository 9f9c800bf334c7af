package database

import (
	"fmt"

	"github.com/jpviradiya/iTube/internal/model"
	"github.com/jpviradiya/iTube/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	// TranslateError is required: the like/subscription toggle relies on
	// gorm.ErrDuplicatedKey surfacing from the compound unique indexes.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for every persisted model.
// Production deployments run the SQL migrations under migrations/
// instead; this is the development path.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.VideoModel{},
		&model.CommentModel{},
		&model.TweetModel{},
		&model.LikeModel{},
		&model.SubscriptionModel{},
		&model.PlaylistModel{},
		&model.PlaylistVideoModel{},
		&model.WatchHistoryModel{},
	)
}
