package persistent

import (
	"context"
	"fmt"
	"testing"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB opens a private in-memory database per test and creates
// the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.VideoModel{},
		&model.CommentModel{},
		&model.TweetModel{},
		&model.LikeModel{},
		&model.SubscriptionModel{},
		&model.PlaylistModel{},
		&model.PlaylistVideoModel{},
		&model.WatchHistoryModel{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed-password",
		FullName:  "Test " + username,
		AvatarURL: "https://media.example.com/avatars/" + username + ".png",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID, title string) *entity.Video {
	t.Helper()

	video := &entity.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  "description of " + title,
		VideoURL:     "https://media.example.com/videos/" + title + ".mp4",
		ThumbnailURL: "https://media.example.com/thumbnails/" + title + ".png",
		Duration:     12.5,
		IsPublished:  true,
	}
	require.NoError(t, NewVideoRepository(db).Create(context.Background(), video))
	return video
}
