package usecase

import (
	"context"
	"io"

	"github.com/jpviradiya/iTube/internal/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) (*entity.User, error) {
	args := m.Called(ctx, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (int64, error) {
	args := m.Called(ctx, userID, oldToken, newToken)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) AddWatchHistory(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) WatchHistory(ctx context.Context, userID string) ([]*entity.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, params entity.PageParams) ([]*entity.Video, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) UpdateOwned(ctx context.Context, videoID, ownerID string, fields map[string]interface{}) (*entity.Video, error) {
	args := m.Called(ctx, videoID, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetOwned(ctx context.Context, videoID, ownerID string) (*entity.Video, error) {
	args := m.Called(ctx, videoID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) DeleteOwned(ctx context.Context, videoID, ownerID string) (int64, error) {
	args := m.Called(ctx, videoID, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) ListForVideo(ctx context.Context, videoID string, params entity.PageParams) ([]*entity.Comment, int64, error) {
	args := m.Called(ctx, videoID, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) UpdateOwned(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, commentID, ownerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteOwned(ctx context.Context, commentID, ownerID string) (int64, error) {
	args := m.Called(ctx, commentID, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTweetRepository is a mock implementation of persistent.TweetRepository
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTweetRepository) ListForOwner(ctx context.Context, ownerID string, params entity.PageParams) ([]*entity.Tweet, int64, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Tweet), args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepository) UpdateOwned(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, tweetID, ownerID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) DeleteOwned(ctx context.Context, tweetID, ownerID string) (int64, error) {
	args := m.Called(ctx, tweetID, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockLikeRepository is a mock implementation of persistent.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, targetID string, kind entity.LikeTarget) (int64, error) {
	args := m.Called(ctx, userID, targetID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) CountForTarget(ctx context.Context, targetID string, kind entity.LikeTarget) (int64, error) {
	args := m.Called(ctx, targetID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) LikedVideos(ctx context.Context, userID string) ([]*entity.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) (int64, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]*entity.Subscription, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListChannels(ctx context.Context, subscriberID string) ([]*entity.Subscription, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

// MockPlaylistRepository is a mock implementation of persistent.PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListForOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) UpdateOwned(ctx context.Context, playlistID, ownerID string, fields map[string]interface{}) (*entity.Playlist, error) {
	args := m.Called(ctx, playlistID, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) DeleteOwned(ctx context.Context, playlistID, ownerID string) (int64, error) {
	args := m.Called(ctx, playlistID, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (int64, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAssetStore is a mock implementation of AssetStore
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStore) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// MockNotificationPublisher is a mock implementation of NotificationPublisher
type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishNotificationTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}
