package http

import (
	"context"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of usecase.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*entity.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockUserUseCase) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserUseCase) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateAccount(ctx context.Context, userID, fullName, username string) (*entity.User, error) {
	args := m.Called(ctx, userID, fullName, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateAvatar(ctx context.Context, userID string, upload usecase.AssetUpload) (*entity.User, error) {
	args := m.Called(ctx, userID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateCoverImage(ctx context.Context, userID string, upload usecase.AssetUpload) (*entity.User, error) {
	args := m.Called(ctx, userID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserUseCase) WatchHistory(ctx context.Context, userID string) ([]*entity.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

// MockVideoUseCase is a mock implementation of usecase.VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) List(ctx context.Context, params entity.PageParams) ([]*entity.Video, entity.PageMeta, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, entity.PageMeta{}, args.Error(2)
	}
	return args.Get(0).([]*entity.Video), args.Get(1).(entity.PageMeta), args.Error(2)
}

func (m *MockVideoUseCase) Publish(ctx context.Context, input usecase.PublishInput) (*entity.Video, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Get(ctx context.Context, videoID, viewerID string) (*entity.Video, error) {
	args := m.Called(ctx, videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) UpdateDetails(ctx context.Context, videoID, ownerID, title, description string) (*entity.Video, error) {
	args := m.Called(ctx, videoID, ownerID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) UpdateThumbnail(ctx context.Context, videoID, ownerID string, upload usecase.AssetUpload) (*entity.Video, error) {
	args := m.Called(ctx, videoID, ownerID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Delete(ctx context.Context, videoID, ownerID string) error {
	args := m.Called(ctx, videoID, ownerID)
	return args.Error(0)
}

func (m *MockVideoUseCase) TogglePublish(ctx context.Context, videoID, ownerID string) (bool, error) {
	args := m.Called(ctx, videoID, ownerID)
	return args.Bool(0), args.Error(1)
}

// MockLikeUseCase is a mock implementation of usecase.LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) Toggle(ctx context.Context, userID, targetID string, kind entity.LikeTarget) (*entity.ToggleResult, error) {
	args := m.Called(ctx, userID, targetID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockLikeUseCase) Count(ctx context.Context, targetID string, kind entity.LikeTarget) (int64, error) {
	args := m.Called(ctx, targetID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeUseCase) LikedVideos(ctx context.Context, userID string) ([]*entity.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}
