package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTweetUseCase_Create_BlankContent(t *testing.T) {
	tweetRepo := &MockTweetRepository{}
	uc := NewTweetUseCase(tweetRepo, &MockUserRepository{}, logger.New())

	_, err := uc.Create(context.Background(), "user-1", "   ")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, entity.AsAPIError(err).Status)
	tweetRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTweetUseCase_Create_Success(t *testing.T) {
	tweetRepo := &MockTweetRepository{}
	uc := NewTweetUseCase(tweetRepo, &MockUserRepository{}, logger.New())

	tweetRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	tweet, err := uc.Create(context.Background(), "user-1", "  hello world  ")

	require.NoError(t, err)
	assert.Equal(t, "hello world", tweet.Content)
}

func TestTweetUseCase_ListForUser_UserMissing(t *testing.T) {
	tweetRepo := &MockTweetRepository{}
	userRepo := &MockUserRepository{}
	uc := NewTweetUseCase(tweetRepo, userRepo, logger.New())

	ownerID := uuid.New().String()
	userRepo.On("GetByID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := uc.ListForUser(context.Background(), ownerID, entity.PageParams{})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, entity.AsAPIError(err).Status)
}

func TestTweetUseCase_ListForUser_DefaultLimit(t *testing.T) {
	tweetRepo := &MockTweetRepository{}
	userRepo := &MockUserRepository{}
	uc := NewTweetUseCase(tweetRepo, userRepo, logger.New())

	ownerID := uuid.New().String()
	userRepo.On("GetByID", mock.Anything, ownerID).Return(&entity.User{ID: ownerID}, nil)
	tweetRepo.On("ListForOwner", mock.Anything, ownerID, mock.MatchedBy(func(p entity.PageParams) bool {
		return p.Limit == 5
	})).Return([]*entity.Tweet{}, int64(0), nil)

	_, meta, err := uc.ListForUser(context.Background(), ownerID, entity.PageParams{})

	require.NoError(t, err)
	assert.Equal(t, 5, meta.Limit)
}

func TestTweetUseCase_Update_NotOwned(t *testing.T) {
	tweetRepo := &MockTweetRepository{}
	uc := NewTweetUseCase(tweetRepo, &MockUserRepository{}, logger.New())

	tweetID := uuid.New().String()
	tweetRepo.On("UpdateOwned", mock.Anything, tweetID, "intruder", "edited").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Update(context.Background(), tweetID, "intruder", "edited")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, entity.AsAPIError(err).Status)
}
