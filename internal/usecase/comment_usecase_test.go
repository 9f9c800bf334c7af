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

func TestCommentUseCase_Add_BlankContent(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	uc := NewCommentUseCase(commentRepo, &MockVideoRepository{}, logger.New())

	_, err := uc.Add(context.Background(), uuid.New().String(), "user-1", "   ")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, entity.AsAPIError(err).Status)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentUseCase_Add_VideoMissing(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	videoRepo := &MockVideoRepository{}
	uc := NewCommentUseCase(commentRepo, videoRepo, logger.New())

	videoID := uuid.New().String()
	videoRepo.On("Exists", mock.Anything, videoID).Return(false, nil)

	_, err := uc.Add(context.Background(), videoID, "user-1", "nice video")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, entity.AsAPIError(err).Status)
}

func TestCommentUseCase_Add_Success(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	videoRepo := &MockVideoRepository{}
	uc := NewCommentUseCase(commentRepo, videoRepo, logger.New())

	videoID := uuid.New().String()
	videoRepo.On("Exists", mock.Anything, videoID).Return(true, nil)
	commentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	comment, err := uc.Add(context.Background(), videoID, "user-1", "  nice video  ")

	require.NoError(t, err)
	assert.Equal(t, "nice video", comment.Content)
}

func TestCommentUseCase_Update_NotOwned(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	uc := NewCommentUseCase(commentRepo, &MockVideoRepository{}, logger.New())

	commentID := uuid.New().String()
	commentRepo.On("UpdateOwned", mock.Anything, commentID, "intruder", "edited").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Update(context.Background(), commentID, "intruder", "edited")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, entity.AsAPIError(err).Status)
}

func TestCommentUseCase_Delete_NotFound(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	uc := NewCommentUseCase(commentRepo, &MockVideoRepository{}, logger.New())

	commentID := uuid.New().String()
	commentRepo.On("DeleteOwned", mock.Anything, commentID, "user-1").Return(int64(0), nil)

	err := uc.Delete(context.Background(), commentID, "user-1")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, entity.AsAPIError(err).Status)
}

func TestCommentUseCase_ListForVideo_DefaultLimit(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	videoRepo := &MockVideoRepository{}
	uc := NewCommentUseCase(commentRepo, videoRepo, logger.New())

	videoID := uuid.New().String()
	videoRepo.On("Exists", mock.Anything, videoID).Return(true, nil)
	commentRepo.On("ListForVideo", mock.Anything, videoID, mock.MatchedBy(func(p entity.PageParams) bool {
		return p.Page == 1 && p.Limit == 10
	})).Return([]*entity.Comment{}, int64(0), nil)

	_, meta, err := uc.ListForVideo(context.Background(), videoID, entity.PageParams{})

	require.NoError(t, err)
	assert.Equal(t, 10, meta.Limit)
	commentRepo.AssertExpectations(t)
}
