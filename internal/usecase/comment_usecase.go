package usecase

import (
	"context"
	"strings"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
)

const defaultCommentPageLimit = 10

type CommentUseCase interface {
	Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error)
	ListForVideo(ctx context.Context, videoID string, params entity.PageParams) ([]*entity.Comment, entity.PageMeta, error)
	Update(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID, ownerID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, entity.ErrValidation("invalid video id")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrValidation("content is required")
	}

	exists, err := uc.videoRepo.Exists(ctx, videoID)
	if err != nil {
		uc.logger.Error("Failed to check video existence: %v", err)
		return nil, entity.ErrInternal("failed to add comment")
	}
	if !exists {
		return nil, entity.ErrNotFound("video not found")
	}

	comment := &entity.Comment{VideoID: videoID, OwnerID: ownerID, Content: content}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, entity.ErrInternal("failed to add comment")
	}
	return comment, nil
}

func (uc *commentUseCase) ListForVideo(ctx context.Context, videoID string, params entity.PageParams) ([]*entity.Comment, entity.PageMeta, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, entity.PageMeta{}, entity.ErrValidation("invalid video id")
	}
	params = params.Normalize(defaultCommentPageLimit)

	exists, err := uc.videoRepo.Exists(ctx, videoID)
	if err != nil {
		uc.logger.Error("Failed to check video existence: %v", err)
		return nil, entity.PageMeta{}, entity.ErrInternal("failed to fetch comments")
	}
	if !exists {
		return nil, entity.PageMeta{}, entity.ErrNotFound("video not found")
	}

	comments, total, err := uc.commentRepo.ListForVideo(ctx, videoID, params)
	if err != nil {
		uc.logger.Error("Failed to list comments: %v", err)
		return nil, entity.PageMeta{}, entity.ErrInternal("failed to fetch comments")
	}
	return comments, entity.NewPageMeta(total, params), nil
}

func (uc *commentUseCase) Update(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, entity.ErrValidation("invalid comment id")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrValidation("content is required")
	}

	comment, err := uc.commentRepo.UpdateOwned(ctx, commentID, ownerID, content)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("comment not found")
		}
		uc.logger.Error("Failed to update comment: %v", err)
		return nil, entity.ErrInternal("failed to update comment")
	}
	return comment, nil
}

func (uc *commentUseCase) Delete(ctx context.Context, commentID, ownerID string) error {
	if _, err := uuid.Parse(commentID); err != nil {
		return entity.ErrValidation("invalid comment id")
	}

	rows, err := uc.commentRepo.DeleteOwned(ctx, commentID, ownerID)
	if err != nil {
		uc.logger.Error("Failed to delete comment: %v", err)
		return entity.ErrInternal("failed to delete comment")
	}
	if rows == 0 {
		return entity.ErrNotFound("comment not found")
	}
	return nil
}
