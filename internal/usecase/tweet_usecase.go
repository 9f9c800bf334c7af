package usecase

import (
	"context"
	"strings"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
)

const defaultTweetPageLimit = 5

type TweetUseCase interface {
	Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error)
	ListForUser(ctx context.Context, ownerID string, params entity.PageParams) ([]*entity.Tweet, entity.PageMeta, error)
	Update(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, tweetID, ownerID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewTweetUseCase(
	tweetRepo persistent.TweetRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *tweetUseCase) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrValidation("content is required")
	}

	tweet := &entity.Tweet{OwnerID: ownerID, Content: content}
	if err := uc.tweetRepo.Create(ctx, tweet); err != nil {
		uc.logger.Error("Failed to create tweet: %v", err)
		return nil, entity.ErrInternal("failed to create tweet")
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListForUser(ctx context.Context, ownerID string, params entity.PageParams) ([]*entity.Tweet, entity.PageMeta, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, entity.PageMeta{}, entity.ErrValidation("invalid user id")
	}
	params = params.Normalize(defaultTweetPageLimit)

	if _, err := uc.userRepo.GetByID(ctx, ownerID); err != nil {
		if isNotFound(err) {
			return nil, entity.PageMeta{}, entity.ErrNotFound("user not found")
		}
		uc.logger.Error("Failed to fetch user: %v", err)
		return nil, entity.PageMeta{}, entity.ErrInternal("failed to fetch tweets")
	}

	tweets, total, err := uc.tweetRepo.ListForOwner(ctx, ownerID, params)
	if err != nil {
		uc.logger.Error("Failed to list tweets: %v", err)
		return nil, entity.PageMeta{}, entity.ErrInternal("failed to fetch tweets")
	}
	return tweets, entity.NewPageMeta(total, params), nil
}

func (uc *tweetUseCase) Update(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error) {
	if _, err := uuid.Parse(tweetID); err != nil {
		return nil, entity.ErrValidation("invalid tweet id")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrValidation("content is required")
	}

	tweet, err := uc.tweetRepo.UpdateOwned(ctx, tweetID, ownerID, content)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrNotFound("tweet not found")
		}
		uc.logger.Error("Failed to update tweet: %v", err)
		return nil, entity.ErrInternal("failed to update tweet")
	}
	return tweet, nil
}

func (uc *tweetUseCase) Delete(ctx context.Context, tweetID, ownerID string) error {
	if _, err := uuid.Parse(tweetID); err != nil {
		return entity.ErrValidation("invalid tweet id")
	}

	rows, err := uc.tweetRepo.DeleteOwned(ctx, tweetID, ownerID)
	if err != nil {
		uc.logger.Error("Failed to delete tweet: %v", err)
		return entity.ErrInternal("failed to delete tweet")
	}
	if rows == 0 {
		return entity.ErrNotFound("tweet not found")
	}
	return nil
}
