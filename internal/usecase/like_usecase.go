package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/internal/repo/persistent"
	"github.com/jpviradiya/iTube/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type LikeUseCase interface {
	Toggle(ctx context.Context, userID, targetID string, kind entity.LikeTarget) (*entity.ToggleResult, error)
	Count(ctx context.Context, targetID string, kind entity.LikeTarget) (int64, error)
	LikedVideos(ctx context.Context, userID string) ([]*entity.Video, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	redisClient *redis.Client
	queueClient NotificationPublisher
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	redisClient *redis.Client,
	queueClient NotificationPublisher,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Toggle flips the (user, target, kind) edge. It inserts first and
// interprets a duplicate-key failure as "edge already present", so two
// concurrent toggles can never leave two edges behind.
func (uc *likeUseCase) Toggle(ctx context.Context, userID, targetID string, kind entity.LikeTarget) (*entity.ToggleResult, error) {
	if !kind.Valid() {
		return nil, entity.ErrValidation("invalid like target")
	}
	if _, err := uuid.Parse(targetID); err != nil {
		return nil, entity.ErrValidation(fmt.Sprintf("invalid %s id", kind))
	}

	exists, err := uc.targetExists(ctx, targetID, kind)
	if err != nil {
		uc.logger.Error("Failed to check %s existence: %v", kind, err)
		return nil, entity.ErrInternal("failed to toggle like")
	}
	if !exists {
		return nil, entity.ErrNotFound(fmt.Sprintf("%s not found", kind))
	}

	like := &entity.Like{UserID: userID, TargetID: targetID, TargetKind: kind}
	err = uc.likeRepo.Create(ctx, like)
	switch {
	case err == nil:
		uc.adjustCounter(ctx, targetID, kind, 1)
		uc.notifyLike(userID, targetID, kind)
		return &entity.ToggleResult{
			Message: fmt.Sprintf("%s liked successfully", kind),
			Action:  entity.ToggleAdded,
		}, nil
	case isDuplicate(err):
		rows, delErr := uc.likeRepo.Delete(ctx, userID, targetID, kind)
		if delErr != nil {
			uc.logger.Error("Failed to remove like: %v", delErr)
			return nil, entity.ErrInternal("failed to toggle like")
		}
		if rows > 0 {
			uc.adjustCounter(ctx, targetID, kind, -1)
		}
		return &entity.ToggleResult{
			Message: fmt.Sprintf("%s disliked successfully", kind),
			Action:  entity.ToggleRemoved,
		}, nil
	default:
		uc.logger.Error("Failed to create like: %v", err)
		return nil, entity.ErrInternal("failed to toggle like")
	}
}

func (uc *likeUseCase) Count(ctx context.Context, targetID string, kind entity.LikeTarget) (int64, error) {
	if !kind.Valid() {
		return 0, entity.ErrValidation("invalid like target")
	}

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, likeCountKey(targetID, kind)).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := uc.likeRepo.CountForTarget(ctx, targetID, kind)
	if err != nil {
		uc.logger.Error("Failed to count likes: %v", err)
		return 0, entity.ErrInternal("failed to count likes")
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, likeCountKey(targetID, kind), count, 0)
	}
	return count, nil
}

func (uc *likeUseCase) LikedVideos(ctx context.Context, userID string) ([]*entity.Video, error) {
	videos, err := uc.likeRepo.LikedVideos(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to fetch liked videos: %v", err)
		return nil, entity.ErrInternal("failed to fetch liked videos")
	}
	return videos, nil
}

func (uc *likeUseCase) targetExists(ctx context.Context, targetID string, kind entity.LikeTarget) (bool, error) {
	switch kind {
	case entity.LikeTargetVideo:
		return uc.videoRepo.Exists(ctx, targetID)
	case entity.LikeTargetComment:
		return uc.commentRepo.Exists(ctx, targetID)
	case entity.LikeTargetTweet:
		return uc.tweetRepo.Exists(ctx, targetID)
	}
	return false, nil
}

func (uc *likeUseCase) adjustCounter(ctx context.Context, targetID string, kind entity.LikeTarget, delta int64) {
	if uc.redisClient == nil {
		return
	}
	if delta > 0 {
		uc.redisClient.Incr(ctx, likeCountKey(targetID, kind))
	} else {
		uc.redisClient.Decr(ctx, likeCountKey(targetID, kind))
	}
}

func (uc *likeUseCase) notifyLike(userID, targetID string, kind entity.LikeTarget) {
	if uc.queueClient == nil || kind != entity.LikeTargetVideo {
		return
	}
	go func() {
		video, err := uc.videoRepo.GetByID(context.Background(), targetID)
		if err != nil || video.OwnerID == userID {
			return
		}
		task := map[string]interface{}{
			"type":     "like",
			"user_id":  video.OwnerID,
			"liker_id": userID,
			"video_id": targetID,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish like notification: %v", err)
		}
	}()
}

func likeCountKey(targetID string, kind entity.LikeTarget) string {
	return fmt.Sprintf("%s:likes:%s", kind, targetID)
}
